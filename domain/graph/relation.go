package graph

import (
	"autograph-openre/domain/openre"
	"autograph-openre/repository/metadata"
)

/*
Relation 是图中的一条边，对应一个三元组。

	Head、Relation、Tail 三元组文本；
	HeadEntity、HeadType、TailEntity、TailType 两端提及的实体名和类型；
	Simple 是否为完全匹配的三元组，只有完全匹配的三元组在图中显示关系文本；
	DocID、Sentence 三元组来源。
*/
type Relation struct {
	Head       string `json:"head"`
	Relation   string `json:"relation"`
	Tail       string `json:"tail"`
	HeadEntity string `json:"head_entity"`
	HeadType   string `json:"head_type"`
	TailEntity string `json:"tail_entity"`
	TailType   string `json:"tail_type"`
	Simple     bool   `json:"simple"`
	DocID      string `json:"pmid"`
	Sentence   string `json:"sentence"`
}

/*
RelationsFromRecords 展开记录中的全部三元组，提及序号越界的三元组被忽略。
*/
func RelationsFromRecords(records []*openre.Record) []Relation {
	var ret []Relation
	for _, record := range records {
		for i := range record.TripletList {
			triplet := &record.TripletList[i]
			if triplet.HeadMention >= len(record.MentionList) || triplet.TailMention >= len(record.MentionList) {
				continue
			}

			head := &record.MentionList[triplet.HeadMention]
			tail := &record.MentionList[triplet.TailMention]
			ret = append(ret, Relation{
				Head:       triplet.Head(),
				Relation:   triplet.Relation(),
				Tail:       triplet.Tail(),
				HeadEntity: head.Name,
				HeadType:   head.Type,
				TailEntity: tail.Name,
				TailType:   tail.Type,
				Simple:     triplet.PerfectMatch,
				DocID:      record.DocID,
				Sentence:   record.Sentence,
			})
		}
	}
	return ret
}

func RelationsFromMetadata(triplets []metadata.TripletRecord) []Relation {
	ret := make([]Relation, len(triplets))
	for i := range triplets {
		t := &triplets[i]
		ret[i] = Relation{
			Head:       t.Head,
			Relation:   t.Relation,
			Tail:       t.Tail,
			HeadEntity: t.HeadEntity,
			HeadType:   t.HeadType,
			TailEntity: t.TailEntity,
			TailType:   t.TailType,
			Simple:     t.PerfectMatch,
			DocID:      t.DocID,
			Sentence:   t.Sentence,
		}
	}
	return ret
}

/*
TripletRecords 把记录中的三元组转换为待保存的数据库行。
*/
func TripletRecords(records []*openre.Record) []metadata.TripletRecord {
	var ret []metadata.TripletRecord
	for _, record := range records {
		for i := range record.TripletList {
			triplet := &record.TripletList[i]
			if triplet.HeadMention >= len(record.MentionList) || triplet.TailMention >= len(record.MentionList) {
				continue
			}

			head := &record.MentionList[triplet.HeadMention]
			tail := &record.MentionList[triplet.TailMention]
			ret = append(ret, metadata.TripletRecord{
				DocID:        record.DocID,
				SentID:       record.SentID,
				Sentence:     record.Sentence,
				HeadMention:  triplet.HeadMention,
				TailMention:  triplet.TailMention,
				Head:         triplet.Head(),
				Relation:     triplet.Relation(),
				Tail:         triplet.Tail(),
				HeadEntity:   head.Name,
				HeadType:     head.Type,
				TailEntity:   tail.Name,
				TailType:     tail.Type,
				PerfectMatch: triplet.PerfectMatch,
			})
		}
	}
	return ret
}

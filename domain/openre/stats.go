package openre

import (
	"github.com/sirupsen/logrus"
)

/*
Stats 是一次运行（或一个批次）的计数，各字段都可以直接相加。

	Sentences 读入的句子数量；
	Masked 提及数量足够、送去句法分析的句子数量；
	Parsed 得到句法树的句子数量；
	Failed 句法分析失败或者处理出错的句子数量；
	SentencesWithTriplets 至少抽取出一个三元组的句子数量；
	Triplets 三元组总数；
	PerfectTriplets 完全匹配的三元组数量。
*/
type Stats struct {
	Sentences             int `json:"sentences"`
	Masked                int `json:"masked"`
	Parsed                int `json:"parsed"`
	Failed                int `json:"failed"`
	SentencesWithTriplets int `json:"sentences_with_triplets"`
	Triplets              int `json:"triplets"`
	PerfectTriplets       int `json:"perfect_triplets"`
}

func (s *Stats) Add(other Stats) {
	s.Sentences += other.Sentences
	s.Masked += other.Masked
	s.Parsed += other.Parsed
	s.Failed += other.Failed
	s.SentencesWithTriplets += other.SentencesWithTriplets
	s.Triplets += other.Triplets
	s.PerfectTriplets += other.PerfectTriplets
}

func (s *Stats) addTriplets(triplets []Triplet) {
	if len(triplets) == 0 {
		return
	}

	s.SentencesWithTriplets++
	s.Triplets += len(triplets)
	for i := range triplets {
		if triplets[i].PerfectMatch {
			s.PerfectTriplets++
		}
	}
}

func (s Stats) Fields() logrus.Fields {
	return logrus.Fields{
		"sentences":               s.Sentences,
		"masked":                  s.Masked,
		"parsed":                  s.Parsed,
		"failed":                  s.Failed,
		"sentences_with_triplets": s.SentencesWithTriplets,
		"triplets":                s.Triplets,
		"perfect_triplets":        s.PerfectTriplets,
	}
}

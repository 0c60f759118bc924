package graph

import (
	"autograph-openre/utils"
	"encoding/csv"
	"errors"
	"io"
)

var ErrCSVHeader = errors.New("unexpected relation csv header")

// 与可视化服务读取的关系文件保持一致
var relationCSVHeader = []string{
	"head", "relation", "tail",
	"head_entity", "head_type",
	"tail_entity", "tail_type",
	"simple", "pmid", "sentence",
}

func simpleFlag(simple bool) string {
	if simple {
		return "T"
	}
	return "F"
}

/*
WriteCSV 以关系文件的格式写出 relations，第一行为表头。
*/
func WriteCSV(w io.Writer, relations []Relation) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = false

	if err := writer.Write(relationCSVHeader); err != nil {
		return utils.WrapError(err, "write csv header fail")
	}

	for i := range relations {
		r := &relations[i]
		err := writer.Write([]string{
			r.Head, r.Relation, r.Tail,
			r.HeadEntity, r.HeadType,
			r.TailEntity, r.TailType,
			simpleFlag(r.Simple), r.DocID, r.Sentence,
		})
		if err != nil {
			return utils.WrapErrorf(err, "write relation <%#v, %#v, %#v> fail", r.Head, r.Relation, r.Tail)
		}
	}

	writer.Flush()
	return utils.WrapError(writer.Error(), "flush csv fail")
}

/*
ReadCSV 读取 WriteCSV 写出的关系文件。
*/
func ReadCSV(r io.Reader) ([]Relation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(relationCSVHeader)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, utils.WrapError(err, "read csv header fail")
	}
	for i, column := range relationCSVHeader {
		if header[i] != column {
			return nil, utils.WrapErrorf(ErrCSVHeader, "column %d is %#v, want %#v", i, header[i], column)
		}
	}

	var ret []Relation
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, utils.WrapErrorf(err, "read relation %d fail", len(ret)+1)
		}

		ret = append(ret, Relation{
			Head:       row[0],
			Relation:   row[1],
			Tail:       row[2],
			HeadEntity: row[3],
			HeadType:   row[4],
			TailEntity: row[5],
			TailType:   row[6],
			Simple:     row[7] == "T",
			DocID:      row[8],
			Sentence:   row[9],
		})
	}
	return ret, nil
}

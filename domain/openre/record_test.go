package openre

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

const testRecordJSON = `{
	"pmid": 12345,
	"sent_id": 3,
	"sentence": "GENE0 activates GENE1.",
	"mention_list": [
		{"name": "GENE0", "type": "Gene", "real_pos": [0, 5], "id": "G:1"},
		{"name": "GENE1", "type": "Gene", "real_pos": [16, 21]}
	],
	"source": "pubmed"
}`

func TestRecord_Unmarshal(t *testing.T) {
	var record Record
	require.Nil(t, json.Unmarshal([]byte(testRecordJSON), &record))

	assert.Equal(t, "12345", record.DocID)
	assert.Equal(t, 3, record.SentID)
	assert.Equal(t, "GENE0 activates GENE1.", record.Sentence)
	assert.Nil(t, record.TokenList)
	assert.Nil(t, record.TripletList)
	require.Len(t, record.MentionList, 2)
	assert.Equal(t, &Range{16, 21}, record.MentionList[1].RealPos)
	assert.Nil(t, record.MentionList[1].Pos)
	assert.Nil(t, record.Validate())
}

func TestRecord_MarshalKeepsUnknownFields(t *testing.T) {
	var record Record
	require.Nil(t, json.Unmarshal([]byte(testRecordJSON), &record))

	record.TripletList = []Triplet{{
		HeadMention:  0,
		TailMention:  1,
		Triplet:      [3]string{"GENE0", "activates", "GENE1"},
		PerfectMatch: true,
	}}

	data, err := json.Marshal(record)
	require.Nil(t, err)

	var out map[string]interface{}
	require.Nil(t, json.Unmarshal(data, &out))

	assert.Equal(t, "pubmed", out["source"])
	assert.Equal(t, "12345", out["pmid"])
	mentions := out["mention_list"].([]interface{})
	assert.Equal(t, "G:1", mentions[0].(map[string]interface{})["id"])

	triplets := out["triplet_list"].([]interface{})
	require.Len(t, triplets, 1)
	triplet := triplets[0].(map[string]interface{})
	assert.Equal(t, float64(0), triplet["head_mention_index"])
	assert.Equal(t, float64(1), triplet["tail_mention_index"])
	assert.Equal(t, true, triplet["perfect_match"])
}

func TestRecord_MarshalEmptyTripletList(t *testing.T) {
	record := Record{
		DocID:       "1",
		MentionList: []Mention{},
		TripletList: []Triplet{},
	}

	data, err := json.Marshal(record)
	require.Nil(t, err)
	assert.Contains(t, string(data), `"triplet_list":[]`)
}

func TestRecord_MissingField(t *testing.T) {
	cases := []string{
		`{"sent_id": 0, "mention_list": []}`,
		`{"pmid": "1", "mention_list": []}`,
		`{"pmid": "1", "sent_id": 0}`,
		`{"pmid": null, "sent_id": 0, "mention_list": []}`,
	}

	for _, c := range cases {
		var record Record
		err := json.Unmarshal([]byte(c), &record)
		assert.True(t, errors.Is(err, ErrMissingField), c)
	}
}

func TestRecord_Validate(t *testing.T) {
	record := Record{
		DocID:       "1",
		TokenList:   []string{"a", "b"},
		MentionList: testMentions("a", "b"),
	}
	assert.Nil(t, record.Validate())

	record.MentionList[1].Pos = nil
	assert.True(t, errors.Is(record.Validate(), ErrInvalidMention))

	record = Record{DocID: "1", MentionList: testMentions("a")}
	assert.True(t, errors.Is(record.Validate(), ErrNoSentenceText))

	records := []*Record{
		{DocID: "1", Sentence: "x", MentionList: []Mention{}},
		{DocID: "2", Sentence: "y"},
	}
	assert.True(t, errors.Is(ValidateRecords(records), ErrMissingField))
}

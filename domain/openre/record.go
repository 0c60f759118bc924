package openre

import (
	"autograph-openre/utils"
	"encoding/json"
	"errors"
)

var (
	ErrMissingField   = errors.New("required field is missing")
	ErrInvalidMention = errors.New("invalid mention")
	ErrNoSentenceText = errors.New("record has neither sentence nor token_list")
)

const (
	keyDocID       = "pmid"
	keySentID      = "sent_id"
	keySentence    = "sentence"
	keyTokenList   = "token_list"
	keyMentionList = "mention_list"
	keyTripletList = "triplet_list"

	keyName    = "name"
	keyType    = "type"
	keyPos     = "pos"
	keyRealPos = "real_pos"
)

/*
Range 是左闭右开区间 [Range[0], Range[1])。字符区间以 unicode 码点计数，-1 表示未能定位。
*/
type Range [2]int

func (r *Range) Begin() int {
	return r[0]
}

func (r *Range) End() int {
	return r[1]
}

/*
valid 判断区间是否落在 [0, length) 内且非空。
*/
func (r *Range) valid(length int) bool {
	return r != nil && r[0] >= 0 && r[0] < r[1] && r[1] <= length
}

/*
Mention 是句子中的一个实体提及。

	Pos 以词为单位的位置；
	RealPos 以字符为单位的位置；
	两者至少有一个。
*/
type Mention struct {
	Name    string
	Type    string
	Pos     *Range
	RealPos *Range

	extra map[string]json.RawMessage
}

/*
Triplet 是一条抽取结果，Triplet 依次为 head、relation、tail 文本。
*/
type Triplet struct {
	HeadMention  int       `json:"head_mention_index"`
	TailMention  int       `json:"tail_mention_index"`
	Triplet      [3]string `json:"triplet"`
	PerfectMatch bool      `json:"perfect_match"`
}

func (t *Triplet) Head() string {
	return t.Triplet[0]
}

func (t *Triplet) Relation() string {
	return t.Triplet[1]
}

func (t *Triplet) Tail() string {
	return t.Triplet[2]
}

/*
Record 是语料中的一个句子。

	DocID 文档编号（pmid）；
	SentID 句子在文档中的序号；
	Sentence 句子原文；
	TokenList 可选的切词结果；
	MentionList 有序的实体提及列表，下标即提及的序号；
	TripletList 抽取结果，只由引擎写入一次。

JSON 中其它字段原样保留。
*/
type Record struct {
	DocID       string
	SentID      int
	Sentence    string
	TokenList   []string
	MentionList []Mention
	TripletList []Triplet

	extra map[string]json.RawMessage
}

func takeField(fields map[string]json.RawMessage, key string, target interface{}) (bool, error) {
	raw, ok := fields[key]
	if !ok {
		return false, nil
	}
	delete(fields, key)

	if string(raw) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return true, utils.WrapErrorf(err, "decode field [%s] fail", key)
	}
	return true, nil
}

func mergeFields(extra map[string]json.RawMessage, known map[string]interface{}) ([]byte, error) {
	out := make(map[string]interface{}, len(extra)+len(known))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}
	return json.Marshal(out)
}

func (m *Mention) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return utils.WrapError(err, "decode mention fail")
	}

	if _, err := takeField(fields, keyName, &m.Name); err != nil {
		return err
	}
	if _, err := takeField(fields, keyType, &m.Type); err != nil {
		return err
	}

	var pos, realPos Range
	ok, err := takeField(fields, keyPos, &pos)
	if err != nil {
		return err
	}
	if ok {
		m.Pos = &pos
	}

	ok, err = takeField(fields, keyRealPos, &realPos)
	if err != nil {
		return err
	}
	if ok {
		m.RealPos = &realPos
	}

	m.extra = fields
	return nil
}

func (m Mention) MarshalJSON() ([]byte, error) {
	known := map[string]interface{}{
		keyName: m.Name,
		keyType: m.Type,
	}
	if m.Pos != nil {
		known[keyPos] = m.Pos
	}
	if m.RealPos != nil {
		known[keyRealPos] = m.RealPos
	}
	return mergeFields(m.extra, known)
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return utils.WrapError(err, "decode record fail")
	}

	// pmid 可能是字符串也可能是数字
	rawDocID, ok := fields[keyDocID]
	if !ok || string(rawDocID) == "null" {
		return utils.WrapErrorf(ErrMissingField, "%s", keyDocID)
	}
	delete(fields, keyDocID)
	if err := json.Unmarshal(rawDocID, &r.DocID); err != nil {
		var number json.Number
		if err := json.Unmarshal(rawDocID, &number); err != nil {
			return utils.WrapErrorf(err, "decode field [%s] fail", keyDocID)
		}
		r.DocID = number.String()
	}

	ok, err := takeField(fields, keySentID, &r.SentID)
	if err != nil {
		return err
	}
	if !ok {
		return utils.WrapErrorf(ErrMissingField, "%s (pmid=%s)", keySentID, r.DocID)
	}

	if _, err := takeField(fields, keySentence, &r.Sentence); err != nil {
		return err
	}
	if _, err := takeField(fields, keyTokenList, &r.TokenList); err != nil {
		return err
	}

	ok, err = takeField(fields, keyMentionList, &r.MentionList)
	if err != nil {
		return err
	}
	if !ok {
		return utils.WrapErrorf(ErrMissingField, "%s (pmid=%s, sent_id=%d)", keyMentionList, r.DocID, r.SentID)
	}
	if r.MentionList == nil {
		r.MentionList = []Mention{}
	}

	if _, err := takeField(fields, keyTripletList, &r.TripletList); err != nil {
		return err
	}

	r.extra = fields
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	known := map[string]interface{}{
		keyDocID:       r.DocID,
		keySentID:      r.SentID,
		keySentence:    r.Sentence,
		keyMentionList: r.MentionList,
	}
	if r.TokenList != nil {
		known[keyTokenList] = r.TokenList
	}
	if r.TripletList != nil {
		known[keyTripletList] = r.TripletList
	}
	return mergeFields(r.extra, known)
}

/*
Validate 检查引擎需要的字段。位置越界等问题不在这里报错，而是在遮盖时跳过对应的提及。
*/
func (r *Record) Validate() error {
	if len(r.DocID) == 0 {
		return utils.WrapErrorf(ErrMissingField, "%s", keyDocID)
	}

	if r.MentionList == nil {
		return utils.WrapErrorf(ErrMissingField, "%s", keyMentionList)
	}

	if len(r.Sentence) == 0 && r.TokenList == nil {
		return ErrNoSentenceText
	}

	for i := range r.MentionList {
		mention := &r.MentionList[i]
		if len(mention.Name) == 0 {
			return utils.WrapErrorf(ErrInvalidMention, "mention[%d] has no name", i)
		}
		if mention.Pos == nil && mention.RealPos == nil {
			return utils.WrapErrorf(ErrInvalidMention, "mention[%d] %#v has neither pos nor real_pos", i, mention.Name)
		}
	}

	return nil
}

/*
ValidateRecords 在处理任何批次之前检查全部记录，第一条不合法的记录即返回错误。
*/
func ValidateRecords(records []*Record) error {
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return utils.WrapErrorf(err, "record[%d] (pmid=%s, sent_id=%d) invalid", i, record.DocID, record.SentID)
		}
	}
	return nil
}

package openre

import (
	"autograph-openre/domain/tokenize"
	"unicode/utf8"
)

const minMentions = 2

/*
Limits 控制遮盖后送去句法分析的句子规模，超出部分直接截断。

	MaxSentenceLength 字符模式下保留的字符（占位符算一个）数量；
	MaxTokens 词模式下保留的词数量；
	MaxTokenLength 词模式下每个词保留的字符数量。
*/
type Limits struct {
	MaxSentenceLength int
	MaxTokens         int
	MaxTokenLength    int
}

func DefaultLimits() Limits {
	return Limits{
		MaxSentenceLength: 3000,
		MaxTokens:         128,
		MaxTokenLength:    500,
	}
}

type MaskSetting struct {
	Limits      Limits
	Tokenizer   tokenize.Tokenizer
	Detokenizer tokenize.Detokenizer
}

/*
MaskedSentence 是送去句法分析的文本，RecordIndex 指向来源记录。
*/
type MaskedSentence struct {
	RecordIndex int
	Text        string
}

/*
Masker 把每个实体提及替换为一个占位符。
*/
type Masker struct {
	setting MaskSetting
}

func NewMasker(setting *MaskSetting) *Masker {
	ret := Masker{setting: *setting}
	if ret.setting.Detokenizer == nil {
		ret.setting.Detokenizer = tokenize.TreebankDetokenizer{}
	}
	return &ret
}

/*
Mask 返回遮盖后的文本。提及少于两个，或者没有可用的词序列时返回 false。
*/
func (m *Masker) Mask(record *Record) (string, bool) {
	if len(record.MentionList) < minMentions {
		return "", false
	}

	if record.MentionList[0].RealPos != nil {
		return m.maskCharacters(record), true
	}

	tokens := record.TokenList
	if tokens == nil {
		if m.setting.Tokenizer == nil || len(record.Sentence) == 0 {
			return "", false
		}
		tokens = tokenize.Tokens(record.Sentence, m.setting.Tokenizer.SpanTokenize(record.Sentence))
	}

	return m.maskTokens(tokens, record.MentionList), true
}

/*
MaskBatch 遮盖 records[start:end] 中可以送去句法分析的句子。
*/
func (m *Masker) MaskBatch(records []*Record, start, end int) []MaskedSentence {
	var ret []MaskedSentence
	for i := start; i < end; i++ {
		text, ok := m.Mask(records[i])
		if !ok {
			continue
		}
		ret = append(ret, MaskedSentence{
			RecordIndex: i,
			Text:        text,
		})
	}
	return ret
}

func (m *Masker) maskCharacters(record *Record) string {
	chars := []rune(record.Sentence)
	elements := make([]string, len(chars))
	for i, ch := range chars {
		elements[i] = string(ch)
	}

	for mi := range record.MentionList {
		pos := record.MentionList[mi].RealPos
		if !pos.valid(len(elements)) {
			continue
		}

		elements[pos.Begin()] = Placeholder(mi).String()
		for i := pos.Begin() + 1; i < pos.End(); i++ {
			elements[i] = ""
		}
	}

	if limit := m.setting.Limits.MaxSentenceLength; limit > 0 && len(elements) > limit {
		elements = elements[:limit]
	}

	size := 0
	for _, element := range elements {
		size += len(element)
	}

	buf := make([]byte, 0, size)
	for _, element := range elements {
		buf = append(buf, element...)
	}
	return string(buf)
}

func (m *Masker) maskTokens(tokens []string, mentions []Mention) string {
	masked := make([]string, len(tokens))
	copy(masked, tokens)

	for mi := range mentions {
		pos := mentions[mi].Pos
		if !pos.valid(len(masked)) {
			continue
		}

		masked[pos.Begin()] = Placeholder(mi).String()
		for i := pos.Begin() + 1; i < pos.End(); i++ {
			masked[i] = ""
		}
	}

	if limit := m.setting.Limits.MaxTokens; limit > 0 && len(masked) > limit {
		masked = masked[:limit]
	}

	ret := make([]string, 0, len(masked))
	for _, token := range masked {
		if len(token) == 0 {
			continue
		}
		if _, ok := ParsePlaceholder(token); ok {
			ret = append(ret, token)
			continue
		}
		ret = append(ret, truncateRunes(token, m.setting.Limits.MaxTokenLength))
	}

	return m.setting.Detokenizer.Detokenize(ret)
}

func truncateRunes(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit])
}

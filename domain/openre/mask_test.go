package openre

import (
	"autograph-openre/domain/tokenize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

// 按空格切词
type whitespaceTokenizer struct{}

func (whitespaceTokenizer) SpanTokenize(text string) []tokenize.Span {
	var ret []tokenize.Span
	begin := -1
	for i, ch := range text {
		if ch == ' ' {
			if begin >= 0 {
				ret = append(ret, tokenize.Span{Begin: begin, End: i})
				begin = -1
			}
			continue
		}
		if begin < 0 {
			begin = i
		}
	}
	if begin >= 0 {
		ret = append(ret, tokenize.Span{Begin: begin, End: len(text)})
	}
	return ret
}

func charRecord(sentence string, mentions ...Mention) *Record {
	return &Record{
		DocID:       "1",
		Sentence:    sentence,
		MentionList: mentions,
	}
}

func charMention(name string, begin, end int) Mention {
	return Mention{Name: name, Type: "Gene", RealPos: &Range{begin, end}}
}

func tokenMention(name string, begin, end int) Mention {
	return Mention{Name: name, Type: "Gene", Pos: &Range{begin, end}}
}

func TestMasker_Characters(t *testing.T) {
	masker := NewMasker(&MaskSetting{Limits: DefaultLimits()})

	text, ok := masker.Mask(charRecord("GENE0 activates GENE1.",
		charMention("GENE0", 0, 5), charMention("GENE1", 16, 21)))
	require.True(t, ok)
	assert.Equal(t, "ENT0ITY activates ENT1ITY.", text)

	// 无法定位的提及保持原样
	text, ok = masker.Mask(charRecord("GENE0 activates GENE1.",
		charMention("GENE0", 0, 5), charMention("GENE1", -1, -1)))
	require.True(t, ok)
	assert.Equal(t, "ENT0ITY activates GENE1.", text)

	// 按码点计数
	text, ok = masker.Mask(charRecord("α-GENE binds β-GENE",
		charMention("α-GENE", 0, 6), charMention("β-GENE", 13, 19)))
	require.True(t, ok)
	assert.Equal(t, "ENT0ITY binds ENT1ITY", text)
}

func TestMasker_CharacterLimit(t *testing.T) {
	masker := NewMasker(&MaskSetting{Limits: Limits{MaxSentenceLength: 10}})

	text, ok := masker.Mask(charRecord("GENE0 activates GENE1.",
		charMention("GENE0", 0, 5), charMention("GENE1", 16, 21)))
	require.True(t, ok)
	assert.Equal(t, "ENT0ITY acti", text)
}

func TestMasker_Tokens(t *testing.T) {
	masker := NewMasker(&MaskSetting{Limits: DefaultLimits()})

	record := &Record{
		DocID:       "1",
		TokenList:   []string{"the", "Fos", "B", "gene", "binds", "p53", "."},
		MentionList: []Mention{tokenMention("Fos B", 1, 3), tokenMention("p53", 5, 6)},
	}

	text, ok := masker.Mask(record)
	require.True(t, ok)
	assert.Equal(t, "the ENT0ITY gene binds ENT1ITY.", text)

	// 原始记录不变
	assert.Equal(t, []string{"the", "Fos", "B", "gene", "binds", "p53", "."}, record.TokenList)
}

func TestMasker_TokenLimits(t *testing.T) {
	record := &Record{
		DocID:       "1",
		TokenList:   []string{"GENE0", "activates", "GENE1", "in", "cells", "."},
		MentionList: []Mention{tokenMention("GENE0", 0, 1), tokenMention("GENE1", 2, 3)},
	}

	masker := NewMasker(&MaskSetting{Limits: Limits{MaxTokens: 3}})
	text, _ := masker.Mask(record)
	assert.Equal(t, "ENT0ITY activates ENT1ITY", text)

	// 占位符不截断
	masker = NewMasker(&MaskSetting{Limits: Limits{MaxTokenLength: 4}})
	text, _ = masker.Mask(record)
	assert.Equal(t, "ENT0ITY acti ENT1ITY in cell.", text)
}

func TestMasker_TokenizeSentence(t *testing.T) {
	record := &Record{
		DocID:       "1",
		Sentence:    "GENE0 activates GENE1 .",
		MentionList: []Mention{tokenMention("GENE0", 0, 1), tokenMention("GENE1", 2, 3)},
	}

	// 没有切词器时无法处理
	_, ok := NewMasker(&MaskSetting{Limits: DefaultLimits()}).Mask(record)
	assert.False(t, ok)

	masker := NewMasker(&MaskSetting{Limits: DefaultLimits(), Tokenizer: whitespaceTokenizer{}})
	text, ok := masker.Mask(record)
	require.True(t, ok)
	assert.Equal(t, "ENT0ITY activates ENT1ITY.", text)
}

func TestMasker_TreebankTokenizer(t *testing.T) {
	record := &Record{
		DocID:       "1",
		Sentence:    "FLC isn't up-regulated by SOC1 (MADS-box).",
		MentionList: []Mention{tokenMention("FLC", 0, 1), tokenMention("SOC1", 5, 6)},
	}

	masker := NewMasker(&MaskSetting{Limits: DefaultLimits(), Tokenizer: tokenize.TreebankTokenizer{}})
	text, ok := masker.Mask(record)
	require.True(t, ok)
	assert.Equal(t, "ENT0ITY isn't up-regulated by ENT1ITY (MADS-box).", text)
}

func TestMasker_SkipSingleMention(t *testing.T) {
	masker := NewMasker(&MaskSetting{Limits: DefaultLimits()})

	_, ok := masker.Mask(charRecord("GENE0 is active.", charMention("GENE0", 0, 5)))
	assert.False(t, ok)

	_, ok = masker.Mask(charRecord("nothing here."))
	assert.False(t, ok)
}

func TestMasker_MaskBatch(t *testing.T) {
	masker := NewMasker(&MaskSetting{Limits: DefaultLimits()})
	records := []*Record{
		charRecord("GENE0 binds GENE1", charMention("GENE0", 0, 5), charMention("GENE1", 12, 17)),
		charRecord("GENE0 alone", charMention("GENE0", 0, 5)),
		charRecord("GENE2 binds GENE3", charMention("GENE2", 0, 5), charMention("GENE3", 12, 17)),
	}

	masked := masker.MaskBatch(records, 1, 3)
	assert.Equal(t, []MaskedSentence{{RecordIndex: 2, Text: "ENT0ITY binds ENT1ITY"}}, masked)
}

func TestMasker_RoundTrip(t *testing.T) {
	masker := NewMasker(&MaskSetting{Limits: DefaultLimits()})
	names := []string{"FLC", "SOC1", "Fos-B", "p53", "NF-κB"}

	// 依次拼接出 "FLC and SOC1 and ..."，记录每个名字的码点区间
	var mentions []Mention
	b := strings.Builder{}
	offset := 0
	for i, name := range names {
		if i != 0 {
			b.WriteString(" and ")
			offset += 5
		}
		b.WriteString(name)
		length := len([]rune(name))
		mentions = append(mentions, charMention(name, offset, offset+length))
		offset += length
	}

	text, ok := masker.Mask(charRecord(b.String(), mentions...))
	require.True(t, ok)

	matches := FindPlaceholders(text)
	require.Len(t, matches, len(names))
	for i, match := range matches {
		assert.Equal(t, Placeholder(i), match.Placeholder)
		assert.Equal(t, names[i], mentions[match.Placeholder].Name)
	}
}

package normalize

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"regexp"
	"testing"
)

var testPlaceholder = regexp.MustCompile(`ENT\d+ITY`)

func testVocabulary() Vocabulary {
	return NewVocabulary(
		[]string{"influence", "the", "in", "of", "expression", "pression", "ex", "cells", "absorb"},
		[]string{"transcription", "factor", "trans", "upregulates", "downstream", "down", "stream"},
	)
}

func TestSplitWordMerge(t *testing.T) {
	pass := SplitWordMerge(testVocabulary())

	cases := []struct {
		text   string
		expect string
	}{
		// 连字符
		{"ENT0ITY has in-fluence on ENT1ITY", "ENT0ITY has influence on ENT1ITY"},
		// 带空格的连字符
		{"ENT0ITY has in - fluence on ENT1ITY", "ENT0ITY has influence on ENT1ITY"},
		// 空格
		{"tran scription of ENT0ITY", "transcription of ENT0ITY"},
		// "the tran" 先被匹配，"tran scription" 不再参与
		{"the tran scription of ENT0ITY", "the tran scription of ENT0ITY"},
		// 两部分都是词，不合并
		{"ENT0ITY acts down stream", "ENT0ITY acts down stream"},
		{"ENT0ITY acts down-stream", "ENT0ITY acts down-stream"},
		// 合并结果不在词表中
		{"ENT0ITY is a co-factor", "ENT0ITY is a co-factor"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, pass.Apply(c.text), c.text)
	}
}

func TestSplitWordMerge_ThreeTerms(t *testing.T) {
	vocabulary := NewVocabulary([]string{"influence"})
	pass := SplitWordMerge(vocabulary)

	assert.Equal(t, "influence", pass.Apply("in flu ence"))
}

func TestSplitWordMerge_RepeatsUntilStable(t *testing.T) {
	pass := SplitWordMerge(testVocabulary())

	// 第一个模式改变句子之后，后面的模式在下一轮继续合并
	assert.Equal(t, "influence of transcription", pass.Apply("in-fluence of tran scription"))
	assert.Equal(t, "ENT0ITY influence, absorb ENT1ITY", pass.Apply("ENT0ITY in-fluence, ab sorb ENT1ITY"))
}

func TestSplitWordMerge_KeepsPlaceholder(t *testing.T) {
	vocabulary := NewVocabulary([]string{"inENT", "ITYcells", "ENTITY"})
	pass := SplitWordMerge(vocabulary)

	text := "in ENT0ITY cells"
	assert.Equal(t, text, pass.Apply(text))
	text = "ENT0ITY-ITY ENT1ITY"
	assert.Equal(t, text, pass.Apply(text))
}

func TestHyphenatedVerbMerge(t *testing.T) {
	pass := HyphenatedVerbMerge(NewVocabulary([]string{"upregulates", "ENT0ITYmediated"}), testPlaceholder)

	assert.Equal(t, "ENT0ITY upregulates ENT1ITY", pass.Apply("ENT0ITY up-regulates ENT1ITY"))
	assert.Equal(t, "ENT0ITY upregulates ENT1ITY", pass.Apply("ENT0ITY up - regulates ENT1ITY"))
	assert.Equal(t, "ENT0ITY-mediated ENT1ITY", pass.Apply("ENT0ITY-mediated ENT1ITY"))
	assert.Equal(t, "non-coding ENT1ITY", pass.Apply("non-coding ENT1ITY"))
}

func TestAbbreviationCanonicalize(t *testing.T) {
	pass := AbbreviationCanonicalize()

	assert.Equal(t, "a kinase i.e. ENT0ITY", pass.Apply("a kinase i.e., ENT0ITY"))
	assert.Equal(t, "a kinase i.e. ENT0ITY", pass.Apply("a kinase i. e ., ENT0ITY"))
	assert.Equal(t, "a kinase i.e. ENT0ITY", pass.Apply("a kinase i.e. ENT0ITY"))
}

func TestPasses_Idempotent(t *testing.T) {
	passes := []Pass{
		SplitWordMerge(testVocabulary()),
		HyphenatedVerbMerge(NewVocabulary([]string{"upregulates"}), testPlaceholder),
		AbbreviationCanonicalize(),
	}
	texts := []string{
		"ENT0ITY has in-fluence on ENT1ITY",
		"the tran scription of ENT0ITY",
		"ENT0ITY up - regulates ENT1ITY, i. e., ENT2ITY",
		"ENT0ITY acts down stream",
		"in-fluence of tran scription",
		"ENT0ITY in-fluence, ab sorb ENT1ITY",
		"ENT0ITY up-regulates down - stream ENT1ITY",
	}

	for _, pass := range passes {
		for _, text := range texts {
			once := pass.Apply(text)
			assert.Equal(t, once, pass.Apply(once), "%s(%s)", pass.Name(), text)
		}
	}
}

func TestNewPipeline(t *testing.T) {
	res := &Resources{
		Vocabulary:  testVocabulary(),
		Verbs:       NewVocabulary([]string{"upregulates"}),
		Placeholder: testPlaceholder,
	}

	pipeline, err := NewPipeline(ModeAllCombined.Profile(), res)
	require.Nil(t, err)
	assert.Equal(t, []string{"split-word-merge", "abbreviation-canonicalize"}, pipeline.Names())
	assert.Equal(t, "influence of ENT0ITY, i.e. ENT1ITY", pipeline.Apply("in-fluence of ENT0ITY, i. e., ENT1ITY"))

	pipeline, err = NewPipeline(ModeCanonicalizeAbbreviation.Profile(), res)
	require.Nil(t, err)
	assert.Equal(t, []string{"hyphenated-verb-merge", "abbreviation-canonicalize"}, pipeline.Names())

	pipeline, err = NewPipeline(ModeGeneric.Profile(), res)
	require.Nil(t, err)
	assert.Empty(t, pipeline)
	assert.Equal(t, "in-fluence", pipeline.Apply("in-fluence"))

	_, err = NewPipeline(ModeMergeSplitWords.Profile(), &Resources{})
	assert.True(t, errors.Is(err, ErrMissingVocabulary))

	_, err = NewPipeline(ModeBaseline.Profile(), &Resources{})
	assert.True(t, errors.Is(err, ErrMissingVerbList))
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("chunk-of-chunk-merge")
	require.Nil(t, err)
	assert.True(t, mode.Profile().ChunkMerge)
	assert.True(t, mode.Profile().HyphenatedVerbMerge)

	_, err = ParseMode("20220430")
	assert.True(t, errors.Is(err, ErrUnknownMode))

	assert.Len(t, Modes(), 6)
}

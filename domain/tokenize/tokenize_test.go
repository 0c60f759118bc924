package tokenize

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestTreebankDetokenizer_Detokenize(t *testing.T) {
	d := TreebankDetokenizer{}

	cases := []struct {
		tokens []string
		expect string
	}{
		{
			tokens: []string{"ENT0ITY", "activates", "ENT1ITY", "in", "cells", "."},
			expect: "ENT0ITY activates ENT1ITY in cells.",
		},
		{
			tokens: []string{"I", "do", "n't", "know", ",", "(", "really", ")", "."},
			expect: "I don't know, (really).",
		},
		{
			tokens: []string{"ENT0ITY", "'s", "target", "is", "ENT1ITY", ";", "see", "[", "3", "]", "."},
			expect: "ENT0ITY's target is ENT1ITY; see [3].",
		},
		{
			tokens: []string{"costs", "$", "5", "or", "10", "%", "?"},
			expect: "costs $5 or 10%?",
		},
		{
			tokens: []string{"he", "said", "``", "stop", "''", "."},
			expect: `he said "stop".`,
		},
		{
			tokens: nil,
			expect: "",
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, d.Detokenize(c.tokens))
	}
}

func TestTokens(t *testing.T) {
	text := "GENE0 binds GENE1."
	spans := []Span{{0, 5}, {6, 11}, {12, 17}, {17, 18}}

	assert.Equal(t, []string{"GENE0", "binds", "GENE1", "."}, Tokens(text, spans))
}

func TestTreebankTokenizer_SpanTokenize(t *testing.T) {
	tokenizer := TreebankTokenizer{}

	cases := []struct {
		text   string
		expect []string
	}{
		{
			text:   "FLC isn't up-regulated by SOC1 (MADS-box).",
			expect: []string{"FLC", "is", "n't", "up-regulated", "by", "SOC1", "(", "MADS-box", ")", "."},
		},
		{
			text:   "FLC cannot bind SOC1, AP1 and MADS-box genes.",
			expect: []string{"FLC", "can", "not", "bind", "SOC1", ",", "AP1", "and", "MADS-box", "genes", "."},
		},
		{
			text:   `He said "FLC binds SOC1".`,
			expect: []string{"He", "said", `"`, "FLC", "binds", "SOC1", `"`, "."},
		},
		{
			text:   "Étude of FLC",
			expect: []string{"Étude", "of", "FLC"},
		},
		{
			text:   "",
			expect: []string{},
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, Tokens(c.text, tokenizer.SpanTokenize(c.text)), c.text)
	}

	spans := tokenizer.SpanTokenize("FLC isn't up-regulated by SOC1 (MADS-box).")
	assert.Equal(t, Span{Begin: 26, End: 30}, spans[5])
	assert.Equal(t, Span{Begin: 4, End: 6}, spans[1])
	assert.Equal(t, Span{Begin: 6, End: 9}, spans[2])

	spans = tokenizer.SpanTokenize("Étude of FLC")
	assert.Equal(t, []Span{{0, 6}, {7, 9}, {10, 13}}, spans)
}

func TestNew(t *testing.T) {
	tokenizer, closeFunc, err := New(NameTreebank)
	require.Nil(t, err)
	defer closeFunc()
	assert.Equal(t, TreebankTokenizer{}, tokenizer)

	_, _, err = New("whitespace")
	assert.True(t, errors.Is(err, ErrUnknownTokenizer))
}

func TestJiebaTokenizer_SpanTokenize(t *testing.T) {
	tokenizer := NewJiebaTokenizer()
	defer tokenizer.Close()

	text := "FLC represses SOC1 in Arabidopsis thaliana ."
	spans := tokenizer.SpanTokenize(text)
	tokens := Tokens(text, spans)

	b := strings.Builder{}
	for i, token := range tokens {
		t.Logf("[%d]%s", i, token)
		assert.NotEqual(t, "", strings.TrimSpace(token))
		b.WriteString(token)
	}

	assert.Equal(t, strings.ReplaceAll(text, " ", ""), b.String())
	assert.Contains(t, tokens, "represses")
}

package tokenize

import (
	"autograph-openre/utils"
	"errors"
)

const (
	NameTreebank = "treebank"
	NameJieba    = "jieba"
)

var ErrUnknownTokenizer = errors.New("unknown tokenizer")

/*
Span 是一个词在原文中的字节区间 [Begin, End)。
*/
type Span struct {
	Begin int
	End   int
}

type Tokenizer interface {
	SpanTokenize(text string) []Span
}

type Detokenizer interface {
	Detokenize(tokens []string) string
}

/*
New 按名字创建切词器，返回的函数用于释放切词器的资源。

切词方式必须与上游标注 pos 时一致：英文语料使用 treebank，
由 jieba 分词后标注的中文语料使用 jieba。
*/
func New(name string) (Tokenizer, func(), error) {
	switch name {
	case NameTreebank:
		return TreebankTokenizer{}, func() {}, nil
	case NameJieba:
		jieba := NewJiebaTokenizer()
		return jieba, jieba.Close, nil
	}
	return nil, nil, utils.WrapErrorf(ErrUnknownTokenizer, "%#v", name)
}

/*
Tokens 按照 spans 从 text 中切出每个词。
*/
func Tokens(text string, spans []Span) []string {
	ret := make([]string, len(spans))
	for i, span := range spans {
		ret[i] = text[span.Begin:span.End]
	}
	return ret
}

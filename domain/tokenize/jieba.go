package tokenize

import (
	"github.com/yanyiwu/gojieba"
	"strings"
	"sync"
	"unicode"
)

/*
JiebaTokenizer 使用 gojieba 切词，丢弃只包含空白的词，返回的区间与原文对齐。
用于由 jieba 分词后标注 pos 的中文语料，英文语料应使用 TreebankTokenizer。
gojieba 的实例不保证并发安全，这里加锁。
*/
type JiebaTokenizer struct {
	lock  sync.Mutex
	jieba *gojieba.Jieba
}

func NewJiebaTokenizer(dictPath ...string) *JiebaTokenizer {
	return &JiebaTokenizer{
		jieba: gojieba.NewJieba(dictPath...),
	}
}

/*
AddWord 添加一个不应被切开的词，例如含有连字符的实体名。
*/
func (t *JiebaTokenizer) AddWord(word string) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.jieba.AddWord(word)
}

func (t *JiebaTokenizer) SpanTokenize(text string) []Span {
	t.lock.Lock()
	words := t.jieba.Tokenize(text, gojieba.DefaultMode, true)
	t.lock.Unlock()

	ret := make([]Span, 0, len(words))
	for _, word := range words {
		if strings.TrimFunc(word.Str, unicode.IsSpace) == "" {
			continue
		}

		ret = append(ret, Span{
			Begin: word.Start,
			End:   word.End,
		})
	}
	return ret
}

func (t *JiebaTokenizer) Close() {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.jieba != nil {
		t.jieba.Free()
		t.jieba = nil
	}
}

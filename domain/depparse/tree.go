package depparse

import (
	"autograph-openre/utils"
	"errors"
	"strings"
)

// 依存关系标签（ClearNLP 风格，与英文句法分析模型一致）
const (
	DepConj      = "conj"
	DepAppos     = "appos"
	DepPobj      = "pobj"
	DepPrep      = "prep"
	DepNsubj     = "nsubj"
	DepNsubjPass = "nsubjpass"
	DepDobj      = "dobj"
	DepNeg       = "neg"
	DepRoot      = "ROOT"
)

const (
	TagProperNoun = "NNP"
	POSProperNoun = "PROPN"
	POSAdposition = "ADP"
)

var (
	ErrHeadOutOfRange  = errors.New("token head out of range")
	ErrChunkOutOfRange = errors.New("chunk span out of range")
)

/*
Token 是句法分析结果中的一个词。

	Text 原文；
	Tag 细粒度词性（NNP、VBZ ...）；
	POS 粗粒度词性（PROPN、VERB ...）；
	Dep 与中心词之间的依存关系；
	Head 中心词在 Tree.Tokens 中的下标，句子的根指向自己；
	SpaceAfter 原文中该词之后是否有空格。
*/
type Token struct {
	Text       string `json:"text"`
	Tag        string `json:"tag"`
	POS        string `json:"pos"`
	Dep        string `json:"dep"`
	Head       int    `json:"head"`
	SpaceAfter bool   `json:"space_after"`
}

/*
Chunk 是一个名词块，覆盖 Tokens[Start:End]，Root 为块的中心词下标。
*/
type Chunk struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Root  int `json:"root"`
}

type Tree struct {
	Tokens []Token `json:"tokens"`
	Chunks []Chunk `json:"chunks"`
}

func (t *Tree) Validate() error {
	n := len(t.Tokens)
	for i, token := range t.Tokens {
		if token.Head < 0 || token.Head >= n {
			return utils.WrapErrorf(ErrHeadOutOfRange, "token[%d].head=%d, len=%d", i, token.Head, n)
		}
	}

	for i, chunk := range t.Chunks {
		if chunk.Start < 0 || chunk.End > n || chunk.Start >= chunk.End || chunk.Root < chunk.Start || chunk.Root >= chunk.End {
			return utils.WrapErrorf(ErrChunkOutOfRange, "chunk[%d]=%+v, len=%d", i, chunk, n)
		}
	}

	return nil
}

/*
IsRoot 判断 Tokens[i] 是否为句子的根，即没有不同于自身的中心词。
*/
func (t *Tree) IsRoot(i int) bool {
	return t.Tokens[i].Head == i
}

/*
Text 拼接 Tokens[start:end] 的原文，保留词之间原有的空格。
*/
func (t *Tree) Text(start, end int) string {
	if start >= end {
		return ""
	}

	b := strings.Builder{}
	for i := start; i < end; i++ {
		b.WriteString(t.Tokens[i].Text)
		if i+1 < end && t.Tokens[i].SpaceAfter {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

/*
Lefts 返回中心词为 Tokens[i] 且位于其左侧的词的下标。
*/
func (t *Tree) Lefts(i int) []int {
	var ret []int
	for j := 0; j < i; j++ {
		if t.Tokens[j].Head == i {
			ret = append(ret, j)
		}
	}
	return ret
}

package depparse

import (
	"autograph-openre/logging"
	"autograph-openre/utils"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
)

var ErrTreeCountMismatch = errors.New("tree count does not match sentence count")

/*
Parsed 是一棵通过校验的句法树，以及名词块中心词到名词块的索引。
*/
type Parsed struct {
	*Tree
	rootToChunk map[int]Chunk
}

func NewParsed(tree *Tree) *Parsed {
	index := make(map[int]Chunk, len(tree.Chunks))
	for _, chunk := range tree.Chunks {
		index[chunk.Root] = chunk
	}

	return &Parsed{
		Tree:        tree,
		rootToChunk: index,
	}
}

/*
ChunkOfRoot 查找以 Tokens[root] 为中心词的名词块。
*/
func (p *Parsed) ChunkOfRoot(root int) (Chunk, bool) {
	chunk, ok := p.rootToChunk[root]
	return chunk, ok
}

type ConsumerSetting struct {
	Provider       Provider
	Rules          []TagRule
	UseAccelerator bool
	Logger         *logrus.Logger
}

/*
Consumer 包装对 Provider 的调用：安装词性规则、校验结果、建立名词块索引。
Provider 由调用方创建并负责关闭。
*/
type Consumer struct {
	setting ConsumerSetting
}

func NewConsumer(setting *ConsumerSetting) *Consumer {
	ret := Consumer{setting: *setting}
	if ret.setting.Logger == nil {
		ret.setting.Logger = logging.Default()
	}
	return &ret
}

/*
Parse 分析一批句子，返回值与 sentences 一一对应，nil 表示该句子没有可用的句法树。
*/
func (c *Consumer) Parse(ctx context.Context, sentences []string) ([]*Parsed, error) {
	if len(sentences) == 0 {
		return nil, nil
	}

	trees, err := c.setting.Provider.Parse(ctx, &Request{
		Sentences:      sentences,
		Rules:          c.setting.Rules,
		UseAccelerator: c.setting.UseAccelerator,
	})
	if err != nil {
		return nil, utils.WrapErrorf(err, "parse %d sentences fail", len(sentences))
	}

	if len(trees) != len(sentences) {
		return nil, utils.WrapErrorf(ErrTreeCountMismatch, "provider returned %d trees for %d sentences", len(trees), len(sentences))
	}

	ret := make([]*Parsed, len(sentences))
	for i, tree := range trees {
		if tree == nil {
			continue
		}

		if err := tree.Validate(); err != nil {
			c.setting.Logger.WithError(err).Warnf("drop invalid tree of sentence [%d]", i)
			continue
		}

		ret[i] = NewParsed(tree)
	}

	return ret, nil
}

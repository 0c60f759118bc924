package depparse

import "context"

/*
TagRule 要求句法分析服务在分析前把文本匹配 Pattern（正则表达式）的词标注为指定词性。
*/
type TagRule struct {
	Pattern string `json:"pattern"`
	Tag     string `json:"tag"`
	POS     string `json:"pos"`
}

type Request struct {
	Sentences      []string  `json:"sentences"`
	Rules          []TagRule `json:"rules"`
	UseAccelerator bool      `json:"use_accelerator"`
}

/*
Provider 是外部的依存句法分析服务。

Parse 返回的切片与 req.Sentences 一一对应，某个位置为 nil 表示该句子被服务排除。
返回 error 表示整批分析失败。
*/
type Provider interface {
	Parse(ctx context.Context, req *Request) ([]*Tree, error)
}

/*
ProviderFunc 允许用普通函数实现 Provider。
*/
type ProviderFunc func(ctx context.Context, req *Request) ([]*Tree, error)

func (f ProviderFunc) Parse(ctx context.Context, req *Request) ([]*Tree, error) {
	return f(ctx, req)
}

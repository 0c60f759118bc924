package parsecall

import (
	"autograph-openre/domain/depparse"
)

/*
RequestSchema 是发给句法分析服务的一批句子。
*/
type RequestSchema struct {
	RequestID      string             `json:"request_id"`
	Sentences      []string           `json:"sentences"`
	Rules          []depparse.TagRule `json:"rules"`
	UseAccelerator bool               `json:"use_accelerator"`
}

/*
ResponseSchema 是句法分析服务的回复，Trees 与请求中的句子一一对应，null 表示该句子无法分析。
Error 非空时整批失败。
*/
type ResponseSchema struct {
	RequestID string           `json:"request_id"`
	Trees     []*depparse.Tree `json:"trees"`
	Error     string           `json:"error,omitempty"`
}

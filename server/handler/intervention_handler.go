package handler

import (
	"autograph-openre/domain/graph"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 人工添加的关系使用的类型和来源
const (
	interventionType  = "Manual"
	interventionDocID = "manual"
)

/*
Intervention 向可视化索引中人工添加关系，添加的关系视为完全匹配。
*/
func Intervention(ctx *gin.Context) {
	handler := interventionHandler{ctx: ctx}

	if err := handler.checkParam(); err != nil {
		abortOnParamError(ctx, "Intervention", err)
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(handler.produce()))
}

type interventionHandler struct {
	ctx *gin.Context

	req *interventionReq
}

type relationSchema struct {
	Head     string `json:"head"`
	HeadType string `json:"head_type"`
	Relation string `json:"relation"`
	Tail     string `json:"tail"`
	TailType string `json:"tail_type"`
}

type interventionReq struct {
	AddRelation []relationSchema `json:"add_relation"`
}

type interventionResp struct {
	Added     int `json:"added"`
	Relations int `json:"relations"`
}

func (h *interventionHandler) checkParam() error {
	var req interventionReq
	if err := h.ctx.ShouldBindJSON(&req); err != nil {
		return utils.WrapError(err, "bind req fail")
	}

	if len(req.AddRelation) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "param add_relation is empty")
	}

	for i, spo := range req.AddRelation {
		if len(spo.Head) == 0 || len(spo.Relation) == 0 || len(spo.Tail) == 0 {
			return utils.WrapError(common.ErrRequestParamInvalid, fmt.Sprintf("add_relation[%d] is incomplete", i))
		}
	}

	h.req = &req
	return nil
}

/*
typeOf 未指定类型时沿用索引中已有的类型。
*/
func typeOf(idx *graph.Index, name, typ string) string {
	if len(typ) != 0 {
		return typ
	}
	if known, ok := idx.TypeOf(name); ok {
		return known
	}
	return interventionType
}

func (h *interventionHandler) produce() *interventionResp {
	idx := graph.CurrentIndex()

	relations := make([]graph.Relation, 0, len(h.req.AddRelation))
	for _, spo := range h.req.AddRelation {
		relations = append(relations, graph.Relation{
			Head:       spo.Head,
			Relation:   spo.Relation,
			Tail:       spo.Tail,
			HeadEntity: spo.Head,
			HeadType:   typeOf(idx, spo.Head, spo.HeadType),
			TailEntity: spo.Tail,
			TailType:   typeOf(idx, spo.Tail, spo.TailType),
			Simple:     true,
			DocID:      interventionDocID,
		})
	}
	idx.Add(relations)

	return &interventionResp{
		Added:     len(relations),
		Relations: idx.Len(),
	}
}

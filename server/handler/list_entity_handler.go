package handler

import (
	"autograph-openre/domain/graph"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"github.com/gin-gonic/gin"
	"net/http"
)

/*
ListEntity 列出可视化索引中某个类型的全部实体名。
*/
func ListEntity(ctx *gin.Context) {
	typ := ctx.Query("type")
	if len(typ) == 0 {
		abortOnParamError(ctx, "ListEntity", utils.WrapError(common.ErrRequestParamEmpty, "query 'type' is empty"))
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(graph.CurrentIndex().Entities(typ)))
}

type listTypeItem struct {
	Type     string `json:"type"`
	Color    string `json:"color"`
	Entities int    `json:"entities"`
}

func ListType(ctx *gin.Context) {
	idx := graph.CurrentIndex()

	types := idx.Types()
	ret := make([]listTypeItem, 0, len(types))
	for _, typ := range types {
		ret = append(ret, listTypeItem{
			Type:     typ,
			Color:    graph.ColorOf(typ),
			Entities: len(idx.Entities(typ)),
		})
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(ret))
}

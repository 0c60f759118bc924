package handler

import (
	"autograph-openre/domain/graph"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"github.com/gin-gonic/gin"
	"net/http"
)

/*
GetGraph 返回以某个实体为中心的子图。
*/
func GetGraph(ctx *gin.Context) {
	handler := getGraphHandler{
		ctx: ctx,
	}

	if err := handler.checkParam(); err != nil {
		abortOnParamError(ctx, "GetGraph", err)
		return
	}

	view, err := graph.BuildView(graph.CurrentIndex(), handler.entity)
	if err != nil {
		abortOnProduceError(ctx, "GetGraph", utils.WrapErrorf(err, "build view of [%s] fail", handler.entity))
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(view))
}

type getGraphHandler struct {
	ctx *gin.Context

	// params
	entity string
}

type getGraphReqSchema struct {
	Entity string `json:"entity"`
}

func (h *getGraphHandler) checkParam() error {
	var req getGraphReqSchema
	if err := h.ctx.ShouldBindJSON(&req); err != nil {
		return utils.WrapError(err, "bind req fail")
	}

	if len(req.Entity) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "param entity is empty")
	}

	h.entity = req.Entity
	return nil
}

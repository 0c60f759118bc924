package handler

import (
	"autograph-openre/domain/extraction"
	"autograph-openre/domain/openre"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"github.com/gin-gonic/gin"
	"net/http"
)

/*
Extract 同步地对提交的记录运行抽取，返回带有 triplet_list 的记录。
*/
func Extract(ctx *gin.Context) {
	handler := extractHandler{
		ctx: ctx,
	}

	if err := handler.checkParam(); err != nil {
		abortOnParamError(ctx, "Extract", err)
		return
	}

	resp, err := handler.produce()
	if err != nil {
		abortOnProduceError(ctx, "Extract", err)
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(resp))
}

type extractHandler struct {
	ctx *gin.Context

	// params
	req *extractReqSchema
}

type extractReqSchema struct {
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Records []*openre.Record `json:"records"`
}

type extractRespSchema struct {
	RunUUID string           `json:"run_uuid"`
	Stats   openre.Stats     `json:"stats"`
	Records []*openre.Record `json:"records"`
}

func (h *extractHandler) checkParam() error {
	var req extractReqSchema
	if err := h.ctx.ShouldBindJSON(&req); err != nil {
		return utils.WrapError(err, "bind req fail")
	}

	if len(req.Records) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "param records is empty")
	}

	if err := openre.ValidateRecords(req.Records); err != nil {
		return utils.WrapError(common.ErrRequestParamInvalid, err.Error())
	}

	if len(req.Name) == 0 {
		req.Name = "http"
	}

	h.req = &req
	return nil
}

func (h *extractHandler) produce() (*extractRespSchema, error) {
	ext, err := extractor()
	if err != nil {
		return nil, err
	}

	result, err := ext.Process(h.ctx.Request.Context(), &extraction.Task{
		Name:  h.req.Name,
		Email: h.req.Email,
	}, h.req.Records)
	if err != nil {
		return nil, utils.WrapErrorf(err, "extract %d records fail", len(h.req.Records))
	}

	return &extractRespSchema{
		RunUUID: result.RunUUID,
		Stats:   result.Stats,
		Records: result.Records,
	}, nil
}

package handler

import (
	"autograph-openre/repository/metadata"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"github.com/gin-gonic/gin"
	"net/http"
)

func GetRunInfo(ctx *gin.Context) {
	handler := getRunInfoHandler{
		ctx: ctx,
	}

	if err := handler.checkParam(); err != nil {
		abortOnParamError(ctx, "GetRunInfo", err)
		return
	}

	resp, err := handler.produce()
	if err != nil {
		abortOnProduceError(ctx, "GetRunInfo", err)
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(resp))
}

type getRunInfoHandler struct {
	ctx *gin.Context

	// params
	uuid string
}

type getRunInfoResp struct {
	listRunItem

	Input                 string                     `json:"input"`
	Output                string                     `json:"output"`
	Masked                int                        `json:"masked"`
	Parsed                int                        `json:"parsed"`
	Failed                int                        `json:"failed"`
	SentencesWithTriplets int                        `json:"sentences_with_triplets"`
	PerfectTriplets       int                        `json:"perfect_triplets"`
	Setting               *metadata.SchemaRunSetting `json:"setting"`
}

/*
runUUIDParam 读取路径中的运行编号。
*/
func runUUIDParam(ctx *gin.Context) (string, error) {
	runUUID := ctx.Param("uuid")
	if len(runUUID) == 0 {
		return "", utils.WrapError(common.ErrRequestParamEmpty, "path param 'uuid' is empty")
	}
	return runUUID, nil
}

func (h *getRunInfoHandler) checkParam() error {
	runUUID, err := runUUIDParam(h.ctx)
	if err != nil {
		return err
	}

	h.uuid = runUUID
	return nil
}

func (h *getRunInfoHandler) produce() (*getRunInfoResp, error) {
	db, err := database()
	if err != nil {
		return nil, err
	}

	run, err := metadata.GetRun(db, h.uuid)
	if err != nil {
		return nil, utils.WrapErrorf(err, "get run [%s] fail", h.uuid)
	}

	setting, _ := run.RunSetting()
	return &getRunInfoResp{
		listRunItem:           makeListRunItem(run),
		Input:                 run.Input,
		Output:                run.Output,
		Masked:                run.Masked,
		Parsed:                run.Parsed,
		Failed:                run.Failed,
		SentencesWithTriplets: run.SentencesWithTriplets,
		PerfectTriplets:       run.PerfectTriplets,
		Setting:               setting,
	}, nil
}

package handler

import (
	"autograph-openre/domain/graph"
	"autograph-openre/repository/metadata"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"github.com/gin-gonic/gin"
	"net/http"
)

/*
ListTriplet 列出一次运行的三元组，query perfect=true 时只返回完全匹配的三元组。
*/
func ListTriplet(ctx *gin.Context) {
	runUUID, err := runUUIDParam(ctx)
	if err != nil {
		abortOnParamError(ctx, "ListTriplet", err)
		return
	}

	res, err := listTriplet(runUUID, ctx.Query("perfect") == "true")
	if err != nil {
		abortOnProduceError(ctx, "ListTriplet", err)
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(res))
}

func listTriplet(runUUID string, onlyPerfect bool) ([]graph.Relation, error) {
	db, err := database()
	if err != nil {
		return nil, err
	}

	run, err := metadata.GetRun(db, runUUID)
	if err != nil {
		return nil, utils.WrapErrorf(err, "get run [%s] fail", runUUID)
	}

	triplets, err := metadata.ListTriplets(db, run.ID, onlyPerfect)
	if err != nil {
		return nil, utils.WrapErrorf(err, "select triplets of run [%s] fail", runUUID)
	}

	return graph.RelationsFromMetadata(triplets), nil
}

package handler

import (
	"autograph-openre/domain/graph"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"bytes"
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
)

/*
ExportRunCSV 以关系文件的格式下载一次运行的三元组。
*/
func ExportRunCSV(ctx *gin.Context) {
	runUUID, err := runUUIDParam(ctx)
	if err != nil {
		abortOnParamError(ctx, "ExportRunCSV", err)
		return
	}

	buf := bytes.Buffer{}
	if err := graph.ExportRunCSV(runUUID, &buf); err != nil {
		abortOnProduceError(ctx, "ExportRunCSV", err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", runUUID))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

/*
LoadRunToNeo4j 把一次运行的三元组写入 neo4j。
*/
func LoadRunToNeo4j(ctx *gin.Context) {
	runUUID, err := runUUIDParam(ctx)
	if err != nil {
		abortOnParamError(ctx, "LoadRunToNeo4j", err)
		return
	}

	if err := graph.LoadRunToNeo4j(runUUID); err != nil {
		abortOnProduceError(ctx, "LoadRunToNeo4j", utils.WrapErrorf(err, "load run [%s] fail", runUUID))
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(nil))
}

type loadRunIndexResp struct {
	Relations int `json:"relations"`
}

/*
LoadRunIndex 用一次运行的三元组替换可视化索引。
*/
func LoadRunIndex(ctx *gin.Context) {
	runUUID, err := runUUIDParam(ctx)
	if err != nil {
		abortOnParamError(ctx, "LoadRunIndex", err)
		return
	}

	idx, err := graph.LoadIndexFromRun(runUUID)
	if err != nil {
		abortOnProduceError(ctx, "LoadRunIndex", err)
		return
	}
	graph.SetIndex(idx)

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(loadRunIndexResp{Relations: idx.Len()}))
}

package handler

import (
	"autograph-openre/repository/metadata"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultListRunLimit = 20
	maxListRunLimit     = 200
)

func ListRun(ctx *gin.Context) {
	limit := defaultListRunLimit
	if raw := ctx.Query("limit"); len(raw) != 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortOnParamError(ctx, "ListRun", utils.WrapErrorf(common.ErrRequestParamInvalid, "limit(%#v) is not a positive integer", raw))
			return
		}
		if parsed > maxListRunLimit {
			parsed = maxListRunLimit
		}
		limit = parsed
	}

	res, err := listRun(limit)
	if err != nil {
		abortOnProduceError(ctx, "ListRun", err)
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(res))
}

type listRunItem struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Mode      string `json:"mode"`
	Status    string `json:"status"`
	Time      int64  `json:"time"`
	TimeStr   string `json:"time_str"`
	Sentences int    `json:"sentences"`
	Triplets  int    `json:"triplets"`
}

func makeListRunItem(run *metadata.Run) listRunItem {
	return listRunItem{
		UUID:      run.UUID,
		Name:      run.Name,
		Mode:      run.Mode,
		Status:    metadata.RunStatusName(run.Status),
		Time:      run.CreatedAt.Unix(),
		TimeStr:   run.CreatedAt.Format(time.RFC3339),
		Sentences: run.Sentences,
		Triplets:  run.Triplets,
	}
}

func listRun(limit int) ([]listRunItem, error) {
	db, err := database()
	if err != nil {
		return nil, err
	}

	runs, err := metadata.ListRuns(db, limit)
	if err != nil {
		return nil, utils.WrapError(err, "select runs fail")
	}

	ret := make([]listRunItem, 0, len(runs))
	for i := range runs {
		ret = append(ret, makeListRunItem(&runs[i]))
	}

	return ret, nil
}

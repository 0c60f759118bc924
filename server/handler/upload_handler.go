package handler

import (
	"autograph-openre/domain/extraction"
	"autograph-openre/domain/openre"
	"autograph-openre/logging"
	"autograph-openre/repository/corpus"
	"autograph-openre/server/common"
	"autograph-openre/utils"
	"context"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"strings"
)

/*
UploadFile 接收 multipart 表单中的语料文件（JSON 记录数组），在后台运行抽取，立即返回运行编号。
*/
func UploadFile(ctx *gin.Context) {
	handler := uploadFileHandler{
		ctx: ctx,
	}

	if err := handler.checkParam(); err != nil {
		abortOnParamError(ctx, "UploadFile", err)
		return
	}

	runUUID, err := handler.produce()
	if err != nil {
		abortOnProduceError(ctx, "UploadFile", err)
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(uploadFileRespSchema{RunUUID: runUUID}))
}

type uploadFileHandler struct {
	ctx *gin.Context

	// params
	fileName string
	email    string
	records  []*openre.Record
}

type uploadFileRespSchema struct {
	RunUUID string `json:"run_uuid"`
}

func (h *uploadFileHandler) checkParam() error {
	contentType := h.ctx.GetHeader("Content-Type")
	if !strings.Contains(contentType, "multipart/form-data") {
		return utils.WrapErrorf(common.ErrContentTypeNotMultipartFormData,
			"actual Content-Type = [%s] not 'multipart/form-data'", contentType)
	}

	header, err := h.ctx.FormFile("file")
	if err != nil {
		return utils.WrapError(common.ErrRequestParamEmpty, "form file 'file' is missing")
	}

	file, err := header.Open()
	if err != nil {
		return utils.WrapError(err, "open multipart file fail")
	}
	defer file.Close()

	records, err := corpus.DecodeRecords(file)
	if err != nil {
		return utils.WrapErrorf(common.ErrRequestParamInvalid, "decode [%s] fail: %s", header.Filename, err.Error())
	}

	if err := openre.ValidateRecords(records); err != nil {
		return utils.WrapErrorf(common.ErrRequestParamInvalid, "[%s]: %s", header.Filename, err.Error())
	}

	h.fileName = header.Filename
	h.email = h.ctx.PostForm("email")
	h.records = records
	return nil
}

func (h *uploadFileHandler) produce() (string, error) {
	ext, err := extractor()
	if err != nil {
		return "", err
	}

	task := extraction.Task{
		RunUUID: uuid.NewString(),
		Name:    h.removeSuffix(h.fileName),
		Email:   h.email,
	}

	go func() {
		// 请求结束后继续运行
		_, err := ext.Process(context.Background(), &task, h.records)
		if err != nil {
			logging.Default().WithError(err).Errorf("run [%s] of [%s] fail", task.RunUUID, h.fileName)
		}
	}()

	return task.RunUUID, nil
}

func (h *uploadFileHandler) removeSuffix(origin string) string {
	index := strings.LastIndexByte(origin, '.')
	if index < 0 || len(origin)-index > 5 {
		return origin
	}

	return origin[:index]
}

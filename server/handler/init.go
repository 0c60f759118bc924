package handler

import (
	"autograph-openre/domain/extraction"
	"autograph-openre/domain/graph"
	"autograph-openre/logging"
	"autograph-openre/repository/metadata"
	"autograph-openre/server/common"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
)

/*
Config 是接口依赖的服务，Extractor 为 nil 时抽取接口不可用，GetMetadataDatabase 返回 nil 时运行相关接口不可用。
*/
type Config struct {
	Extractor           *extraction.Extractor
	GetMetadataDatabase func() *gorm.DB
}

var globalConfig Config

func Init(config *Config) {
	globalConfig = *config
}

func database() (*gorm.DB, error) {
	if globalConfig.GetMetadataDatabase == nil {
		return nil, common.ErrServiceNotConfigured
	}
	db := globalConfig.GetMetadataDatabase()
	if db == nil {
		return nil, common.ErrServiceNotConfigured
	}
	return db, nil
}

func extractor() (*extraction.Extractor, error) {
	if globalConfig.Extractor == nil {
		return nil, common.ErrServiceNotConfigured
	}
	return globalConfig.Extractor, nil
}

/*
abortOnProduceError 按错误类型选择状态码。
*/
func abortOnProduceError(ctx *gin.Context, name string, err error) {
	logging.Default().WithError(err).Errorf("%s produce error: %s", name, err.Error())

	switch {
	case errors.Is(err, metadata.ErrRunNotFound):
		ctx.JSON(http.StatusNotFound, common.MakeNotFoundResp("run not found"))
	case errors.Is(err, graph.ErrEntityNotFound):
		ctx.JSON(http.StatusNotFound, common.MakeNotFoundResp("entity not found"))
	case errors.Is(err, common.ErrServiceNotConfigured), errors.Is(err, graph.ErrNoDatabase), errors.Is(err, graph.ErrNoNeo4j):
		ctx.JSON(http.StatusServiceUnavailable, common.MakeUnknownErrorResp())
	default:
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
	}
}

func abortOnParamError(ctx *gin.Context, name string, err error) {
	logging.Default().WithError(err).Errorf("%s parse req error: %s", name, err.Error())
	ctx.JSON(http.StatusBadRequest, common.MakeParamErrorResp(err.Error()))
}

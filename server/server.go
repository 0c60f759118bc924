package server

import (
	"autograph-openre/metrics"
	"autograph-openre/server/common"
	"autograph-openre/server/handler"
	"context"
	"errors"
	"fmt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

/*
Config 是 HTTP 服务的配置，Metrics 为 nil 时不暴露 /metrics。
*/
type Config struct {
	Host      string
	Port      int
	DebugMode bool
	Metrics   *metrics.Recorder
}

type Server struct {
	engine *gin.Engine
	config *Config
}

func New(config *Config) *Server {
	if !config.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	eng := gin.New()

	eng.Use(gin.Recovery())
	eng.Use(common.LogRequest)
	eng.Use(cors.Default())
	if config.Metrics != nil {
		eng.Use(config.Metrics.Middleware())
		eng.GET("/metrics", gin.WrapH(config.Metrics.Handler()))
	}

	eng.GET("/test/coffee", coffeeHandler)

	eng.POST("/extract", handler.Extract)
	eng.POST("/upload", handler.UploadFile)
	eng.GET("/modes", handler.ListMode)

	// 可视化
	eng.GET("/types", handler.ListType)
	eng.GET("/entities", handler.ListEntity)
	eng.POST("/graph", handler.GetGraph)
	eng.POST("/intervention", handler.Intervention)

	runGroup := eng.Group("runs")
	{
		runGroup.GET("", handler.ListRun)
		runGroup.GET("/:uuid", handler.GetRunInfo)
		runGroup.GET("/:uuid/triplets", handler.ListTriplet)
		runGroup.GET("/:uuid/csv", handler.ExportRunCSV)
		runGroup.POST("/:uuid/neo4j", handler.LoadRunToNeo4j)
		runGroup.POST("/:uuid/index", handler.LoadRunIndex)
	}

	return &Server{
		engine: eng,
		config: config,
	}
}

func coffeeHandler(ctx *gin.Context) {
	ctx.String(http.StatusTeapot, "I'm a teapot")
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

/*
RunServer 阻塞直到 ctx 被取消，然后等待进行中的请求结束。
*/
func (s *Server) RunServer(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler: s.engine,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

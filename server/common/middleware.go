package common

import (
	"autograph-openre/logging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"time"
)

func LogRequest(ctx *gin.Context) {
	begin := time.Now()
	ctx.Next()

	entry := logging.Default().WithFields(logrus.Fields{
		"method":  ctx.Request.Method,
		"path":    ctx.Request.URL.Path,
		"status":  ctx.Writer.Status(),
		"latency": time.Since(begin).String(),
		"client":  ctx.ClientIP(),
	})

	if len(ctx.Errors) != 0 {
		entry.Warnf("request finish with errors: %s", ctx.Errors.String())
		return
	}
	entry.Debug("request finish")
}

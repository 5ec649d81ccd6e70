package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger 为每个请求生成request_id并记录访问日志
// 请求级entry放进Request的context，后续各层用logger.FromContext取
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := c.Request.Context()
		fields := logrus.Fields{"request_id": requestID}
		if traceID := tracing.TraceID(ctx); traceID != "" {
			fields["trace_id"] = traceID
		}
		entry := logger.L().WithFields(fields)
		c.Request = c.Request.WithContext(logger.WithContext(ctx, entry))

		c.Next()

		status := c.Writer.Status()
		access := logger.FromContext(c.Request.Context()).WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})
		switch {
		case status >= 500:
			access.Error("request completed")
		case status >= 400:
			access.Warn("request completed")
		default:
			access.Info("request completed")
		}
	}
}

// Recovery panic转成500并记录堆栈所在请求
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).WithField("panic", recovered).Error("panic recovered")
		c.AbortWithStatusJSON(500, gin.H{"code": 50000, "message": "系统内部错误"})
	})
}

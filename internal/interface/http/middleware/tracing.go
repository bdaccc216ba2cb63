package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/xiebiao/library/pkg/tracing"
)

// Tracing 请求级追踪中间件
// 每个请求开启一个Span，记录方法、路由模板与响应状态码
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx, span := tracing.StartSpan(c.Request.Context(), "http",
			fmt.Sprintf("%s %s", c.Request.Method, path))
		defer span.End()

		// 下游的用例/仓储通过Request Context参与同一条调用链
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", path),
			attribute.Int("http.status_code", status),
		)
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}
	}
}

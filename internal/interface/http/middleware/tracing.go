package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"

	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

const tracerName = "bookstore-api/http"

// Tracing 每个请求一个Span,沿用上游的traceparent,并通过X-Trace-ID返回TraceID
// 未启用追踪时为no-op Span,不写X-Trace-ID
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx, span := tracing.StartSpan(ctx, tracerName, c.Request.Method+" "+route,
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
		)
		defer span.End()

		if id := tracing.ExtractTraceID(ctx); id != "" {
			c.Header("X-Trace-ID", id)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 && len(c.Errors) > 0 {
			tracing.RecordError(span, c.Errors.Last())
		}
	}
}

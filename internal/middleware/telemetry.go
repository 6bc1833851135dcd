package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

// apiPrefix scopes tracing to the authenticated API; /health, /swagger and
// other utility routes stay untraced.
const apiPrefix = "/api/"

// OtelTracing instruments API requests with otelgin spans.
func OtelTracing(serviceName string) gin.HandlerFunc {
	otelMiddleware := otelgin.Middleware(serviceName)

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			otelMiddleware(c)
			return
		}
		c.Next()
	}
}

// TraceID exposes the current trace id on the response so clients can quote
// it when reporting a failed generation or checkout.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			c.Header("X-Trace-Id", span.SpanContext().TraceID().String())
		}
		c.Next()
	}
}

package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"zentrix-api/internal/infrastructure/metrics"
)

const maxLogBodySize = 1 << 12 // 4 KB

// RequestLogGin logs every request; bodies of the paths in credentialPaths are never read.
func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec, credentialPaths ...string) gin.HandlerFunc {
	skipBody := make(map[string]struct{}, len(credentialPaths))
	for _, p := range credentialPaths {
		skipBody[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if _, credentials := skipBody[c.Request.URL.Path]; credentials {
			body = "<omitted>"
		} else if c.Request.Body != nil && c.Request.Body != http.NoBody {
			var buf bytes.Buffer
			limited := io.LimitReader(c.Request.Body, maxLogBodySize)
			_, _ = io.Copy(&buf, limited)
			rest, _ := io.ReadAll(c.Request.Body)
			c.Request.Body.Close()
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(buf.Bytes()), bytes.NewReader(rest)))
			body = buf.String()
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues(metrics.AppRequests).Inc()
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Package middleware provides HTTP middleware for the Gin router.
//
// Go Learning Note — Middleware Pattern (Gin):
// In Gin, middleware is any function with the signature `gin.HandlerFunc`, which
// is `func(*gin.Context)`. Middleware functions form a chain: each one runs,
// optionally calls c.Next() to pass control to the next handler, and can call
// c.Abort() to stop the chain. This is the "chain of responsibility" pattern.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"videostore/pkg/utils"
)

// Context keys and headers for request-scoped data.
const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an ID, reusing the caller's X-Request-ID
// header when one is supplied. The ID is echoed back in the response header.
//
// Go Learning Note — Returning Functions (Closures):
// RequestID() returns a gin.HandlerFunc. Middleware that needs configuration
// takes it as arguments to the outer function, and the returned closure
// captures them (see Logger below, which captures a *zap.Logger).
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = utils.GenerateID()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger writes one structured access-log record per request after the
// handler chain has finished. Must be used after RequestID() in the chain.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// FullPath is the route template, empty when no route matched.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// GetRequestID retrieves the ID set by the RequestID middleware, or "" when the
// middleware did not run.
//
// Go Learning Note — Type Assertion:
// c.Get() returns (any, bool). The `id, _ := v.(string)` form yields the zero
// value instead of panicking when v is missing or not a string.
func GetRequestID(c *gin.Context) string {
	v, _ := c.Get(RequestIDKey)
	id, _ := v.(string)
	return id
}

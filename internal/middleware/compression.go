// Package middleware provides HTTP middleware components for the bundle service.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients that
// accept it. The metrics endpoint is excluded: Prometheus negotiates its own
// encoding and scrapes are small anyway.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/metrics"}),
	)
}

package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// bodyCapture tees the response body so a 200 can be stored after the
// handler runs.
type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func cacheKey(c *gin.Context) string {
	sum := sha1.Sum([]byte(c.Request.Method + ":" + c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("servnex:catalog:%x", sum)
}

// CatalogCache serves catalog GET responses from redis. A nil client turns
// the middleware into a pass-through, so the API works without redis.
func CatalogCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		if body, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil && len(body) > 0 {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")
		c.Next()

		if cw.Status() == http.StatusOK && cw.buf.Len() > 0 {
			// Best-effort store; a failed SET only costs the next request.
			rdb.Set(c.Request.Context(), key, cw.buf.Bytes(), ttl)
		}
	}
}

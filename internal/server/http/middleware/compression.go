package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// gzipBody closes both the gzip stream and the wire body.
type gzipBody struct {
	*gzip.Reader
	wire interface{ Close() error }
}

func (b gzipBody) Close() error {
	_ = b.Reader.Close()
	return b.wire.Close()
}

// DecompressRequest inflates gzip request bodies before binding. The
// inflated body is capped at maxBytes so a small upload cannot expand into
// an unbounded JSON document; maxBytes <= 0 disables the cap.
func DecompressRequest(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(c.GetHeader("Content-Encoding"))
		if !strings.Contains(encoding, "gzip") {
			c.Next()
			return
		}

		zr, err := gzip.NewReader(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed gzip body"})
			return
		}

		body := gzipBody{Reader: zr, wire: c.Request.Body}
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, body, maxBytes)
		} else {
			c.Request.Body = body
		}
		c.Next()
	}
}

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/smsrent/internal/server/http/dto"
)

// requestEncoding reports the single content coding of a request body.
// An empty result means identity.
func requestEncoding(header string) string {
	enc := strings.ToLower(strings.TrimSpace(header))
	if enc == "identity" {
		return ""
	}
	return enc
}

// gzipBody closes both the decompressor and the wire body.
type gzipBody struct {
	*gzip.Reader
	wire io.ReadCloser
}

func (b gzipBody) Close() error {
	_ = b.Reader.Close()
	return b.wire.Close()
}

// DecompressRequest inflates gzip request bodies before they reach the
// JSON binders. Other codings are refused with 415.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch requestEncoding(c.GetHeader("Content-Encoding")) {
		case "":
			c.Next()
			return
		case "gzip", "x-gzip":
		default:
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.ErrorResponse{Error: "Unsupported request encoding"})
			return
		}

		zr, err := gzip.NewReader(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request encoding"})
			return
		}
		body := gzipBody{Reader: zr, wire: c.Request.Body}
		defer body.Close()

		c.Request.Body = body
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}

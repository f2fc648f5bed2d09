package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header carries the id of the user acting on a request. The gateway is
// trusted to have set it; the server only checks its shape.
const Header = "X-Sharer-User-Id"

const contextKey = "sharerUserID"

// SharerUserID is a Gin middleware that extracts the X-Sharer-User-Id
// header into the request context. A malformed id aborts with 400; an
// absent header passes through, since some endpoints are anonymous and
// the ones that are not reject via RequireUserID.
func SharerUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(Header)
		if header == "" {
			c.Next()
			return
		}

		if _, err := uuid.Parse(header); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "validation error",
				"message": "invalid " + Header + " header",
			})
			return
		}

		c.Set(contextKey, header)
		c.Next()
	}
}

// UserID returns the acting user's id or empty string.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RequireUserID returns the acting user's id, aborting with 400 when the
// header was not supplied. The second return value reports success.
func RequireUserID(c *gin.Context) (string, bool) {
	id := UserID(c)
	if id == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "validation error",
			"message": Header + " header is required",
		})
		return "", false
	}
	return id, true
}

package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerUserIDHeader is the legacy caller-identity header. Older clients send
// the acting user's id directly instead of a bearer token.
const SharerUserIDHeader = "X-Sharer-User-Id"

// IdentityRequired is a Gin middleware that resolves the acting user.
// It accepts either Authorization: Bearer <jwt> or the X-Sharer-User-Id header.
func IdentityRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "invalid Authorization header format",
				})
				return
			}

			claims, err := jwtManager.ParseAndValidate(parts[1])
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "invalid or expired token",
				})
				return
			}

			c.Set("userID", claims.UserID)
			c.Next()
			return
		}

		sharerID := c.GetHeader(SharerUserIDHeader)
		if sharerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing caller identity",
			})
			return
		}
		if _, err := uuid.Parse(sharerID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid " + SharerUserIDHeader + " header",
			})
			return
		}

		c.Set("userID", sharerID)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/Kumarankit101/Forms/internal/services"

	"github.com/gin-gonic/gin"
)

// JWTAuth verifies the bearer token and puts the resolved user id into
// the request context. Every failure is the same 401 regardless of
// whether the token was missing, malformed, tampered or expired.
func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return jwtAuth(authService, false)
}

// JWTAuthWS is JWTAuth with a token query param fallback for websocket
// routes only: browser websocket clients cannot set headers. Regular
// routes stay header-only so tokens never end up in access logs.
func JWTAuthWS(authService *services.AuthService) gin.HandlerFunc {
	return jwtAuth(authService, true)
}

func jwtAuth(authService *services.AuthService, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authService.ValidateToken(extractToken(c, allowQuery))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or missing token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func extractToken(c *gin.Context, allowQuery bool) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if allowQuery {
		return c.Query("token")
	}
	return ""
}

package middleware

import (
	"net/http"
	"strings"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/auth"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and stores the caller on both the
// gin context and the request context.
func AuthMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required")
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			ctx := c.Request.Context()
			logger.Log.WarnContext(ctx, "token validation failed", "error", err)
			security.DefaultLogger().LogInvalidToken(ctx, c.ClientIP(), c.GetHeader("User-Agent"), c.GetString(string(domain.KeyRequestID)), err.Error())
			response.Abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserName), claims.Name)
		c.Request = c.Request.WithContext(domain.WithUser(c.Request.Context(), claims.UserID, claims.Name))

		c.Next()
	}
}

// bearerToken reads the Authorization header, then the auth_token cookie.
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			return strings.TrimSpace(header[7:])
		}
		return ""
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

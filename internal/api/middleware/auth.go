package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-records/internal/dto"
	"hr-records/pkg/jwt"
	"hr-records/pkg/response"
)

// PrincipalKey holds the authenticated email in the gin context.
const PrincipalKey = "principal"

// JWTAuth verifies Authorization: Bearer <token> and injects the token's
// email as the request principal.
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c, dto.MsgTokenMissing)
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, dto.MsgTokenExpired)
			} else {
				response.Unauthorized(c, dto.MsgTokenInvalid)
			}
			c.Abort()
			return
		}

		c.Set(PrincipalKey, claims.Email)

		c.Next()
	}
}

// Principal returns the authenticated email, if any.
func Principal(c *gin.Context) string {
	return c.GetString(PrincipalKey)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"queue-engine/internal/domain/staff"
	"queue-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxMemberKey = "staff_member"
	ctxClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// StaffAuth requires a valid Bearer token and stores the staff member on the context.
func (m *AuthMiddleware) StaffAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		member, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		c.Set(ctxMemberKey, member)
		c.Set(ctxClaimsKey, map[string]any{
			"user_id":     member.UserID().String(),
			"business_id": member.BusinessID().String(),
			"role":        member.Role().String(),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetMember(c *gin.Context) (staff.Member, bool) {
	v, exists := c.Get(ctxMemberKey)
	if !exists {
		return staff.Member{}, false
	}
	member, ok := v.(staff.Member)
	return member, ok
}

// SetMember is used by tests that bypass token validation.
func SetMember(c *gin.Context, member staff.Member) {
	c.Set(ctxMemberKey, member)
}

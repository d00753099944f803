package middleware

import (
	"errors"
	"strings"

	"github.com/awqat-travel/core/internal/models"
	"github.com/awqat-travel/core/internal/pkg/jwt"
	"github.com/awqat-travel/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ContextKeyUserID = "user_id"

// Auth returns a middleware that enforces JWT authentication.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateToken(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// RequireAdmin enforces authentication plus an admin row in user_roles.
// The roles table is treated as an opaque oracle: presence of the row grants
// access, nothing else is inspected.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateToken(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}

		var count int64
		if err := db.Model(&models.UserRoleModel{}).
			Where("user_id = ? AND role = ?", claims.UserID, models.RoleAdmin).
			Count(&count).Error; err != nil {
			response.InternalError(c, err)
			return
		}
		if count == 0 {
			response.Forbidden(c)
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

func validateToken(raw string) (*jwt.Claims, error) {
	if raw == "" {
		return nil, errors.New("token is required")
	}
	return jwt.Parse(raw)
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}

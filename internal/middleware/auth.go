package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shreyash398/Green-World/internal/auth"
	"github.com/shreyash398/Green-World/internal/models"
	"github.com/shreyash398/Green-World/internal/types"
)

type AuthenticatedUser struct {
	ID               uint        `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Role             models.Role `json:"role"`
	OrganizationName string      `json:"organizationName"`
}

// resolveUser maps a bearer token to a live user record. A valid token whose
// user row has since been deleted counts as a stale session, not an error.
func resolveUser(db *gorm.DB, tokens *auth.TokenService, header string) (AuthenticatedUser, bool) {
	parts := strings.SplitN(header, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" {
		return AuthenticatedUser{}, false
	}

	claims, err := tokens.Verify(parts[1])

	if err != nil {
		return AuthenticatedUser{}, false
	}

	var user models.User

	if err := db.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		return AuthenticatedUser{}, false
	}

	return AuthenticatedUser{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		OrganizationName: user.OrganizationName,
	}, true
}

// RequireAuth rejects requests without a resolvable identity before any
// handler logic runs.
func RequireAuth(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		user, ok := resolveUser(db, tokens, authHeader)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present but lets
// anonymous requests through, so read endpoints can serve richer data to
// known roles while staying open to the public.
func OptionalAuth(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if authHeader := ctx.GetHeader("Authorization"); authHeader != "" {
			if user, ok := resolveUser(db, tokens, authHeader); ok {
				ctx.Set(types.ContextUserKey, user)
			}
		}

		ctx.Next()
	}
}

// RequireRole gates a handler by role allow-list. It assumes RequireAuth ran
// earlier in the chain; a request with no identity is always rejected.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, ok := value.(AuthenticatedUser)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

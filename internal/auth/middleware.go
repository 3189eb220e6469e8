package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"
	"club-coordination-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth
const (
	userIDKey     = "user_id"
	emailKey      = "email"
	authClaimsKey = "auth_claims"
)

// UserProvisioner resolves a token's email to a platform user, creating it on first contact
type UserProvisioner interface {
	Provision(ctx context.Context, email, displayName string) (*service.UserResponse, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
	users   UserProvisioner
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(svc *AuthService, users UserProvisioner) *AuthMiddleware {
	return &AuthMiddleware{service: svc, users: users}
}

// RequireAuth validates the bearer token, provisions the caller and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.ErrUnauthenticated)
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abortWithError(c, apperrors.NewAuthenticationError("invalid authorization header format"))
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected bearer token")
			abortWithError(c, apperrors.ErrInvalidCredentials)
			return
		}

		user, err := m.users.Provision(c.Request.Context(), claims.Email, claims.DisplayName)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Error("failed to provision user")
			abortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), user.Email))
		c.Set(userIDKey, user.ID)
		c.Set(emailKey, user.Email)
		c.Set(authClaimsKey, claims)

		c.Next()
	}
}

// abortWithError writes the error body used across the API
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"
	switch kind := apperrors.KindOf(err); kind {
	case apperrors.KindAuthentication:
		status, message = http.StatusUnauthorized, err.Error()
	case apperrors.KindValidation:
		status, message = http.StatusBadRequest, err.Error()
	}
	c.AbortWithStatusJSON(status, gin.H{"error": string(apperrors.KindOf(err)), "message": message})
}

// GetUserID is a helper function to extract the caller's user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(emailKey)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

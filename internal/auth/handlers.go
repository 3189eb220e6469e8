package auth

import (
	"net/http"

	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// DevTokenRequest is the body of the development token endpoint
type DevTokenRequest struct {
	Email       string `json:"email" binding:"required" example:"alice@campus.edu"`
	DisplayName string `json:"display_name" example:"Alice"`
}

// DevTokenResponse carries a signed bearer token
type DevTokenResponse struct {
	AccessToken      string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType        string `json:"token_type" example:"Bearer"`
	ExpiresInSeconds int64  `json:"expires_in_seconds" example:"3600"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(svc *AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// DevToken handles POST /api/auth/dev-token
// Only routed when ENVIRONMENT=development; real deployments receive tokens from the campus identity provider.
// @Summary Issue a development token
// @Description Sign a bearer token for the given email so the API can be exercised locally
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body DevTokenRequest true "Token subject"
// @Success 200 {object} DevTokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /api/auth/dev-token [post]
func (h *AuthHandler) DevToken(c *gin.Context) {
	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewValidationError("email", "email is required"))
		return
	}

	token, err := h.service.GenerateJWT(req.Email, req.DisplayName)
	if err != nil {
		if !apperrors.IsValidation(err) {
			logger.WithContext(c.Request.Context()).WithError(err).Error("failed to sign development token")
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DevTokenResponse{
		AccessToken:      token,
		TokenType:        "Bearer",
		ExpiresInSeconds: int64(h.service.TTL().Seconds()),
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"club-coordination-backend/internal/auth"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"conflict"`
	Message string `json:"message" example:"team is full"`
}

var statusByKind = map[apperrors.Kind]int{
	apperrors.KindValidation:     http.StatusBadRequest,
	apperrors.KindAuthentication: http.StatusUnauthorized,
	apperrors.KindAuthorization:  http.StatusForbidden,
	apperrors.KindNotFound:       http.StatusNotFound,
	apperrors.KindConflict:       http.StatusConflict,
	apperrors.KindInternal:       http.StatusInternalServerError,
}

// respondError maps err onto its status code and the standard error body.
// Internal errors are logged and replaced by a generic message.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	message := err.Error()
	if kind == apperrors.KindInternal {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("request failed with internal error")
		message = "internal server error"
	}
	if kind == apperrors.KindConflict && apperrors.IsTransientConflict(err) {
		message = apperrors.ErrTryAgain.Error()
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusByKind[kind], ErrorResponse{Error: string(kind), Message: message})
}

// bindJSON decodes the request body; malformed bodies become validation errors
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondError(c, apperrors.NewValidationError("body", "malformed JSON request body"))
		return false
	}
	return true
}

// uuidParam parses a UUID path parameter
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperrors.NewValidationError(name, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the authenticated caller set by the auth middleware
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok || id == uuid.Nil {
		respondError(c, apperrors.ErrUnauthenticated)
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads limit and offset. Zero values are left for the service to default.
func pagination(c *gin.Context) (int, int, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		respondError(c, apperrors.ErrInvalidPaginationParams)
		return 0, 0, false
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		respondError(c, apperrors.ErrInvalidPaginationParams)
		return 0, 0, false
	}
	return limit, offset, true
}

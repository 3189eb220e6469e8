package handlers_test

import (
	"club-coordination-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authenticatedRouter returns an HTTP test suite whose /api/v1 group acts as the given caller
func authenticatedRouter(callerID uuid.UUID) (*testutils.HTTPTestSuite, *gin.RouterGroup) {
	h := testutils.SetupHTTPTest()
	v1 := h.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		if callerID != uuid.Nil {
			c.Set("user_id", callerID)
		}
		c.Next()
	})
	return h, v1
}

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/mocks"
	"club-coordination-backend/internal/service"
	"club-coordination-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewAuthService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewAuthService("", time.Hour)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl falls back to default", func(t *testing.T) {
		svc, err := NewAuthService("secret", 0)
		require.NoError(t, err)
		assert.Equal(t, defaultTokenTTL, svc.TTL())
	})
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateJWT("  Alice@Campus.edu", "Alice")
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@campus.edu", claims.Email)
	assert.Equal(t, "alice@campus.edu", claims.Subject)
	assert.Equal(t, "Alice", claims.DisplayName)
	assert.Equal(t, issuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestValidateJWTRejects(t *testing.T) {
	svc := newTestService(t)

	t.Run("empty email", func(t *testing.T) {
		_, err := svc.GenerateJWT(" ", "")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService("another-key", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateJWT("alice@campus.edu", "")
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("expired", func(t *testing.T) {
		stale := newTestService(t)
		stale.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := stale.GenerateJWT("alice@campus.edu", "")
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "alice@campus.edu",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{Email: "alice@campus.edu"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func setupAuthRouter(t *testing.T) (*testutils.HTTPTestSuite, *AuthService, *mocks.MockUserServiceInterface) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceInterface(ctrl)
	svc := newTestService(t)

	h := testutils.SetupHTTPTest()
	h.Router.GET("/protected", NewAuthMiddleware(svc, users).RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		email, _ := GetUserEmail(c)
		claims, _ := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "email": email, "name": claims.DisplayName})
	})
	h.Router.POST("/api/auth/dev-token", NewAuthHandler(svc).DevToken)
	return h, svc, users
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		h, _, _ := setupAuthRouter(t)
		rec := h.MakeRequest(http.MethodGet, "/protected", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusUnauthorized, "authentication")
	})

	t.Run("not a bearer header", func(t *testing.T) {
		h, _, _ := setupAuthRouter(t)
		rec := h.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{"Authorization": "Basic abc"})
		testutils.AssertErrorResponse(t, rec, http.StatusUnauthorized, "authentication")
	})

	t.Run("invalid token", func(t *testing.T) {
		h, _, _ := setupAuthRouter(t)
		rec := h.MakeAuthedRequest(http.MethodGet, "/protected", "bogus", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusUnauthorized, "authentication")
	})

	t.Run("first contact provisions the caller", func(t *testing.T) {
		h, svc, users := setupAuthRouter(t)
		userID := uuid.New()
		users.EXPECT().Provision(gomock.Any(), "alice@campus.edu", "Alice").
			Return(&service.UserResponse{ID: userID, Email: "alice@campus.edu"}, nil)

		token, err := svc.GenerateJWT("alice@campus.edu", "Alice")
		require.NoError(t, err)

		rec := h.MakeAuthedRequest(http.MethodGet, "/protected", token, nil)
		var body map[string]string
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "alice@campus.edu", body["email"])
		assert.Equal(t, "Alice", body["name"])
	})

	t.Run("provisioning failure is internal", func(t *testing.T) {
		h, svc, users := setupAuthRouter(t)
		users.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("store down"))

		token, err := svc.GenerateJWT("alice@campus.edu", "")
		require.NoError(t, err)

		rec := h.MakeAuthedRequest(http.MethodGet, "/protected", token, nil)
		testutils.AssertErrorResponse(t, rec, http.StatusInternalServerError, "internal")
		assert.NotContains(t, rec.Body.String(), "store down")
	})
}

func TestDevToken(t *testing.T) {
	h, svc, _ := setupAuthRouter(t)

	rec := h.MakeRequest(http.MethodPost, "/api/auth/dev-token", DevTokenRequest{Email: "bob@campus.edu", DisplayName: "Bob"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DevTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresInSeconds)

	claims, err := svc.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "bob@campus.edu", claims.Email)

	rec = h.MakeRequest(http.MethodPost, "/api/auth/dev-token", map[string]string{})
	testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "validation")
}

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "club-coordination-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer          = "club-coordination-backend"
	defaultTokenTTL = time.Hour
)

// AuthClaims represents JWT token claims. The email identifies the platform user.
type AuthClaims struct {
	Email       string `json:"email" example:"alice@campus.edu"`
	DisplayName string `json:"name,omitempty" example:"Alice"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates HS256 bearer tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// TTL is the lifetime of issued tokens
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

// GenerateJWT creates a token for the given email
func (s *AuthService) GenerateJWT(email, displayName string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.NewValidationError("email", "email is required")
	}

	now := s.now()
	claims := &AuthClaims{
		Email:       email,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token.
// Every failure is reported as ErrInvalidCredentials; the cause is wrapped for logging.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(issuer))

	if err != nil {
		return nil, errors.Join(apperrors.ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidCredentials
	}
	if claims.Email == "" {
		claims.Email = claims.Subject
	}
	if claims.Email == "" {
		return nil, errors.Join(apperrors.ErrInvalidCredentials, fmt.Errorf("token carries no email"))
	}
	return claims, nil
}

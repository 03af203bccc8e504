package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingHeader = errors.New("authorization header missing")
	ErrInvalidHeader = errors.New("invalid authorization header format")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims is the session identity carried by a token.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Phone  string    `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey []byte        // Secret key for signing tokens
	exp       time.Duration // Token expiration duration
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(key)
	}
}

// WithExpiration sets the lifetime of generated tokens.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a JWT instance. Defaults: empty key, one hour expiration.
func New(opts ...Opt) *JWT {
	j := &JWT{exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for the given user.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, email, phone string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Phone:  phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate checks signature and expiration of the token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses the token and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
// Browsers cannot set headers on WebSocket upgrades, so the access_token
// query parameter is accepted as well.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("access_token"); token != "" {
			return token, nil
		}
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidHeader
	}

	return parts[1], nil
}

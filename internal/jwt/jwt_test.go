package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice@example.com", "01712345678")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "01712345678", claims.Phone)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "", "")
	assert.NoError(t, err)

	err = j.Validate(ctx, token)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, uuid.New(), "", "")
	assert.NoError(t, err)

	err = j2.Validate(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		query         string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "", "mytoken123", false},
		{"QueryToken", "", "?access_token=qtoken", "qtoken", false},
		{"NoHeader", "", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", "", true},
		{"TooManyParts", "Bearer a b c", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/jwt"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/stretchr/testify/require"
)

var testIdentity = models.Identity{
	UserID: uuid.MustParse("6f1c2a52-6a53-4a4e-9d0b-0f8f7b3f9e11"),
	Email:  "user@example.com",
	Phone:  "01712345678",
}

// newAuthedRequest builds a request as it looks after the auth middleware.
func newAuthedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	req := newRequest(t, method, target, body)
	claims := &jwt.Claims{UserID: testIdentity.UserID, Email: testIdentity.Email, Phone: testIdentity.Phone}
	return req.WithContext(jwt.WithClaims(req.Context(), claims))
}

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	return httptest.NewRequest(method, target, &buf)
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

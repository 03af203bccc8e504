package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
			expectedBody:   "hello",
		},
		{
			name:           "Conflict",
			handlerStatus:  http.StatusConflict,
			handlerBody:    `{"error":"insufficient funds"}`,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"insufficient funds"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.expectedBody, string(bodyBytes))

			reqID := rr.Header().Get("X-Request-ID")
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, seenID)
		})
	}
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _, err := rw.Hijack()
	assert.Error(t, err)
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}

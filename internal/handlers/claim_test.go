package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/invest-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestClaimHandler(t *testing.T) {
	tests := []struct {
		name               string
		result             *services.ClaimResult
		err                error
		expectedStatusCode int
	}{
		{"claimed", &services.ClaimResult{Claimed: 40, NewBalance: 1040}, nil, http.StatusOK},
		{"already claimed", nil, services.ErrAlreadyClaimedToday, http.StatusConflict},
		{"no profit", nil, services.ErrNoProfitAvailable, http.StatusConflict},
		{"not for today", nil, services.ErrProfitNotForToday, http.StatusConflict},
		{"no account", nil, services.ErrAccountNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockProfitClaimer(ctrl)
			mockSvc.EXPECT().ClaimDailyProfit(gomock.Any(), testIdentity).Return(tt.result, tt.err)

			rr := httptest.NewRecorder()
			NewClaimHandler(mockSvc).ServeHTTP(rr, newAuthedRequest(t, http.MethodPost, "/wallet/claim", nil))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.result != nil {
				assert.Equal(t, *tt.result, decodeBody[services.ClaimResult](t, rr))
			}
		})
	}
}

func TestClaimHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	NewClaimHandler(NewMockProfitClaimer(ctrl)).ServeHTTP(rr, newRequest(t, http.MethodPost, "/wallet/claim", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

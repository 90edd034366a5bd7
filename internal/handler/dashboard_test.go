package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

func TestDashboard_200(t *testing.T) {
	var gotUser string
	svc := &mockDashboard{
		get: func(_ context.Context, filterUser string) (domain.Dashboard, error) {
			gotUser = filterUser
			return domain.Dashboard{
				Payments:      []domain.Payment{},
				TotalEarnings: 225,
				DailyGoal:     domain.GoalProgress{Target: 3000, Current: 225},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?user=Ali", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{dashboard: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ali", gotUser)

	resp := decodeBody[domain.Dashboard](t, rec.Body)
	assert.InDelta(t, 225.0, resp.TotalEarnings, 1e-9)
	assert.InDelta(t, 3000.0, resp.DailyGoal.Target, 1e-9)
}

func TestDashboard_500_WithoutDetail(t *testing.T) {
	svc := &mockDashboard{
		get: func(context.Context, string) (domain.Dashboard, error) {
			return domain.Dashboard{}, errors.New("pq: connection refused")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{dashboard: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHealth_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(deps{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/api"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type readinessReport struct {
	Data struct {
		Status string `json:"status"`
		Checks []struct {
			Name  string `json:"name"`
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		} `json:"checks"`
	} `json:"data"`
}

func healthy(context.Context) error { return nil }

func TestLiveness(t *testing.T) {
	liveness, _ := api.NewHealthHandlers(nil, discardLogger())

	rec := httptest.NewRecorder()
	liveness(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, rec.Body.String())
}

/*
TestReadiness covers the ready and degraded reports.

Parameters:
  - checks: Probes registered with the handler

Returns:
  - HTTP status and overall status label
*/
func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		checks     []api.Check
		wantCode   int
		wantStatus string
	}{
		{
			name:       "no dependencies",
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name: "all healthy",
			checks: []api.Check{
				{Name: "postgres", Probe: healthy},
				{Name: "redis", Probe: healthy},
			},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name: "cache down",
			checks: []api.Check{
				{Name: "postgres", Probe: healthy},
				{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, readiness := api.NewHealthHandlers(tt.checks, discardLogger())

			rec := httptest.NewRecorder()
			readiness(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			var report readinessReport
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
			assert.Equal(t, tt.wantStatus, report.Data.Status)
			require.Len(t, report.Data.Checks, len(tt.checks))

			for i, check := range report.Data.Checks {
				assert.Equal(t, tt.checks[i].Name, check.Name)
				assert.Equal(t, check.Error == "", check.OK)
			}
		})
	}
}

func TestReadiness_PassesRequestContext(t *testing.T) {
	type key struct{}
	var seen any

	_, readiness := api.NewHealthHandlers([]api.Check{{
		Name: "mongo",
		Probe: func(ctx context.Context) error {
			seen = ctx.Value(key{})
			return nil
		},
	}}, discardLogger())

	request := httptest.NewRequest(http.MethodGet, "/ready", nil)
	request = request.WithContext(context.WithValue(request.Context(), key{}, "probe"))
	readiness(httptest.NewRecorder(), request)

	assert.Equal(t, "probe", seen)
}

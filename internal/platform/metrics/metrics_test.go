// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/platform/metrics"
)

/*
TestSetup_ExposesRecordedSeries scrapes the handler after recording a request.
*/
func TestSetup_ExposesRecordedSeries(t *testing.T) {
	m, handler, err := metrics.Setup("lingopress-test")
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordHTTPRequest(ctx, http.MethodGet, "/api/v1/public/posts", http.StatusOK, 15*time.Millisecond)
	m.RecordMutation(ctx, "publish_post", "ok")
	m.RecordCacheMiss(ctx, "latest")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "lp_http_requests_total")
	assert.Contains(t, body, "lp_post_mutations_total")
	assert.Contains(t, body, `operation="publish_post"`)
	assert.Contains(t, body, "lp_cache_misses_total")
}

/*
TestSetup_Twice ensures independent registries do not collide.
*/
func TestSetup_Twice(t *testing.T) {
	_, _, err := metrics.Setup("a")
	require.NoError(t, err)
	_, _, err = metrics.Setup("b")
	require.NoError(t, err)
}

func TestNoop(t *testing.T) {
	m := metrics.Noop()
	assert.NotPanics(t, func() {
		m.RecordVersionConflict(context.Background(), "save_post")
		m.RecordCacheHit(context.Background(), "pinned")
	})
}

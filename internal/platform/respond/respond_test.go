// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/platform/apperr"
	"github.com/taibuivan/lingopress/internal/platform/ctxutil"
	"github.com/taibuivan/lingopress/internal/platform/i18n"
	"github.com/taibuivan/lingopress/internal/platform/respond"
	"github.com/taibuivan/lingopress/pkg/pagination"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) respond.ErrorEnvelope {
	t.Helper()
	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

/*
TestError_Localized renders the message key in the request's language.
*/
func TestError_Localized(t *testing.T) {
	notFound := apperr.NotFound("Post").WithKey("errors.posts.post_not_found")

	tests := []struct {
		name     string
		language string
		want     string
	}{
		{"english", "en-US", "Post not found"},
		{"spanish", "es-AR", "Entrada no encontrada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/posts/x", nil)
			req = req.WithContext(ctxutil.WithLocalizer(req.Context(), i18n.New().Localizer(tt.language)))
			rec := httptest.NewRecorder()

			respond.Error(rec, req, notFound)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.want, body.Error)
			assert.Equal(t, "NOT_FOUND", body.Code)
			assert.Equal(t, "errors.posts.post_not_found", body.Key)
		})
	}
}

func TestError_UnknownKeyFallsBackToMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	respond.Error(rec, req, apperr.Conflict("Already there").WithKey("errors.nope"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Already there", decodeError(t, rec).Error)
}

func TestError_PlainErrorIsInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	respond.Error(rec, req, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.NotContains(t, body.Error, "relation")
}

func TestPaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Paginated(rec, []string{"a"}, pagination.NewMeta(pagination.Window{Skip: 0, Take: 1}, 3))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["a"],"meta":{"skip":0,"take":1,"total":3}}`, rec.Body.String())
}

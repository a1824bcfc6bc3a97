// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/content/tag"
	"github.com/taibuivan/lingopress/internal/platform/middleware"
	"github.com/taibuivan/lingopress/internal/platform/sec"
)

type memberVerifier struct{}

func (memberVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	return &sec.AuthClaims{UserID: token, Role: string(sec.RoleMember)}, nil
}

func TestHandler(t *testing.T) {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(memberVerifier{}))
	router.Mount("/tags", tag.NewHandler(newService()).Routes())

	call := func(method, path string, authenticated bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if authenticated {
			req.Header.Set("Authorization", "Bearer u1")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, call(http.MethodGet, "/tags/en", false).Code)

	rec := call(http.MethodPost, "/tags/en/golang", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data []struct {
			LocaleID string `json:"localeId"`
			Tag      string `json:"tag"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "en", body.Data[0].LocaleID)
	assert.Equal(t, "golang", body.Data[0].Tag)

	rec = call(http.MethodDelete, "/tags/en/golang", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data)

	assert.Equal(t, http.StatusBadRequest, call(http.MethodGet, "/tags/%3F%3F", true).Code)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/platform/i18n"
	"github.com/taibuivan/lingopress/internal/platform/middleware"
	"github.com/taibuivan/lingopress/internal/platform/sec"
	"github.com/taibuivan/lingopress/internal/users/account"
)

// claimsVerifier treats the bearer token as "<user id>:<role>".
type claimsVerifier struct{}

func (claimsVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	id, role, _ := strings.Cut(token, ":")
	return &sec.AuthClaims{UserID: id, Role: role}, nil
}

func newRouter(service *account.Service) http.Handler {
	handler := account.NewHandler(service)

	router := chi.NewRouter()
	router.Use(middleware.Localize(i18n.New()))
	router.Use(middleware.Authenticate(claimsVerifier{}))
	router.Mount("/users", handler.Routes())
	router.Mount("/roles", handler.RoleRoutes())
	return router
}

func do(t *testing.T, router http.Handler, method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

/*
TestRoles_Localized returns role names in the negotiated language.
*/
func TestRoles_Localized(t *testing.T) {
	router := newRouter(newService())

	tests := []struct {
		language string
		admin    string
		author   string
	}{
		{"en-US", "Administrator", "Author"},
		{"es-AR", "Administrador", "Autor"},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/roles", "", "", "Accept-Language", tt.language)
			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Data []account.Role `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Len(t, body.Data, 2)
			assert.Equal(t, sec.RoleAdmin, body.Data[0].ID)
			assert.Equal(t, tt.admin, body.Data[0].Name)
			assert.Equal(t, tt.author, body.Data[1].Name)
		})
	}
}

func TestMe(t *testing.T) {
	service := newService()
	router := newRouter(service)

	user, err := service.Register(context.Background(), account.RegisterInput{Email: "ana@example.com", Role: sec.RoleAuthor})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodGet, "/users/me", "", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/users/me", "ghost:member", "").Code)

	rec := do(t, router, http.MethodGet, "/users/me", user.ID+":author", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")

	rec = do(t, router, http.MethodPatch, "/users/me", user.ID+":author", `{"name":"Ana"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)

	rec = do(t, router, http.MethodPatch, "/users/me", user.ID+":author", `{"nickname":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_AdminOnly(t *testing.T) {
	router := newRouter(newService())
	body := `{"email":"new@example.com","role":"author"}`

	assert.Equal(t, http.StatusForbidden, do(t, router, http.MethodPost, "/users", "u1:author", body).Code)

	rec := do(t, router, http.MethodPost, "/users", "root:admin", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/users", "root:admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new@example.com")

	rec = do(t, router, http.MethodPost, "/users", "root:admin", `{"email":"x@example.com","role":"owner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

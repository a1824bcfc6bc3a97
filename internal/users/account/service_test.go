// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/platform/apperr"
	"github.com/taibuivan/lingopress/internal/platform/sec"
	"github.com/taibuivan/lingopress/internal/users/account"
)

func newService() *account.Service {
	return account.NewService(account.NewMemoryRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestRegister_Defaults assigns an id and the member role.
*/
func TestRegister_Defaults(t *testing.T) {
	service := newService()
	ctx := context.Background()

	user, err := service.Register(ctx, account.RegisterInput{Email: " Ana@Example.com "})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, sec.RoleMember, user.Role)
	assert.Equal(t, "ana@example.com", user.DisplayName())

	found, err := service.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
}

func TestRegister_Rejects(t *testing.T) {
	service := newService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input account.RegisterInput
		code  string
	}{
		{"missing_email", account.RegisterInput{}, "VALIDATION_ERROR"},
		{"bad_email", account.RegisterInput{Email: "nope"}, "VALIDATION_ERROR"},
		{"bad_role", account.RegisterInput{Email: "a@b.c", Role: "root"}, "VALIDATION_ERROR"},
		{"bad_id", account.RegisterInput{Email: "a@b.c", ID: "123"}, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.input)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}

	_, err := service.Register(ctx, account.RegisterInput{Email: "dup@example.com"})
	require.NoError(t, err)
	_, err = service.Register(ctx, account.RegisterInput{Email: "dup@example.com"})
	assert.Equal(t, http.StatusConflict, apperr.As(err).HTTPStatus)
}

func TestFindByID_Unknown(t *testing.T) {
	_, err := newService().FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, account.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	service := newService()
	ctx := context.Background()

	user, err := service.Register(ctx, account.RegisterInput{Email: "ana@example.com", Role: sec.RoleAuthor})
	require.NoError(t, err)

	updated, err := service.UpdateProfile(ctx, user.ID, "Ana Pérez")
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", updated.DisplayName())
	assert.Equal(t, sec.RoleAuthor, updated.Role)

	_, err = service.UpdateProfile(ctx, user.ID, "   ")
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.UpdateProfile(ctx, "missing", "Ghost")
	assert.ErrorIs(t, err, account.ErrUserNotFound)
}

func TestList_SortedByEmail(t *testing.T) {
	service := newService()
	ctx := context.Background()

	for _, email := range []string{"zoe@example.com", "ana@example.com"} {
		_, err := service.Register(ctx, account.RegisterInput{Email: email})
		require.NoError(t, err)
	}

	users, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ana@example.com", users[0].Email)
}

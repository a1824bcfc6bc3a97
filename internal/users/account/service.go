// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/lingopress/internal/platform/sec"
	"github.com/taibuivan/lingopress/internal/platform/validate"
	"github.com/taibuivan/lingopress/pkg/uuid"
)

// # Service Layer

// Service orchestrates account lookups and profile maintenance.
type Service struct {
	repository Repository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

/*
FindByID resolves a user by id. The post engine calls it to stamp authors.

Returns:
  - *User: The account
  - error: ErrUserNotFound when the id is unknown
*/
func (service *Service) FindByID(context context.Context, id string) (*User, error) {
	return service.repository.FindByID(context, id)
}

// List returns every account.
func (service *Service) List(context context.Context) ([]*User, error) {
	return service.repository.FindAll(context)
}

// Roles lists the roles that can be granted, highest first.
func (service *Service) Roles() []sec.UserRole {
	return sec.AssignableRoles
}

// RegisterInput carries the fields accepted when provisioning an account.
type RegisterInput struct {
	ID    string
	Email string
	Name  string
	Role  sec.UserRole
}

/*
Register provisions an account for an identity issued elsewhere.

An empty ID gets a fresh UUIDv7, and an empty Role defaults to member.

Returns:
  - *User: The stored account
  - error: VALIDATION_ERROR on bad input, CONFLICT on duplicates
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Role == "" {
		input.Role = sec.RoleMember
	}

	v := &validate.Validator{}
	v.Required("email", input.Email).
		MaxLen("email", input.Email, 254).
		Custom("email", input.Email != "" && !strings.Contains(input.Email, "@"), "Must be a valid email address").
		MaxLen("name", input.Name, 120).
		Custom("role", !input.Role.Valid(), "Unknown role")
	if input.ID != "" {
		v.UUID("id", input.ID)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if input.ID == "" {
		input.ID = uuid.New()
	}

	currentTime := service.now()
	user := &User{
		ID:        input.ID,
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		CreatedAt: currentTime,
		UpdatedAt: currentTime,
	}

	if err := service.repository.Insert(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "account_registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user, nil
}

/*
UpdateProfile changes the display name of an account.
*/
func (service *Service) UpdateProfile(context context.Context, id, name string) (*User, error) {
	name = strings.TrimSpace(name)

	v := &validate.Validator{}
	v.Required("name", name).MaxLen("name", name, 120)
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.UpdatedAt = service.now()

	if err := service.repository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_profile_failed: %w", err)
	}

	service.logger.InfoContext(context, "account_profile_updated", slog.String("user_id", id))
	return user, nil
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account manages the user records that posts are attributed to.

Identities are issued by an external provider; this package stores the profile
the content engine needs (display name, email, role) and resolves the acting
user when a post or translation is promoted.

# Architecture

  - Entities: User, Role.
  - Storage: Postgres, MongoDB and in-memory repositories behind [Repository].
  - Transport: /users and /roles endpoints.
*/
package account

import (
	"context"
	"time"

	"github.com/taibuivan/lingopress/internal/platform/apperr"
	"github.com/taibuivan/lingopress/internal/platform/sec"
)

// # Domain Entities

// User is a registered account.
type User struct {
	ID        string       `json:"id"          bson:"_id"`
	Email     string       `json:"email"       bson:"email"`
	Name      string       `json:"name"        bson:"name"`
	Role      sec.UserRole `json:"role"        bson:"role"`
	CreatedAt time.Time    `json:"created_at"  bson:"created"`
	UpdatedAt time.Time    `json:"updated_at"  bson:"updated"`
}

// DisplayName is the name shown on bylines, falling back to the email.
func (user *User) DisplayName() string {
	if user.Name != "" {
		return user.Name
	}
	return user.Email
}

// Role is a localised role description.
type Role struct {
	ID   sec.UserRole `json:"id"`
	Name string       `json:"name"`
}

// # Errors

// ErrUserNotFound is returned when an id does not resolve to an account.
var ErrUserNotFound = apperr.NotFound("User").WithKey("errors.users.user_not_found")

// # Repository Contracts

// Repository defines the persistence contract for user accounts.
type Repository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Loaded account entity
		  - error: ErrUserNotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindAll lists every account ordered by email.

		Returns:
		  - []*User: Accounts, never nil
		  - error: Storage failures
	*/
	FindAll(context context.Context) ([]*User, error)

	/*
		Insert persists a new account.

		Returns:
		  - error: apperr.Conflict on duplicate id or email
	*/
	Insert(context context.Context, user *User) error

	/*
		Update overwrites the mutable profile fields (name, role, updated).

		Returns:
		  - error: ErrUserNotFound or storage failures
	*/
	Update(context context.Context, user *User) error
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/lingopress/internal/platform/ctxutil"
	"github.com/taibuivan/lingopress/internal/platform/middleware"
	requestutil "github.com/taibuivan/lingopress/internal/platform/request"
	"github.com/taibuivan/lingopress/internal/platform/respond"
	"github.com/taibuivan/lingopress/internal/platform/sec"
)

// Handler implements the HTTP layer for accounts and roles.
type Handler struct {
	service *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /users router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(router chi.Router) {
		router.Use(middleware.RequireAuth)
		router.Get("/me", handler.getMe)
		router.Patch("/me", handler.updateMe)
	})

	router.Group(func(router chi.Router) {
		router.Use(middleware.RequireRole(sec.RoleAdmin))
		router.Get("/", handler.listUsers)
		router.Post("/", handler.registerUser)
	})

	return router
}

// RoleRoutes returns the public /roles router.
func (handler *Handler) RoleRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listRoles)
	return router
}

/*
GET /api/v1/roles.

Response:
  - 200: []Role: Grantable roles with names in the caller's language
*/
func (handler *Handler) listRoles(writer http.ResponseWriter, request *http.Request) {
	localizer := ctxutil.GetLocalizer(request.Context())

	roles := make([]Role, 0, len(handler.service.Roles()))
	for _, role := range handler.service.Roles() {
		roles = append(roles, Role{ID: role, Name: localizer.T(role.MessageKey(), string(role))})
	}

	respond.OK(writer, roles)
}

/*
GET /api/v1/users/me.

Response:
  - 200: User
  - 401: Authentication required
  - 404: The token's user has no account
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.FindByID(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

type updateMeRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

/*
PATCH /api/v1/users/me.

Request Body:
  - name: string (required)
*/
func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateMeRequest
	if err := requestutil.DecodeAndValidate(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateProfile(request.Context(), userID, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
GET /api/v1/users (admin).
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

type registerRequest struct {
	ID    string `json:"id"    validate:"omitempty,uuid"`
	Email string `json:"email" validate:"required,email,max=254"`
	Name  string `json:"name"  validate:"max=120"`
	Role  string `json:"role"  validate:"omitempty,oneof=admin author member"`
}

/*
POST /api/v1/users (admin).

Description: Provisions an account for an externally issued identity.

Response:
  - 201: User
  - 400: Validation failure
  - 409: Duplicate id or email
*/
func (handler *Handler) registerUser(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeAndValidate(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), RegisterInput{
		ID:    input.ID,
		Email: input.Email,
		Name:  input.Name,
		Role:  sec.UserRole(input.Role),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

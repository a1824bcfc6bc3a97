// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/lingopress/internal/platform/request"
	"github.com/taibuivan/lingopress/internal/platform/respond"
	"github.com/taibuivan/lingopress/internal/platform/validate"
	"github.com/taibuivan/lingopress/pkg/pagination"
)

// PublicRoutes returns the anonymous /public router.
func (handler *Handler) PublicRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/posts", handler.latestPublicPosts)
	router.Get("/posts/{id}", handler.publicPost)
	router.Get("/pinned", handler.pinnedPublicPosts)
	router.Get("/pinned/paths", handler.pinnedPublicPaths)
	router.Get("/pinned/{id}", handler.pinnedPublicPost)

	return router
}

/*
GET /api/v1/public/posts.

Request:
  - skip: int (default 0)
  - take: int (default 20, max 100)

Response:
  - 200: []PublicPost with skip/take/total metadata
  - 400: Malformed window
*/
func (handler *Handler) latestPublicPosts(writer http.ResponseWriter, request *http.Request) {
	window, err := pagination.FromRequest(request)
	if err != nil {
		var fieldErr *pagination.FieldError
		if errors.As(err, &fieldErr) {
			err = validate.RequiredError(fieldErr.Field, fieldErr.Message)
		}
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.GetLatestPublicPosts(request.Context(), window)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, page.Posts, pagination.NewMeta(window, page.Total))
}

/*
GET /api/v1/public/posts/{id}.

Response:
  - 200: PublicPost
  - 404: Missing, deleted, unpublished or pinned
*/
func (handler *Handler) publicPost(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetPublicPost(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

// GET /api/v1/public/pinned.
func (handler *Handler) pinnedPublicPosts(writer http.ResponseWriter, request *http.Request) {
	views, err := handler.service.GetPinnedPublicPosts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, views)
}

/*
GET /api/v1/public/pinned/paths.

Response:
  - 200: []PinnedPath: One entry per pinned post with its localised titles
*/
func (handler *Handler) pinnedPublicPaths(writer http.ResponseWriter, request *http.Request) {
	paths, err := handler.service.GetPinnedPublicPaths(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, paths)
}

// GET /api/v1/public/pinned/{id}.
func (handler *Handler) pinnedPublicPost(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetPinnedPublicPost(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	stdctx "context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/lingopress/internal/platform/middleware"
	requestutil "github.com/taibuivan/lingopress/internal/platform/request"
	"github.com/taibuivan/lingopress/internal/platform/respond"
	"github.com/taibuivan/lingopress/internal/platform/sec"
)

// # Handler Implementation

// Handler implements the HTTP layer for post authoring and public reads.
type Handler struct {
	service *Service
}

// NewHandler constructs a new post [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /posts router. Every endpoint requires the author role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAuthor))

	// ## Reads
	router.Get("/", handler.allPosts)
	router.Get("/drafts", handler.allDrafts)
	router.Get("/drafts/{id}", handler.getDraft)
	router.Get("/{id}", handler.getPost)

	// ## Post Lifecycle
	router.Post("/drafts", handler.createDraft)
	router.Put("/{id}/draft", handler.saveDraft)
	router.Put("/{id}", handler.savePost)
	router.Post("/{id}/publish", handler.publishPost)
	router.Post("/{id}/unpublish", handler.unpublishPost)
	router.Delete("/{id}", handler.deletePost)
	router.Post("/{id}/star", handler.starPost)

	// ## Translations
	router.Route("/{id}/translations/{lang}", func(router chi.Router) {
		router.Post("/", handler.addTranslation)
		router.Delete("/", handler.deleteTranslation)
		router.Put("/draft", handler.saveTranslationDraft)
		router.Put("/", handler.saveTranslationPost)
		router.Post("/publish", handler.publishTranslation)
		router.Post("/unpublish", handler.unpublishTranslation)
	})

	return router
}

// contentRequest is the body accepted by every save endpoint.
type contentRequest struct {
	Language    string   `json:"language"    validate:"omitempty,locale"`
	Title       string   `json:"title"       validate:"max=300"`
	Description string   `json:"description" validate:"max=1000"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"        validate:"max=32,dive,required,max=64"`
}

func (input contentRequest) content() Content {
	return Content{
		Language:    input.Language,
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		Tags:        input.Tags,
	}
}

// # Reads

/*
GET /api/v1/posts.

Response:
  - 200: []Post: Promoted, non-deleted posts
*/
func (handler *Handler) allPosts(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.AllPosts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

/*
GET /api/v1/posts/drafts.

Response:
  - 200: []Post: Non-deleted drafts
*/
func (handler *Handler) allDrafts(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.AllPostDrafts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

/*
GET /api/v1/posts/drafts/{id}.

Response:
  - 200: Post
  - 404: Missing, or already promoted
*/
func (handler *Handler) getDraft(writer http.ResponseWriter, request *http.Request) {
	handler.byID(writer, request, handler.service.GetDraft)
}

/*
GET /api/v1/posts/{id}.

Response:
  - 200: Post
  - 404: Missing, or still a draft
*/
func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	handler.byID(writer, request, handler.service.GetPost)
}

// # Post Lifecycle

/*
POST /api/v1/posts/drafts.

Response:
  - 201: Post: An empty draft
*/
func (handler *Handler) createDraft(writer http.ResponseWriter, request *http.Request) {
	p, err := handler.service.CreateDraft(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, p)
}

/*
PUT /api/v1/posts/{id}/draft.

Request Body:
  - language, title, description, body, tags (all optional)

Response:
  - 200: Post
  - 404: Post not found
  - 422: Language already used by a translation
*/
func (handler *Handler) saveDraft(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input contentRequest
	if err := requestutil.DecodeAndValidate(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.SaveDraft(request.Context(), id, input.content())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

/*
PUT /api/v1/posts/{id}.

Description: Saves the primary content and promotes the post, stamping the
caller as author.

Response:
  - 200: Post
  - 400: Language missing on a post that has none yet
  - 404: Post or acting user not found
*/
func (handler *Handler) savePost(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input contentRequest
	if err := requestutil.DecodeAndValidate(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.SavePost(request.Context(), id, input.content(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

// POST /api/v1/posts/{id}/publish.
func (handler *Handler) publishPost(writer http.ResponseWriter, request *http.Request) {
	handler.byID(writer, request, handler.service.PublishPost)
}

// POST /api/v1/posts/{id}/unpublish.
func (handler *Handler) unpublishPost(writer http.ResponseWriter, request *http.Request) {
	handler.byID(writer, request, handler.service.UnpublishPost)
}

// DELETE /api/v1/posts/{id}.
func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	handler.byID(writer, request, handler.service.DeletePost)
}

// POST /api/v1/posts/{id}/star.
func (handler *Handler) starPost(writer http.ResponseWriter, request *http.Request) {
	handler.byID(writer, request, handler.service.StarPost)
}

// # Translations

/*
POST /api/v1/posts/{id}/translations/{lang}.

Response:
  - 200: Post (unchanged when the language already exists)
  - 422: lang equals the primary language
*/
func (handler *Handler) addTranslation(writer http.ResponseWriter, request *http.Request) {
	handler.translation(writer, request, handler.service.AddTranslation)
}

// DELETE /api/v1/posts/{id}/translations/{lang}.
func (handler *Handler) deleteTranslation(writer http.ResponseWriter, request *http.Request) {
	handler.translation(writer, request, handler.service.DeleteTranslation)
}

// POST /api/v1/posts/{id}/translations/{lang}/publish.
func (handler *Handler) publishTranslation(writer http.ResponseWriter, request *http.Request) {
	handler.translation(writer, request, handler.service.PublishTranslationPost)
}

// POST /api/v1/posts/{id}/translations/{lang}/unpublish.
func (handler *Handler) unpublishTranslation(writer http.ResponseWriter, request *http.Request) {
	handler.translation(writer, request, handler.service.UnpublishTranslationPost)
}

/*
PUT /api/v1/posts/{id}/translations/{lang}/draft.

Request Body:
  - title, description, body, tags (language is taken from the path)
*/
func (handler *Handler) saveTranslationDraft(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input contentRequest
	if err := requestutil.DecodeAndValidate(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.SaveTranslationDraft(request.Context(), id, requestutil.Param(request, "lang"), input.content())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

/*
PUT /api/v1/posts/{id}/translations/{lang}.

Description: Saves and promotes the translation, stamping the caller as author.
*/
func (handler *Handler) saveTranslationPost(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input contentRequest
	if err := requestutil.DecodeAndValidate(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.SaveTranslationPost(request.Context(), id, requestutil.Param(request, "lang"), input.content(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

// # Helpers

// byID runs an id-only operation and writes the resulting post.
func (handler *Handler) byID(writer http.ResponseWriter, request *http.Request, operation func(stdctx.Context, string) (*Post, error)) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := operation(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

// translation runs an (id, language) operation and writes the resulting post.
func (handler *Handler) translation(writer http.ResponseWriter, request *http.Request, operation func(stdctx.Context, string, string) (*Post, error)) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := operation(request.Context(), id, requestutil.Param(request, "lang"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

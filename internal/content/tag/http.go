// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/lingopress/internal/platform/middleware"
	requestutil "github.com/taibuivan/lingopress/internal/platform/request"
	"github.com/taibuivan/lingopress/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /tags router. Any signed-in user may edit the vocabulary.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{locale}", handler.allTags)
	router.Post("/{locale}/{tag}", handler.addTag)
	router.Delete("/{locale}/{tag}", handler.removeTag)

	return router
}

func (handler *Handler) allTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.AllTags(request.Context(), requestutil.Param(request, "locale"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) addTag(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.AddTag(request.Context(), requestutil.Param(request, "locale"), requestutil.Param(request, "tag"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

func (handler *Handler) removeTag(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.RemoveTag(request.Context(), requestutil.Param(request, "locale"), requestutil.Param(request, "tag"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Public listings are windowed with "skip" and "take" query parameters. Unlike
// silently clamping bad input, [FromRequest] rejects malformed or out-of-range
// bounds so the caller learns about the mistake.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	// DefaultTake is the number of items returned when "take" is omitted.
	DefaultTake = 20
	// MaxTake is the upper bound for a single window.
	MaxTake = 100
)

// Window is a skip/take slice over an ordered result set.
type Window struct {
	Skip int
	Take int
}

// Validate reports the first out-of-range bound as a field/message pair.
func (w Window) Validate() (field, message string, ok bool) {
	if w.Skip < 0 {
		return "skip", "must be zero or greater", false
	}
	if w.Take < 1 || w.Take > MaxTake {
		return "take", fmt.Sprintf("must be between 1 and %d", MaxTake), false
	}
	return "", "", true
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Skip  int `json:"skip"`
	Take  int `json:"take"`
	Total int `json:"total"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(w Window, total int) Meta {
	return Meta{Skip: w.Skip, Take: w.Take, Total: total}
}

// FieldError describes one unusable query parameter.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FromRequest parses "skip" and "take" query parameters from an HTTP request.
//
// Missing parameters fall back to 0 and [DefaultTake]. Non-numeric or
// out-of-range values return a [*FieldError].
func FromRequest(r *http.Request) (Window, error) {
	skip, err := parseIntParam(r, "skip", 0)
	if err != nil {
		return Window{}, err
	}

	take, err := parseIntParam(r, "take", DefaultTake)
	if err != nil {
		return Window{}, err
	}

	w := Window{Skip: skip, Take: take}
	if field, message, ok := w.Validate(); !ok {
		return Window{}, &FieldError{Field: field, Message: message}
	}

	return w, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: key, Message: "must be an integer"}
	}

	return n, nil
}

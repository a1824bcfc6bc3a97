// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/platform/apperr"
	"github.com/taibuivan/lingopress/internal/platform/validate"
)

type contentRequest struct {
	Language string   `json:"language" validate:"omitempty,locale"`
	Title    string   `json:"title" validate:"max=10"`
	Tags     []string `json:"tags" validate:"max=3,dive,required,max=8"`
}

/*
TestStruct maps go-playground failures onto JSON field names.
*/
func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		input  contentRequest
		fields []string
	}{
		{"valid", contentRequest{Language: "es-AR", Title: "Hola", Tags: []string{"go"}}, nil},
		{"empty_language_allowed", contentRequest{Title: "Hola"}, nil},
		{"bad_language", contentRequest{Language: "not a tag"}, []string{"language"}},
		{"long_title", contentRequest{Title: "far too long title"}, []string{"title"}},
		{"blank_tag", contentRequest{Tags: []string{"go", ""}}, []string{"tags[1]"}},
		{"too_many_tags", contentRequest{Tags: []string{"a", "b", "c", "d"}}, []string{"tags"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

			got := make([]string, 0, len(appErr.Details))
			for _, d := range appErr.Details {
				got = append(got, d.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

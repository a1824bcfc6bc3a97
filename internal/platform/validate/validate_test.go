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

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Hola", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
				assert.Equal(t, tt.field, appErr.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Language tests BCP 47 validation with the optional switch.
*/
func TestValidator_Language(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		optional bool
		hasError bool
	}{
		{"simple", "en", false, false},
		{"region", "es-AR", false, false},
		{"underscore", "en_US", false, false},
		{"empty_required", "", false, true},
		{"empty_optional", "", true, false},
		{"garbage", "english please", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Language("language", tt.value, tt.optional)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain collects every failure in order.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}
	v.Required("title", "").
		MaxLen("description", "toolong", 3).
		Range("take", 0, 1, 100).
		UUID("id", "nope").
		OneOf("driver", "sqlite", "postgres", "mongo").
		Each("tags", []string{"ok", ""}, func(v *validate.Validator, field, value string) {
			v.Required(field, value)
		}).
		Custom("skip", true, "Must be zero or greater")

	appErr := apperr.As(v.Err())
	require.NotNil(t, appErr)

	fields := make([]string, 0, len(appErr.Details))
	for _, d := range appErr.Details {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{"title", "description", "take", "id", "driver", "tags[1]", "skip"}, fields)
}

func TestValidator_UUID(t *testing.T) {
	v := &validate.Validator{}
	v.UUID("id", "01890A5D-AC96-774B-BCCE-B302099A8057")
	assert.False(t, v.HasErrors())
}

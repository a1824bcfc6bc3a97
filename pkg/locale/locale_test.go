// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/pkg/locale"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"en-us", "en-US"},
		{"EN_us", "en-US"},
		{" es-AR ", "es-AR"},
		{"zh-hant-tw", "zh-Hant-TW"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := locale.Canonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonical_Rejects(t *testing.T) {
	_, err := locale.Canonical("   ")
	assert.ErrorIs(t, err, locale.ErrEmpty)

	_, err = locale.Canonical("not a language!")
	assert.ErrorIs(t, err, locale.ErrMalformed)
}

func TestEqual(t *testing.T) {
	assert.True(t, locale.Equal("en-us", "en-US"))
	assert.False(t, locale.Equal("en", "es"))
	assert.False(t, locale.Equal("", ""))
}

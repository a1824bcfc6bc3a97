// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/taibuivan/lingopress/internal/platform/i18n"
)

/*
TestMatch resolves Accept-Language headers to a shipped catalogue.
*/
func TestMatch(t *testing.T) {
	tr := i18n.New()

	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{"empty", "", language.AmericanEnglish},
		{"english", "en-GB,en;q=0.8", language.AmericanEnglish},
		{"spanish_region", "es-AR", i18n.SpanishArgentina},
		{"spanish_generic", "es;q=0.9,en;q=0.5", i18n.SpanishArgentina},
		{"unsupported", "ja-JP", language.AmericanEnglish},
		{"garbage", ";;;", language.AmericanEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.header))
		})
	}
}

func TestLocalizer_T(t *testing.T) {
	tr := i18n.New()

	es := tr.Localizer("es-AR")
	assert.Equal(t, "Entrada no encontrada", es.T("errors.posts.post_not_found", "Post not found"))
	assert.Equal(t,
		"No se puede agregar una traducción del mismo idioma que la entrada original",
		es.T("errors.posts.cant_add_translation_same_language", ""),
	)

	en := tr.Localizer("en-US")
	assert.Equal(t, "Post not found", en.T("errors.posts.post_not_found", "fallback"))
	assert.Equal(t, "Author", en.T("roles.author", ""))

	assert.Equal(t, "fallback", en.T("errors.unknown_key", "fallback"))
	assert.Equal(t, "fallback", en.T("", "fallback"))
}

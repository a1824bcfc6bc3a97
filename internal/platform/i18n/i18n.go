// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n translates symbolic message keys into user-facing text.

The domain never produces prose: errors carry a key such as
"errors.posts.post_not_found" and the transport resolves it against the
catalogue for the caller's Accept-Language. American English is the fallback
for unknown languages and for keys missing from a catalogue.

Usage:

	tr := i18n.New()
	loc := tr.Localizer(r.Header.Get("Accept-Language"))
	text := loc.T("errors.posts.post_not_found", "Post not found")
*/
package i18n

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Spanish (Argentina) is the second shipped catalogue.
var SpanishArgentina = language.MustParse("es-AR")

// supported lists catalogue languages, fallback first.
var supported = []language.Tag{language.AmericanEnglish, SpanishArgentina}

// Translator owns the message catalogue and the language matcher.
// It is safe for concurrent use.
type Translator struct {
	matcher language.Matcher
	catalog *catalog.Builder
	known   map[string]struct{}
}

// New builds a Translator loaded with every shipped message.
func New() *Translator {
	builder := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	known := make(map[string]struct{}, len(messages))

	for key, byLang := range messages {
		known[key] = struct{}{}
		for tag, text := range byLang {
			// SetString only fails for malformed messages; the table is static
			if err := builder.SetString(tag, key, text); err != nil {
				panic("i18n: invalid message " + key + ": " + err.Error())
			}
		}
	}

	return &Translator{
		matcher: language.NewMatcher(supported),
		catalog: builder,
		known:   known,
	}
}

var defaultTranslator = sync.OnceValue(New)

// Default returns a process-wide Translator.
func Default() *Translator {
	return defaultTranslator()
}

// Match picks the best supported language for an Accept-Language header value.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Localizer returns a [Localizer] bound to the best match for acceptLanguage.
func (t *Translator) Localizer(acceptLanguage string) *Localizer {
	return t.For(t.Match(acceptLanguage))
}

// For returns a [Localizer] bound to tag.
func (t *Translator) For(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(t.catalog)),
		known:   t.known,
	}
}

// Localizer renders messages for a single language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
	known   map[string]struct{}
}

// Language returns the language the localizer renders.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T renders key, or fallback when the catalogue has no entry for key.
func (l *Localizer) T(key, fallback string) string {
	if _, ok := l.known[key]; !ok || key == "" {
		return fallback
	}
	return l.printer.Sprintf(key)
}

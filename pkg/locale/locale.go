// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package locale normalises BCP 47 language identifiers.
//
// Post languages and tag vocabularies are keyed by locale, so "en-us",
// "en_US" and "EN-US" must all land on the same key ("en-US").
package locale

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

var (
	// ErrEmpty is returned for a blank identifier.
	ErrEmpty = errors.New("locale: empty language identifier")
	// ErrMalformed is returned when the identifier is not a well-formed BCP 47 tag.
	ErrMalformed = errors.New("locale: malformed language identifier")
)

// Canonical parses s and returns its canonical BCP 47 string form.
func Canonical(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", ErrMalformed
	}

	return tag.String(), nil
}

// Equal reports whether a and b identify the same language after
// canonicalisation. Malformed identifiers never compare equal.
func Equal(a, b string) bool {
	ca, err := Canonical(a)
	if err != nil {
		return false
	}
	cb, err := Canonical(b)
	if err != nil {
		return false
	}
	return ca == cb
}

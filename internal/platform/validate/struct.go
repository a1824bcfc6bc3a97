// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/lingopress/internal/platform/apperr"
	"github.com/taibuivan/lingopress/pkg/locale"
)

var structValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// "locale" accepts anything pkg/locale can canonicalise, including "en_US"
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := locale.Canonical(fl.Field().String())
		return err == nil
	})

	return v
})

// Struct validates a request DTO using its `validate` struct tags.
//
// Failures are returned as a VALIDATION_ERROR [apperr.AppError] with one
// detail per failing field.
func Struct(target any) error {
	err := structValidator().Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, apperr.FieldError{
			Field:   fieldPath(fe),
			Message: describe(fe),
		})
	}

	return apperr.ValidationError("Validation failed", details...)
}

// fieldPath strips the root struct name from the namespace ("Req.tags[0]" → "tags[0]").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Minimum %s characters", fe.Param())
	case "locale", "bcp47_language_tag":
		return "Must be a valid language tag (e.g. en, es-AR)"
	case "dive":
		return "Contains an invalid item"
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Failed the %q rule", fe.Tag())
	}
}

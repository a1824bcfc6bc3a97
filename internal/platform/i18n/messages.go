// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

import "golang.org/x/text/language"

// messages maps a key to its text per catalogue language.
var messages = map[string]map[language.Tag]string{

	// # Generic

	"errors.not_found": {
		language.AmericanEnglish: "Resource not found",
		SpanishArgentina:         "Recurso no encontrado",
	},
	"errors.not_authenticated": {
		language.AmericanEnglish: "Unauthenticated access",
		SpanishArgentina:         "Acceso sin autenticar",
	},
	"errors.forbidden": {
		language.AmericanEnglish: "You do not have permission to perform this action",
		SpanishArgentina:         "No tenés permiso para realizar esta acción",
	},
	"errors.validation_failed": {
		language.AmericanEnglish: "Validation failed",
		SpanishArgentina:         "La validación falló",
	},
	"errors.invalid_json": {
		language.AmericanEnglish: "Invalid JSON payload",
		SpanishArgentina:         "El cuerpo JSON no es válido",
	},
	"errors.internal": {
		language.AmericanEnglish: "An unexpected error occurred",
		SpanishArgentina:         "Ocurrió un error inesperado",
	},
	"errors.rate_limited": {
		language.AmericanEnglish: "Too many requests",
		SpanishArgentina:         "Demasiadas solicitudes",
	},
	"errors.timeout": {
		language.AmericanEnglish: "The request was cancelled",
		SpanishArgentina:         "La solicitud fue cancelada",
	},
	"errors.duplicate": {
		language.AmericanEnglish: "Duplicate entry",
		SpanishArgentina:         "Entrada duplicada",
	},

	// # Posts

	"errors.posts.post_not_found": {
		language.AmericanEnglish: "Post not found",
		SpanishArgentina:         "Entrada no encontrada",
	},
	"errors.posts.translation_not_found": {
		language.AmericanEnglish: "Translation not found",
		SpanishArgentina:         "Traducción no encontrada",
	},
	"errors.posts.cant_add_translation_same_language": {
		language.AmericanEnglish: "Cannot add a translation of the same language of the original post",
		SpanishArgentina:         "No se puede agregar una traducción del mismo idioma que la entrada original",
	},
	"errors.posts.concurrent_update": {
		language.AmericanEnglish: "The post was modified concurrently, please retry",
		SpanishArgentina:         "La entrada fue modificada al mismo tiempo, intentá de nuevo",
	},

	// # Users

	"errors.users.user_not_found": {
		language.AmericanEnglish: "User not found",
		SpanishArgentina:         "Usuario no encontrado",
	},
	"roles.admin": {
		language.AmericanEnglish: "Administrator",
		SpanishArgentina:         "Administrador",
	},
	"roles.author": {
		language.AmericanEnglish: "Author",
		SpanishArgentina:         "Autor",
	},

	// # Tags

	"errors.tags.invalid_tag": {
		language.AmericanEnglish: "Invalid tag",
		SpanishArgentina:         "Etiqueta inválida",
	},
}

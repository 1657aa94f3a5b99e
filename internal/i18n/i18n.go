// Package i18n provides internationalization support for the bundle service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator resolves message keys to localized strings.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator backed by the built-in catalogs.
func NewTranslator() *Translator {
	return &Translator{messages: messages}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate resolves key in the given locale. Unknown locales and
// untranslated keys fall back to English; a key missing there too is
// returned verbatim so the widget still has something to show.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the response language from the Accept-Language header.
// Only the first (highest priority) entry is considered and region subtags
// are dropped, so pt-BR is served the pt catalog. Unsupported languages
// get English.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	lang := strings.Split(header, ",")[0]
	lang = strings.Split(lang, ";")[0] // drop the quality weight
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}

	if _, ok := messages[lang]; ok {
		return lang
	}
	return DefaultLocale
}

// messages holds every user-facing string, keyed by locale and message key.
// English is the reference catalog; the other locales must cover the same
// keys or their users see untranslated fallbacks.
var messages = map[string]map[string]string{
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.internal_error":       "An unexpected error occurred",
		"error.not_found":            "Not found",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.conflict":             "Conflict",
		"error.timeout":              "Request timed out",
		"error.unknown_product":      "Product is not part of the catalog",
		"error.toggle_in_flight":     "Previous selection is still being applied",
		"error.bundle_full":          "Bundle is already complete",
		"error.checkout_not_ready":   "Checkout is not ready yet",
		"error.product_not_selected": "Product is not in the bundle",
		"error.validation.product_id": "product_id: must be a positive integer",
		"error.validation.delta":      "delta: must not be zero",

		"success.bundle_confirmed": "Bundle added to cart",
	},
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.not_found":            "Não encontrado",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.conflict":             "Conflito",
		"error.timeout":              "Tempo de requisição esgotado",
		"error.unknown_product":      "Produto não faz parte do catálogo",
		"error.toggle_in_flight":     "A seleção anterior ainda está sendo aplicada",
		"error.bundle_full":          "O kit já está completo",
		"error.checkout_not_ready":   "O checkout ainda não está pronto",
		"error.product_not_selected": "Produto não está no kit",
		"error.validation.product_id": "product_id: deve ser um inteiro positivo",
		"error.validation.delta":      "delta: não pode ser zero",

		"success.bundle_confirmed": "Kit adicionado ao carrinho",
	},
	"nl": {
		"error.invalid_request":      "Ongeldig verzoek",
		"error.invalid_request_body": "Ongeldige aanvraag body",
		"error.internal_error":       "Er is een onverwachte fout opgetreden",
		"error.not_found":            "Niet gevonden",
		"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
		"error.conflict":             "Conflict",
		"error.timeout":              "Verzoek verlopen",
		"error.unknown_product":      "Product maakt geen deel uit van de catalogus",
		"error.toggle_in_flight":     "Vorige selectie wordt nog toegepast",
		"error.bundle_full":          "Bundel is al compleet",
		"error.checkout_not_ready":   "Afrekenen is nog niet gereed",
		"error.product_not_selected": "Product zit niet in de bundel",
		"error.validation.product_id": "product_id: moet een positief geheel getal zijn",
		"error.validation.delta":      "delta: mag niet nul zijn",

		"success.bundle_confirmed": "Bundel toegevoegd aan winkelwagen",
	},
}

package phone

import (
	"strings"

	"weddingrsvp/internal/models"
)

// country calling code prefixed when the digits don't already carry it
const (
	usPrefix     = "1"
	mexicoPrefix = "52"
)

// Normalize canonicalizes a phone number to an E.164-like form based on the
// guest's language: Spanish numbers get +52, English numbers get +1.
// Best-effort only — digit counts are not validated.
//
// Inputs that are empty, already start with "+", or contain no digits at all
// are returned unchanged so the caller never loses what the guest typed.
func Normalize(raw string, language models.Language) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "+") {
		return trimmed
	}

	digits := keepDigits(trimmed)
	if digits == "" {
		return trimmed
	}

	prefix := usPrefix
	if language == models.LanguageSpanish {
		prefix = mexicoPrefix
	}
	if strings.HasPrefix(digits, prefix) {
		return "+" + digits
	}
	return "+" + prefix + digits
}

// keepDigits strips every non-digit character
func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

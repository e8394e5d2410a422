package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SanitizeFormText normalizes a text field submitted through a web form.
// Dari and Pashto input arrives in whatever normalization form the
// user's keyboard layout produces, so everything is folded to NFC
// before it is compared or stored. Invalid UTF-8 bytes are replaced
// instead of propagated into the JSON file.
func SanitizeFormText(text string) string {
	text = strings.ToValidUTF8(text, "�")
	text = norm.NFC.String(text)
	text = stripControlChars(text)
	return strings.TrimSpace(text)
}

// stripControlChars removes control characters from form input.
// Newlines are kept: the meaning field is a textarea.
func stripControlChars(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}

// SanitizeProverb sanitizes every text field of a proverb in place.
func SanitizeProverb(p *Proverb) {
	p.TextDari = SanitizeFormText(p.TextDari)
	p.TextPashto = SanitizeFormText(p.TextPashto)
	p.TranslationEn = SanitizeFormText(p.TranslationEn)
	p.Meaning = SanitizeFormText(p.Meaning)
	p.Category = SanitizeFormText(p.Category)
}

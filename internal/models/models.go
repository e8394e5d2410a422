// Package models defines core data structures for go-matal
package models

// Proverb represents one proverb entry in the collection
type Proverb struct {
	ID            int    `json:"id"`
	TextDari      string `json:"textDari"`
	TextPashto    string `json:"textPashto"`
	TranslationEn string `json:"translationEn"`
	Meaning       string `json:"meaning"`
	Category      string `json:"category"`
}

// CategoryChoices are the categories offered in the add/edit forms.
// The store accepts any category string, these are only the choices
// presented in the UI.
var CategoryChoices = []string{
	"wisdom",
	"perseverance",
	"patience",
	"wealth",
	"fate",
	"friendship",
}

// MissingRequired returns the human-readable names of required fields
// that are empty. Meaning is optional, everything else is required.
func (p *Proverb) MissingRequired() []string {
	var missing []string
	if p.TextDari == "" {
		missing = append(missing, "Dari text")
	}
	if p.TextPashto == "" {
		missing = append(missing, "Pashto text")
	}
	if p.TranslationEn == "" {
		missing = append(missing, "English translation")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

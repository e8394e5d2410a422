package web

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-matal/internal/models"
	"github.com/go-while/go-matal/internal/store"
)

// addProverbPage renders the empty creation form
func (s *WebServer) addProverbPage(c *gin.Context) {
	data := ProverbFormData{
		TemplateData: s.getBaseTemplateData(c, "Add Proverb"),
		Categories:   models.CategoryChoices,
	}
	s.renderTemplate(c, "proverb_form.html", data)
}

// addProverbSubmit handles proverb creation. A validation failure
// re-renders the form with the submitted values preserved so nothing
// the user typed is lost.
func (s *WebServer) addProverbSubmit(c *gin.Context) {
	form := parseProverbForm(c)

	// Validate required fields
	if missing := form.MissingRequired(); len(missing) > 0 {
		data := ProverbFormData{
			TemplateData: s.getBaseTemplateData(c, "Add Proverb"),
			Form:         form,
			FormError:    "Required: " + strings.Join(missing, ", "),
			Categories:   models.CategoryChoices,
		}
		s.renderTemplate(c, "proverb_form.html", data)
		return
	}

	// Assign the next id and append inside one locked read-modify-write cycle
	err := s.Store.Mutate(func(proverbs []models.Proverb) ([]models.Proverb, error) {
		form.ID = store.NextProverbID(proverbs)
		return append(proverbs, form), nil
	})
	if err != nil {
		log.Printf("[WEB]: Failed to create proverb: %v", err)
		data := ProverbFormData{
			TemplateData: s.getBaseTemplateData(c, "Add Proverb"),
			Form:         form,
			FormError:    "Failed to save proverb",
			Categories:   models.CategoryChoices,
		}
		s.renderTemplate(c, "proverb_form.html", data)
		return
	}

	redirectWithSuccess(c, "/", "Proverb added successfully")
}

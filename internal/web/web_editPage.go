package web

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-matal/internal/models"
	"github.com/go-while/go-matal/internal/store"
)

// editProverbPage renders the edit form pre-filled with the stored record
func (s *WebServer) editProverbPage(c *gin.Context) {
	id, err := parseProverbID(c)
	if err != nil {
		redirectWithError(c, "/", "Invalid proverb ID")
		return
	}

	proverbs, err := s.Store.ReadAll()
	if err != nil {
		log.Printf("[WEB]: Failed to read proverbs for edit page: %v", err)
		redirectWithError(c, "/", "Failed to load proverbs")
		return
	}

	proverb := store.FindProverb(proverbs, id)
	if proverb == nil {
		redirectWithError(c, "/", "Proverb not found")
		return
	}

	data := ProverbFormData{
		TemplateData: s.getBaseTemplateData(c, "Edit Proverb"),
		Form:         *proverb,
		IsEdit:       true,
		Categories:   models.CategoryChoices,
	}
	s.renderTemplate(c, "proverb_form.html", data)
}

// editProverbSubmit replaces every field of the record except its id
func (s *WebServer) editProverbSubmit(c *gin.Context) {
	id, err := parseProverbID(c)
	if err != nil {
		redirectWithError(c, "/", "Invalid proverb ID")
		return
	}

	form := parseProverbForm(c)
	form.ID = id

	err = s.Store.Mutate(func(proverbs []models.Proverb) ([]models.Proverb, error) {
		for i := range proverbs {
			if proverbs[i].ID == id {
				proverbs[i] = form
				return proverbs, nil
			}
		}
		return nil, store.ErrNotFound
	})
	if errors.Is(err, store.ErrNotFound) {
		redirectWithError(c, "/", "Proverb not found")
		return
	}
	if err != nil {
		log.Printf("[WEB]: Failed to update proverb %d: %v", id, err)
		data := ProverbFormData{
			TemplateData: s.getBaseTemplateData(c, "Edit Proverb"),
			Form:         form,
			FormError:    "Failed to save proverb",
			IsEdit:       true,
			Categories:   models.CategoryChoices,
		}
		s.renderTemplate(c, "proverb_form.html", data)
		return
	}

	redirectWithSuccess(c, "/proverb/"+strconv.Itoa(id), "Proverb updated successfully")
}

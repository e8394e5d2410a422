package web

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-matal/internal/store"
)

// proverbPage renders the detail view for a single proverb
func (s *WebServer) proverbPage(c *gin.Context) {
	id, err := parseProverbID(c)
	if err != nil {
		redirectWithError(c, "/", "Invalid proverb ID")
		return
	}

	proverbs, err := s.Store.ReadAll()
	if err != nil {
		log.Printf("[WEB]: Failed to read proverbs for detail page: %v", err)
		redirectWithError(c, "/", "Failed to load proverbs")
		return
	}

	proverb := store.FindProverb(proverbs, id)
	if proverb == nil {
		redirectWithError(c, "/", "Proverb not found")
		return
	}

	data := ProverbPageData{
		TemplateData: s.getBaseTemplateData(c, proverb.TranslationEn),
		Proverb:      proverb,
	}
	s.renderTemplate(c, "proverb.html", data)
}

package web

import (
	"log"
	"math/rand/v2"

	"github.com/gin-gonic/gin"
)

// randomProverbPage picks one proverb uniformly at random and renders
// it in the detail view. An empty collection redirects home with a
// notice instead of rendering.
func (s *WebServer) randomProverbPage(c *gin.Context) {
	proverbs, err := s.Store.ReadAll()
	if err != nil {
		log.Printf("[WEB]: Failed to read proverbs for random pick: %v", err)
		redirectWithError(c, "/", "Failed to load proverbs")
		return
	}
	if len(proverbs) == 0 {
		redirectWithError(c, "/", "No proverbs available yet")
		return
	}

	proverb := &proverbs[rand.IntN(len(proverbs))]

	data := ProverbPageData{
		TemplateData: s.getBaseTemplateData(c, "Random Proverb"),
		Proverb:      proverb,
		IsRandom:     true,
	}
	s.renderTemplate(c, "proverb.html", data)
}

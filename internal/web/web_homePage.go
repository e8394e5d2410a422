package web

import (
	"log"

	"github.com/gin-gonic/gin"
)

// homePage renders the full proverb list at "/".
// A store read failure still renders the page, just with empty data
// and an error notice, so the site never shows a bare 500 for the list.
func (s *WebServer) homePage(c *gin.Context) {
	data := HomePageData{
		TemplateData: s.getBaseTemplateData(c, "Proverbs"),
	}

	proverbs, err := s.Store.ReadAll()
	if err != nil {
		log.Printf("[WEB]: Failed to read proverbs for home page: %v", err)
		data.LoadFailed = true
		if data.Error == "" {
			data.Error = "Failed to load proverbs"
		}
	} else {
		data.Proverbs = proverbs
	}
	data.ProverbCount = len(data.Proverbs)

	s.renderTemplate(c, "home.html", data)
}

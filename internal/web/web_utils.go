package web

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-matal/internal/config"
	"github.com/go-while/go-matal/internal/models"
)

// ErrMissingCertConfig is returned when SSL is enabled without cert/key files
var ErrMissingCertConfig = errors.New("SSL enabled but cert_file or key_file not specified in config")

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common information
// including any success/error notice carried over from a redirect
func (s *WebServer) getBaseTemplateData(c *gin.Context, title string) TemplateData {
	return TemplateData{
		Title:       title,
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
		Port:        s.GetPort(),
		AppVersion:  config.AppVersion,
		Success:     c.Query("success"),
		Error:       c.Query("error"),
	}
}

// renderTemplate renders a page template inside the base layout.
// Templates are parsed per request from the embedded filesystem to
// avoid template name conflicts between pages.
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	tmpl := template.Must(template.ParseFS(embeddedWebFS,
		"templates/base.html", "templates/"+templateName))
	c.Header("Content-Type", "text/html; charset=utf-8")
	err := tmpl.ExecuteTemplate(c.Writer, "base.html", data)
	if err != nil {
		log.Printf("[WEB]: Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
	}
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := struct {
		TemplateData
		Message    string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData(c, "Error"),
		Message:      message,
		StatusCode:   statusCode,
	}
	log.Printf("[WEB]: Error %d: %s - %s", statusCode, message, errstring)

	tmpl := template.Must(template.ParseFS(embeddedWebFS,
		"templates/base.html", "templates/error.html"))
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(statusCode)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", errorData); err != nil {
		log.Printf("[WEB]: Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s - %s", message, errstring)
	}
}

// redirectWithSuccess redirects carrying a success notice as a query parameter
func redirectWithSuccess(c *gin.Context, target string, notice string) {
	c.Redirect(http.StatusSeeOther, target+"?success="+url.QueryEscape(notice))
}

// redirectWithError redirects carrying an error notice as a query parameter
func redirectWithError(c *gin.Context, target string, notice string) {
	c.Redirect(http.StatusSeeOther, target+"?error="+url.QueryEscape(notice))
}

// parseProverbID parses the :id route parameter. Ids are positive integers.
func parseProverbID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("proverb id must be positive")
	}
	return id, nil
}

// parseProverbForm reads the proverb fields from a submitted form and
// sanitizes them. The id is not part of the form, it is assigned by the
// create handler or taken from the route by the edit handler.
func parseProverbForm(c *gin.Context) models.Proverb {
	p := models.Proverb{
		TextDari:      c.PostForm("textDari"),
		TextPashto:    c.PostForm("textPashto"),
		TranslationEn: c.PostForm("translationEn"),
		Meaning:       c.PostForm("meaning"),
		Category:      c.PostForm("category"),
	}
	models.SanitizeProverb(&p)
	return p
}

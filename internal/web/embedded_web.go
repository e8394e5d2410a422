package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html static/*
var embeddedWebFS embed.FS

// EmbeddedStaticHandler returns a Gin handler serving the embedded static files
func EmbeddedStaticHandler(prefix string) gin.HandlerFunc {
	staticFS, err := fs.Sub(embeddedWebFS, "static")
	if err != nil {
		panic("Failed to create embedded static filesystem: " + err.Error())
	}
	fileServer := http.StripPrefix(prefix, http.FileServer(http.FS(staticFS)))
	return func(c *gin.Context) {
		// Reject path traversal attempts before touching the filesystem
		if strings.Contains(c.Request.URL.Path, "..") {
			c.Status(http.StatusBadRequest)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

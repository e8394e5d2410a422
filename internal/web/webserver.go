// Package web provides the HTTP server and web interface for go-matal
package web

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-matal/internal/config"
	"github.com/go-while/go-matal/internal/models"
	"github.com/go-while/go-matal/internal/store"
)

// WebServer represents the web server
type WebServer struct {
	Store     *store.Store
	Router    *gin.Engine
	Config    *config.WebConfig
	StartTime time.Time // Track server start time for uptime calculations
}

// TemplateData represents common template data
type TemplateData struct {
	Title       string
	CurrentTime string
	Port        int
	AppVersion  string
	Success     string // notice carried over a redirect via ?success=
	Error       string // notice carried over a redirect via ?error=
}

// HomePageData represents data for the proverb list page
type HomePageData struct {
	TemplateData
	Proverbs     []models.Proverb
	ProverbCount int
	LoadFailed   bool
}

// ProverbPageData represents data for the proverb detail page
type ProverbPageData struct {
	TemplateData
	Proverb  *models.Proverb
	IsRandom bool
}

// ProverbFormData represents data for the add/edit form pages
type ProverbFormData struct {
	TemplateData
	Form       models.Proverb // submitted values, echoed back on validation failure
	FormError  string
	IsEdit     bool
	Categories []string
}

// NewServer creates a new web server instance
func NewServer(st *store.Store, webconfig *config.WebConfig) *WebServer {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Configure Gin to trust reverse proxy headers
	// Set trusted proxies for common reverse proxy setups (nginx, etc.)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	// Apply security middleware
	router.Use(secure.New(secureConfig))

	server := &WebServer{
		Store:  st,
		Router: router,
		Config: webconfig,
	}

	// Add reverse proxy middleware for handling X-Forwarded headers
	router.Use(server.ReverseProxyMiddleware())

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Static files served from the embedded filesystem
	s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static"))

	s.Router.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	s.Router.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
	})
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	// Proverb pages
	s.Router.GET("/", s.homePage)
	s.Router.GET("/proverb/:id", s.proverbPage)
	s.Router.GET("/add-proverb", s.addProverbPage)
	s.Router.POST("/add-proverb", s.addProverbSubmit)
	s.Router.GET("/edit-proverb/:id", s.editProverbPage)
	s.Router.POST("/edit-proverb/:id", s.editProverbSubmit)
	s.Router.POST("/delete-proverb/:id", s.deleteProverbSubmit)
	s.Router.GET("/random-proverb", s.randomProverbPage)
}

// Start starts the web server with SSL support if configured
func (s *WebServer) Start() error {
	addr := ":" + strconv.Itoa(s.Config.ListenPort)
	s.StartTime = time.Now() // Set the start time for uptime calculations
	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return ErrMissingCertConfig
		}
		log.Printf("Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("Starting HTTP server on %s", addr)
	return s.Router.Run(addr)
}

// ReverseProxyMiddleware handles X-Forwarded headers when running behind a reverse proxy
func (s *WebServer) ReverseProxyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Handle X-Forwarded-Proto to detect if the original request was HTTPS
		if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
			c.Request.URL.Scheme = "https"
		}

		// Handle X-Forwarded-For to get the real client IP
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			// Take the first IP from the list (original client)
			ips := strings.Split(xff, ",")
			if len(ips) > 0 {
				clientIP := strings.TrimSpace(ips[0])
				c.Request.RemoteAddr = clientIP + ":0"
			}
		}

		// Handle X-Real-IP as an alternative
		if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
			c.Request.RemoteAddr = realIP + ":0"
		}

		// Handle X-Forwarded-Host to get the original host
		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = host
		}

		c.Next()
	}
}

// Package web serves the portfolio page, its HTMX fragments, the JSON API
// and the admin dashboard.
package web

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Drogon4231/portfolio/internal/analytics"
	"github.com/Drogon4231/portfolio/internal/config"
	"github.com/Drogon4231/portfolio/internal/logging"
	"github.com/Drogon4231/portfolio/internal/mailer"
	"github.com/Drogon4231/portfolio/internal/portfolio"
)

// Deps are the optional collaborators of a Server. A nil Store disables
// tracking and the admin dashboard.
type Deps struct {
	Mailer  mailer.Mailer
	Store   *analytics.Store
	Tracker *analytics.Tracker
}

// Server holds what the HTTP handlers share: config, content, templates
// and optional dependencies.
type Server struct {
	cfg        *config.Config
	content    portfolio.Content
	logger     *zap.Logger
	deps       Deps
	tmpl       *template.Template
	adminToken string
}

// NewServer parses the embedded templates and returns a server ready to
// build its engine.
func NewServer(cfg *config.Config, content portfolio.Content, logger *zap.Logger, deps Deps) (*Server, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		content: content,
		logger:  logger,
		deps:    deps,
		tmpl:    tmpl,
	}

	if s.adminEnabled() {
		if s.adminToken, err = analytics.RandomToken(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Engine builds the gin engine with every route mounted under the base path.
func (s *Server) Engine() (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(s.cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.SetHTMLTemplate(s.tmpl)
	r.Use(logging.Recovery(s.logger), logging.Middleware(s.logger))
	if s.deps.Tracker != nil {
		r.Use(s.deps.Tracker.Middleware())
	}

	site := r.Group(s.cfg.Site.BasePath)
	site.StaticFS("/static", http.FS(StaticFS()))
	for _, f := range s.cfg.Site.ResumeFiles {
		site.StaticFile("/"+f, filepath.Join(s.cfg.Site.PublicDir, f))
	}

	// Home page route
	site.GET("/", s.index)

	// HTMX fragments
	site.GET("/projects", s.projects)
	site.GET("/contact-form", s.contactForm)
	site.POST("/contact", s.contact)

	site.GET("/resume", s.resume)
	site.GET("/resume/:n", s.resume)
	site.GET("/privacy", s.privacy)

	var db Pinger
	if s.deps.Store != nil {
		db = s.deps.Store
	}
	NewHealthHandler("portfolio", s.cfg.App.Version, db).RegisterRoutes(site)

	api := site.Group("/api")
	api.Use(s.cors())
	api.GET("/projects", s.apiProjects)
	api.GET("/content", s.apiContent)

	if s.adminEnabled() {
		s.setupAdminRoutes(site)
	}
	return r, nil
}

func (s *Server) cors() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	if len(s.cfg.Server.CORSOrigins) == 0 || slices.Contains(s.cfg.Server.CORSOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.cfg.Server.CORSOrigins
	}
	return cors.New(cfg)
}

func (s *Server) adminEnabled() bool {
	return s.cfg.AdminEnabled() && s.deps.Store != nil
}

func (s *Server) track(c *gin.Context) portfolio.Track {
	return portfolio.ParseTrack(c.Query("track"), s.cfg.Site.DefaultTrack)
}

func (s *Server) page(c *gin.Context) Page {
	dark := c.Query("theme") != "light"
	return NewPage(s.content, s.cfg.Site, s.track(c), dark, false)
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page(c))
}

func (s *Server) projects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", s.page(c))
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title":    "Contact Me",
		"BasePath": s.cfg.Site.BasePath,
	})
}

func (s *Server) contact(c *gin.Context) {
	msg := mailer.Message{
		Name:    c.PostForm("fullName"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	if s.deps.Mailer == nil {
		s.logger.Warn("contact form submitted but no mailer configured")
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, the contact form is not available right now.",
		})
		return
	}

	if err := s.deps.Mailer.Send(c.Request.Context(), msg); err != nil {
		s.logger.Error("send contact email", zap.Error(err))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	s.logger.Info("contact email sent", zap.String("name", msg.Name))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

// resume redirects to the n-th configured resume (1-based, default 1).
func (s *Server) resume(c *gin.Context) {
	urls := s.cfg.Site.ResumeURLs()
	n := 1
	if p := c.Param("n"); p != "" {
		var err error
		if n, err = strconv.Atoi(p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resume index must be a number"})
			return
		}
	}
	if n < 1 || n > len(urls) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resume not found"})
		return
	}
	c.Redirect(http.StatusFound, urls[n-1])
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":         "Privacy Policy",
		"BasePath":      s.cfg.Site.BasePath,
		"retentionDays": s.cfg.Analytics.RetentionDays,
		"tracking":      s.deps.Tracker != nil,
	})
}

type projectsResponse struct {
	Track    portfolio.Track     `json:"track"`
	Projects []portfolio.Project `json:"projects"`
}

func (s *Server) apiProjects(c *gin.Context) {
	track := s.track(c)
	c.JSON(http.StatusOK, projectsResponse{
		Track:    track,
		Projects: portfolio.FilterByTrack(s.content.Projects, track),
	})
}

func (s *Server) apiContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.content)
}

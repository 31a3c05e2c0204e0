package web

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminCookie = "admin_token"

func (s *Server) adminPath() string {
	return s.cfg.Site.BasePath + "admin"
}

// adminAuthMiddleware checks the admin cookie set at login.
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, s.adminPath()+"/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) == 1
	return userOK && passOK
}

func (s *Server) clientID(c *gin.Context) string {
	if s.deps.Tracker == nil {
		return ""
	}
	return s.deps.Tracker.HashIP(c.ClientIP())
}

// setupAdminRoutes mounts the login flow and the protected dashboard.
func (s *Server) setupAdminRoutes(r *gin.RouterGroup) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title":    "Admin Login",
			"BasePath": s.cfg.Site.BasePath,
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.validCredentials(c.PostForm("username"), c.PostForm("password")) {
			s.logger.Warn("failed admin login", zap.String("client", s.clientID(c)))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title":    "Admin Login",
				"BasePath": s.cfg.Site.BasePath,
				"error":    "Invalid credentials",
			})
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, s.adminPath(), "", gin.Mode() == gin.ReleaseMode, true)
		s.logger.Info("admin login", zap.String("client", s.clientID(c)))
		c.Redirect(http.StatusFound, s.adminPath()+"/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, s.adminPath(), "", gin.Mode() == gin.ReleaseMode, true)
		c.Redirect(http.StatusFound, s.adminPath()+"/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuthMiddleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.deps.Store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			s.logger.Error("load admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error":    "Failed to load statistics",
				"BasePath": s.cfg.Site.BasePath,
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":    stats,
			"BasePath": s.cfg.Site.BasePath,
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.deps.Store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.deps.Store.Recent(c.Request.Context(), 200)
		if err != nil {
			s.logger.Error("load visitors", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error":    "Failed to load visitors",
				"BasePath": s.cfg.Site.BasePath,
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
			"BasePath": s.cfg.Site.BasePath,
		})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.deps.Store.Stats(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		retention := time.Duration(s.cfg.Analytics.RetentionDays) * 24 * time.Hour
		n, err := s.deps.Store.Cleanup(c.Request.Context(), time.Now().Add(-retention))
		if err != nil {
			s.logger.Error("visitor cleanup", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
	})
}

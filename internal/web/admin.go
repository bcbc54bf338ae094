package web

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookie = "admin_session"
	sessionTTL    = 24 * time.Hour
	messagesLimit = 100
)

// sessions tracks logged-in admin cookies.
type sessions struct {
	mu  sync.Mutex
	ids map[string]time.Time
}

func newSessions() *sessions {
	return &sessions{ids: make(map[string]time.Time)}
}

func (ss *sessions) create(now time.Time) string {
	id := uuid.NewString()
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.ids[id] = now.Add(sessionTTL)
	return id
}

func (ss *sessions) valid(id string, now time.Time) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	exp, ok := ss.ids[id]
	if ok && now.After(exp) {
		delete(ss.ids, id)
		return false
	}
	return ok
}

func (ss *sessions) remove(id string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.ids, id)
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || !s.sessions.valid(id, s.now()) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil
	return userOK && passOK
}

func (s *Server) adminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			s.logger.Warn("failed admin login", "client", s.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Invalid credentials"})
			return
		}
		id := s.sessions.create(s.now())
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(sessionCookie, id, int(sessionTTL.Seconds()), "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		s.logger.Info("admin login", "client", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		if id, err := c.Cookie(sessionCookie); err == nil {
			s.sessions.remove(id)
		}
		c.SetCookie(sessionCookie, "", -1, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		s.logger.Info("admin logout", "client", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin", s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		if s.store == nil {
			c.HTML(http.StatusServiceUnavailable, "admin-error.html", gin.H{"error": "Statistics are disabled"})
			return
		}
		ctx := c.Request.Context()
		stats, err := s.store.Stats(ctx, s.now())
		if err != nil {
			s.logger.Error("loading admin stats", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		msgs, err := s.store.Messages(ctx, messagesLimit)
		if err != nil {
			s.logger.Error("loading messages", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load messages"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats, "messages": msgs})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		if s.store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "statistics are disabled"})
			return
		}
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		if s.store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "statistics are disabled"})
			return
		}
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.logger.Info("admin stats exported", "client", s.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.Cleanup(c.Request.Context())
		if err != nil {
			s.logger.Error("privacy cleanup", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup finished", "removed": n})
	})
}

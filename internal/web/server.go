// Package web serves the portfolio page, its JSON API, the contact form and
// a small admin area for visit statistics.
package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/yorkei04/portfolio/internal/config"
	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/mail"
	"github.com/yorkei04/portfolio/internal/page"
	"github.com/yorkei04/portfolio/internal/store"
)

// Options configure a Server. Store and Mailer may be nil; tracking, the
// admin statistics and message storage are then unavailable.
type Options struct {
	Config    config.Config
	Portfolio content.Portfolio
	Store     *store.Store
	Mailer    mail.Sender
	Logger    *log.Logger
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// Salt for visitor hashes. A random one is generated when empty.
	Salt string
	// Now defaults to time.Now.
	Now func() time.Time
}

type Server struct {
	cfg       config.Config
	portfolio content.Portfolio
	defs      []page.Definition
	store     *store.Store
	mailer    mail.Sender
	logger    *log.Logger
	tmpl      *template.Template
	now       func() time.Time

	salt      string
	adminHash []byte
	sessions  *sessions

	engine *gin.Engine
	wg     sync.WaitGroup
}

// New builds the server and its routes.
func New(opts Options) (*Server, error) {
	s := &Server{
		cfg:       opts.Config,
		portfolio: opts.Portfolio,
		defs:      page.Definitions(opts.Portfolio),
		store:     opts.Store,
		mailer:    opts.Mailer,
		logger:    opts.Logger,
		now:       opts.Now,
		salt:      opts.Salt,
		sessions:  newSessions(),
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.salt == "" {
		salt, err := randomHex(32)
		if err != nil {
			return nil, err
		}
		s.salt = salt
	}

	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	s.adminHash = hash
	if s.cfg.DefaultAdmin {
		s.logger.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	s.tmpl, err = Templates(s.portfolio)
	if err != nil {
		return nil, err
	}

	s.engine = s.routes()
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	r.SetHTMLTemplate(s.tmpl)

	r.StaticFS("/static", http.FS(Static()))
	r.Static("/image", filepath.Join(s.cfg.AssetsDir, "image"))

	r.GET("/healthz", s.handleHealth)

	tracked := r.Group("/", s.visitorTracking())
	tracked.GET("/", s.handleIndex)

	r.GET("/privacy", s.handlePrivacy)

	api := r.Group("/api")
	api.GET("/portfolio", s.handlePortfolio)
	api.GET("/overlays", s.handleOverlays)
	api.POST("/events", s.handleEvent)

	r.POST("/contact", s.handleContact)

	s.adminRoutes(r)
	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.Close()
	s.logger.Info("server stopped")
	return nil
}

// Close waits for background writes started by requests to finish.
func (s *Server) Close() {
	s.wg.Wait()
}

// Cleanup removes analytics older than the retention window.
func (s *Server) Cleanup(ctx context.Context) (int64, error) {
	if s.store == nil {
		return 0, nil
	}
	n, err := s.store.CleanupBefore(ctx, s.now().Add(-s.cfg.VisitorRetention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("privacy cleanup", "removed", n, "retention", s.cfg.VisitorRetention)
	}
	return n, nil
}

func (s *Server) hashIP(ip string) string {
	return store.HashIP(s.salt, ip)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yorkei04/portfolio/internal/config"
	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/mail"
	"github.com/yorkei04/portfolio/internal/store"
	"github.com/yorkei04/portfolio/internal/web"
)

// cleanupInterval is how often expired visitor data is purged while serving.
const cleanupInterval = 24 * time.Hour

func newServeCmd() *cobra.Command {
	var (
		port        string
		dbPath      string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("port") {
				cfg.Port = port
			}
			if flags.Changed("db") {
				cfg.DBPath = dbPath
			}
			if flags.Changed("content") {
				cfg.ContentFile = contentFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, loggerFromContext(ctx))
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", config.DefaultPort, "port to listen on")
	cmd.Flags().StringVar(&dbPath, "db", config.DefaultDBPath, "sqlite database path")
	cmd.Flags().StringVar(&contentFile, "content", "", "TOML content file (built-in content when empty)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	p, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Info("visitor tracking enabled with hashed addresses", "db", cfg.DBPath, "retention", cfg.VisitorRetention)

	mailer := mail.NewSMTP(cfg.SMTP, logger)
	if !mailer.Enabled() {
		logger.Warn("SMTP credentials not configured; contact messages are only stored")
	}

	srv, err := web.New(web.Options{
		Config:    cfg,
		Portfolio: p,
		Store:     st,
		Mailer:    mailer,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	logger.Info("admin area available", "path", "/admin/login")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, cfg.Addr())
	})
	g.Go(func() error {
		cleanupLoop(gctx, srv, cleanupInterval, logger)
		return nil
	})
	return g.Wait()
}

type cleaner interface {
	Cleanup(ctx context.Context) (int64, error)
}

// cleanupLoop purges expired visitor data once at startup and then every
// interval until ctx is done.
func cleanupLoop(ctx context.Context, c cleaner, interval time.Duration, logger *log.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := c.Cleanup(ctx); err != nil && ctx.Err() == nil {
			logger.Error("privacy cleanup", "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

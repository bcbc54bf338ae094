package web

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/yorkei04/portfolio/internal/store"
)

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"dur", time.Since(start).Round(time.Microsecond),
		}
		if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/image/") {
			logger.Debug("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// doNotTrack reports whether the client asked not to be tracked.
func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1" || c.GetHeader("Sec-GPC") == "1"
}

// visitorTracking records a page view with a hashed client address. The
// write happens after the response so it never delays the page.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if s.store == nil || doNotTrack(c) || c.Request.Method != "GET" || c.Writer.Status() >= 400 {
			return
		}
		v := store.Visit{
			HashedIP:  s.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			CreatedAt: s.now(),
		}
		ctx := context.WithoutCancel(c.Request.Context())
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := s.store.RecordVisit(ctx, v); err != nil {
				s.logger.Error("recording visitor", "err", err)
			}
		}()
	}
}

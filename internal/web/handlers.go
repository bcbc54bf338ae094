package web

import (
	"bytes"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/mail"
	"github.com/yorkei04/portfolio/internal/store"
)

const (
	contactSuccess = "Thank you for your message! I'll get back to you soon."
	contactFailed  = "Sorry, there was an error sending your message. Please try again later."
	contactInvalid = "Please enter your name, a valid email address and a message."
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleIndex(c *gin.Context) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, s.tmpl, s.portfolio, s.now()); err != nil {
		s.logger.Error("rendering page", "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handlePrivacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", newPrivacyView(s.portfolio, s.cfg.VisitorRetention))
}

func (s *Server) handlePortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolio)
}

func (s *Server) handleOverlays(c *gin.Context) {
	c.JSON(http.StatusOK, s.defs)
}

type eventRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=hover section"`
	Target string `json:"target" binding:"required,max=64"`
}

// handleEvent records a hover or section beacon from the page script.
func (s *Server) handleEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !s.knownTarget(req.Kind, req.Target) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown target"})
		return
	}
	if s.store == nil || doNotTrack(c) {
		c.Status(http.StatusNoContent)
		return
	}
	err := s.store.RecordInteraction(c.Request.Context(), store.Interaction{
		Kind:      req.Kind,
		Target:    req.Target,
		HashedIP:  s.hashIP(c.ClientIP()),
		CreatedAt: s.now(),
	})
	if err != nil {
		s.logger.Error("recording interaction", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record event"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) knownTarget(kind, target string) bool {
	if kind == store.KindSection {
		return slices.Contains(content.Sections(), target)
	}
	_, err := s.portfolio.Project(target)
	return err == nil
}

type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=200"`
	Email    string `form:"email" binding:"required,email"`
	Message  string `form:"message" binding:"required,max=5000"`
}

// handleContact stores the message and mails it to the owner. The visitor
// sees success if either step worked.
func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactInvalid})
		return
	}
	ctx := c.Request.Context()

	var saved *store.Message
	if s.store != nil {
		m, err := s.store.SaveMessage(ctx, store.Message{
			Name:      form.FullName,
			Email:     form.Email,
			Body:      form.Message,
			CreatedAt: s.now(),
		})
		if err != nil {
			s.logger.Error("saving message", "err", err)
		} else {
			saved = &m
		}
	}

	err := mail.ErrNotConfigured
	if s.mailer != nil {
		err = s.mailer.Send(ctx, mail.Contact{Name: form.FullName, Email: form.Email, Message: form.Message})
	}
	switch {
	case err == nil:
		if saved != nil {
			if err := s.store.MarkDelivered(ctx, saved.ID); err != nil {
				s.logger.Error("marking message delivered", "err", err)
			}
		}
	case errors.Is(err, mail.ErrNotConfigured):
		s.logger.Warn("contact message not mailed", "err", err)
	default:
		s.logger.Error("sending contact email", "err", err)
	}

	if err != nil && saved == nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contactFailed})
		return
	}
	c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": contactSuccess})
}

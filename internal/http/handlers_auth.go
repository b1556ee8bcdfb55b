package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pastebin/internal/apperr"
	"pastebin/internal/ratelimit"
)

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, apperr.BadRequest("invalid request body"))
		return
	}
	if !s.allowLogin(c, req.Username) {
		return
	}
	token, err := s.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// allowLogin applies the fixed-window login limiter keyed by username and
// client address. A limiter backend failure fails open: slowing credential
// stuffing is not worth refusing all logins when redis is down.
func (s *Server) allowLogin(c *gin.Context, username string) bool {
	if s.limiter == nil || s.cfg.LoginRateLimit <= 0 {
		return true
	}
	window := time.Duration(s.cfg.LoginRateWindowSeconds) * time.Second
	key := ratelimit.LoginKey(username, c.ClientIP())
	decision, err := s.limiter.Allow(c.Request.Context(), key, s.cfg.LoginRateLimit, window)
	if err != nil {
		return true
	}
	if !decision.Allowed {
		writeAppError(c, &apperr.Error{Code: http.StatusTooManyRequests, Msg: "too many login attempts"})
		return false
	}
	return true
}

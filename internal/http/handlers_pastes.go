package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pastebin/internal/apperr"
	"pastebin/internal/domain"
)

func (s *Server) handleListPastes(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	pastes, err := s.pastes.List(c.Request.Context())
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPasteResponses(pastes))
}

func (s *Server) handleCreatePaste(c *gin.Context) {
	principal, ok := s.requireUser(c)
	if !ok {
		return
	}
	var req struct {
		UserID int    `json:"user_id"`
		Data   string `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, apperr.BadRequest("invalid request body"))
		return
	}
	if req.UserID != principal.UserID {
		writeAppError(c, apperr.BadRequest("user_id doesn't match jwt token"))
		return
	}
	paste, err := s.pastes.Create(c.Request.Context(), domain.NewPaste{UserID: req.UserID, Data: req.Data})
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPasteResponse(paste))
}

func (s *Server) handleGetPaste(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	paste, err := s.pastes.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPasteResponse(paste))
}

func (s *Server) handleListUserPastes(c *gin.Context) {
	userID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	if !s.requireOwnerOrAdmin(c, userID) {
		return
	}
	pastes, err := s.pastes.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPasteResponses(pastes))
}

func (s *Server) handleUpdatePaste(c *gin.Context) {
	userID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	pasteID, ok := parseIntParam(c, "paste_id")
	if !ok {
		return
	}
	if !s.requireOwnerOrAdmin(c, userID) {
		return
	}
	var req struct {
		ID     int    `json:"id"`
		UserID int    `json:"user_id"`
		Data   string `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, apperr.BadRequest("invalid request body"))
		return
	}
	if req.UserID != userID || req.ID != pasteID {
		writeAppError(c, apperr.BadRequest("user_id or paste id doesn't match"))
		return
	}
	paste, err := s.pastes.Update(c.Request.Context(), domain.Paste{ID: pasteID, UserID: userID, Data: req.Data})
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPasteResponse(paste))
}

func (s *Server) handleDeletePaste(c *gin.Context) {
	userID, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	pasteID, ok := parseIntParam(c, "paste_id")
	if !ok {
		return
	}
	if !s.requireOwnerOrAdmin(c, userID) {
		return
	}
	deleted, err := s.pastes.Delete(c.Request.Context(), pasteID)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

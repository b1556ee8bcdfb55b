package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pastebin/internal/apperr"
	"pastebin/internal/usecase"
)

func (s *Server) handleCreateUser(c *gin.Context) {
	var req struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, apperr.BadRequest("invalid request body"))
		return
	}
	if req.Password != req.ConfirmPassword {
		writeAppError(c, apperr.BadRequest("password mismatch"))
		return
	}
	user, err := s.users.Create(c.Request.Context(), usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleMe(c *gin.Context) {
	principal, ok := s.requireUser(c)
	if !ok {
		return
	}
	user, err := s.users.GetByID(c.Request.Context(), principal.UserID)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleListUsers(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	users, err := s.users.List(c.Request.Context())
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

func (s *Server) handleGetUser(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	if !s.requireOwnerOrAdmin(c, id) {
		return
	}
	user, err := s.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleUpdateUser(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	if !s.requireOwnerOrAdmin(c, id) {
		return
	}
	var req struct {
		Username        *string `json:"username"`
		Email           *string `json:"email"`
		Password        *string `json:"password"`
		ConfirmPassword *string `json:"confirm_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, apperr.BadRequest("invalid request body"))
		return
	}
	if req.Password != nil && (req.ConfirmPassword == nil || *req.ConfirmPassword != *req.Password) {
		writeAppError(c, apperr.BadRequest("password mismatch"))
		return
	}
	user, err := s.users.Update(c.Request.Context(), id, usecase.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	id, ok := parseIntParam(c, "id")
	if !ok {
		return
	}
	if !s.requireOwnerOrAdmin(c, id) {
		return
	}
	deleted, err := s.users.Delete(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

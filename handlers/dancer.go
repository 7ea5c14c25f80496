package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pirouette/middleware"
	"pirouette/models"
	"pirouette/services/dancer"
)

// DancerHandler exposes dancer account endpoints.
type DancerHandler struct {
	Service dancer.DancerService
	Logger  *zap.Logger
}

func NewDancerHandler(svc dancer.DancerService, logger *zap.Logger) *DancerHandler {
	return &DancerHandler{Service: svc, Logger: logger}
}

type dancerRegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Studio   string `json:"studio,omitempty"`
}

func (h *DancerHandler) RegisterHandler(c *gin.Context) {
	var input dancerRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, token, err := h.Service.Register(context.Background(), models.Dancer{
		Name:   input.Name,
		Email:  input.Email,
		Studio: input.Studio,
	}, input.Password)
	if err != nil {
		var authErr *dancer.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": authErr.Message})
			return
		}
		h.Logger.Error("dancer registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"dancer": created, "token": token})
}

func (h *DancerHandler) LoginHandler(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	found, token, err := h.Service.Authenticate(context.Background(), input.Email, input.Password)
	if err != nil {
		var authErr *dancer.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		h.Logger.Error("dancer login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dancer": found, "token": token})
}

func (h *DancerHandler) GetProfileHandler(c *gin.Context) {
	dancerID := c.GetString(middleware.ContextAccountID)

	found, err := h.Service.GetByID(context.Background(), dancerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dancer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dancer": found})
}

type dancerUpdateInput struct {
	Name   string `json:"name,omitempty"`
	Studio string `json:"studio,omitempty"`
}

func (h *DancerHandler) UpdateProfileHandler(c *gin.Context) {
	dancerID := c.GetString(middleware.ContextAccountID)

	var input dancerUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	current, err := h.Service.GetByID(context.Background(), dancerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dancer not found"})
		return
	}
	if input.Name != "" {
		current.Name = input.Name
	}
	if input.Studio != "" {
		current.Studio = input.Studio
	}

	updated, err := h.Service.Update(context.Background(), *current)
	if err != nil {
		h.Logger.Error("update dancer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dancer": updated})
}

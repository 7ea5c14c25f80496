package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	eventRepo "pirouette/database/repository/event"
	"pirouette/models"
)

// EventHandler exposes competition event endpoints.
type EventHandler struct {
	Repo   eventRepo.EventRepository
	Logger *zap.Logger
}

func NewEventHandler(repo eventRepo.EventRepository, logger *zap.Logger) *EventHandler {
	return &EventHandler{Repo: repo, Logger: logger}
}

// ListUpcomingEventsHandler lists active events that have not ended yet.
func (h *EventHandler) ListUpcomingEventsHandler(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	events, err := h.Repo.ListUpcoming(context.Background(), today)
	if err != nil {
		h.Logger.Error("list events failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) GetEventHandler(c *gin.Context) {
	event, err := h.Repo.GetByID(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		h.Logger.Error("fetch event failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

// CreateEventHandler registers a competition event.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	now := time.Now()
	event.ID = uuid.New().String()
	event.Active = true
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := h.Repo.Create(context.Background(), event); err != nil {
		h.Logger.Error("create event failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pirouette/middleware"
	"pirouette/services/storage"
	"pirouette/services/stylist"
)

// StorageHandler handles stylist portfolio image hosting.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Stylists   stylist.StylistService
	Logger     *zap.Logger
}

func NewStorageHandler(svc storage.StorageService, stylists stylist.StylistService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Stylists: stylists, Logger: logger}
}

// UploadPortfolioImageHandler uploads a portfolio image for the signed-in
// stylist and records its hosted URL on the profile.
func (h *StorageHandler) UploadPortfolioImageHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image not provided", "details": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image", "details": err.Error()})
		return
	}
	defer file.Close()

	ctx := context.Background()
	result, err := h.StorageSvc.UploadImage(ctx, file, "portfolio/"+stylistID)
	if err != nil {
		h.Logger.Error("portfolio upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	current, err := h.Stylists.GetByID(ctx, stylistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stylist not found"})
		return
	}
	current.PortfolioURLs = append(current.PortfolioURLs, result.URL)
	if _, err := h.Stylists.Update(ctx, *current); err != nil {
		h.Logger.Error("portfolio update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image": result})
}

// UploadServiceImageHandler uploads an image for one of the stylist's own
// catalog services.
func (h *StorageHandler) UploadServiceImageHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)
	serviceID := c.Param("id")

	ctx := context.Background()
	svc, err := h.Stylists.GetService(ctx, stylistID, serviceID)
	if err != nil {
		var ownErr *stylist.OwnershipError
		if errors.As(err, &ownErr) {
			c.JSON(http.StatusForbidden, gin.H{"error": ownErr.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image not provided", "details": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image", "details": err.Error()})
		return
	}
	defer file.Close()

	result, err := h.StorageSvc.UploadImage(ctx, file, "services/"+serviceID)
	if err != nil {
		h.Logger.Error("service image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	svc.ImageURLs = append(svc.ImageURLs, result.URL)
	if _, err := h.Stylists.UpdateService(ctx, stylistID, *svc); err != nil {
		h.Logger.Error("service image update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image": result})
}

type deleteImageInput struct {
	PublicID string `json:"publicId" binding:"required"`
	URL      string `json:"url" binding:"required"`
}

// DeletePortfolioImageHandler removes a hosted image and drops its URL from
// the stylist's portfolio.
func (h *StorageHandler) DeletePortfolioImageHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	var input deleteImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := context.Background()
	if err := h.StorageSvc.DeleteImage(ctx, input.PublicID); err != nil {
		h.Logger.Error("portfolio delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}

	current, err := h.Stylists.GetByID(ctx, stylistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stylist not found"})
		return
	}
	kept := current.PortfolioURLs[:0]
	for _, url := range current.PortfolioURLs {
		if url != input.URL {
			kept = append(kept, url)
		}
	}
	current.PortfolioURLs = kept
	if _, err := h.Stylists.Update(ctx, *current); err != nil {
		h.Logger.Error("portfolio update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update portfolio"})
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"pirouette/middleware"
	"pirouette/models"
	"pirouette/services/stylist"
)

// StylistHandler exposes stylist account, catalog and pricing-rule endpoints.
type StylistHandler struct {
	Service stylist.StylistService
	Logger  *zap.Logger
}

func NewStylistHandler(svc stylist.StylistService, logger *zap.Logger) *StylistHandler {
	return &StylistHandler{Service: svc, Logger: logger}
}

type stylistRegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Bio      string `json:"bio,omitempty"`
}

func (h *StylistHandler) RegisterHandler(c *gin.Context) {
	var input stylistRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, token, err := h.Service.Register(context.Background(), models.Stylist{
		Name:  input.Name,
		Email: input.Email,
		Bio:   input.Bio,
	}, input.Password)
	if err != nil {
		var authErr *stylist.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": authErr.Message})
			return
		}
		h.Logger.Error("stylist registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stylist": created, "token": token})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *StylistHandler) LoginHandler(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	found, token, err := h.Service.Authenticate(context.Background(), input.Email, input.Password)
	if err != nil {
		var authErr *stylist.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		h.Logger.Error("stylist login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylist": found, "token": token})
}

func (h *StylistHandler) GetProfileHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	found, err := h.Service.GetByID(context.Background(), stylistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stylist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylist": found})
}

type stylistUpdateInput struct {
	Name string `json:"name,omitempty"`
	Bio  string `json:"bio,omitempty"`
}

func (h *StylistHandler) UpdateProfileHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	var input stylistUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	current, err := h.Service.GetByID(context.Background(), stylistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stylist not found"})
		return
	}
	if input.Name != "" {
		current.Name = input.Name
	}
	if input.Bio != "" {
		current.Bio = input.Bio
	}

	updated, err := h.Service.Update(context.Background(), *current)
	if err != nil {
		h.Logger.Error("update stylist failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylist": updated})
}

type onboardingInput struct {
	RefreshURL string `json:"refreshUrl" binding:"required,url"`
	ReturnURL  string `json:"returnUrl" binding:"required,url"`
}

// StartOnboardingHandler returns a Stripe Connect onboarding link for the
// signed-in stylist.
func (h *StylistHandler) StartOnboardingHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	var input onboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	url, err := h.Service.StartPaymentOnboarding(context.Background(), stylistID, input.RefreshURL, input.ReturnURL)
	if err != nil {
		h.Logger.Error("onboarding link failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start payment onboarding"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboardingUrl": url})
}

// --- service catalog ---

func (h *StylistHandler) CreateServiceHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateService(context.Background(), stylistID, svc)
	if err != nil {
		h.Logger.Error("create service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": created})
}

func (h *StylistHandler) ListServicesHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	services, err := h.Service.ListServices(context.Background(), stylistID)
	if err != nil {
		h.Logger.Error("list services failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *StylistHandler) UpdateServiceHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")

	updated, err := h.Service.UpdateService(context.Background(), stylistID, svc)
	if err != nil {
		respondOwnershipOrServerError(c, h.Logger, err, "failed to update service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": updated})
}

func (h *StylistHandler) DeleteServiceHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	if err := h.Service.DeleteService(context.Background(), stylistID, c.Param("id")); err != nil {
		respondOwnershipOrServerError(c, h.Logger, err, "failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- pricing rules ---

func (h *StylistHandler) CreateRuleHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	var rule models.PricingRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	rule.ServiceID = c.Param("id")

	created, err := h.Service.CreateRule(context.Background(), stylistID, rule)
	if err != nil {
		respondRuleError(c, h.Logger, err, "failed to create pricing rule")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rule": created})
}

func (h *StylistHandler) ListRulesHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	rules, err := h.Service.ListRules(context.Background(), stylistID, c.Param("id"))
	if err != nil {
		respondOwnershipOrServerError(c, h.Logger, err, "failed to list pricing rules")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (h *StylistHandler) UpdateRuleHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	var rule models.PricingRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	rule.ServiceID = c.Param("id")
	rule.ID = c.Param("ruleId")

	updated, err := h.Service.UpdateRule(context.Background(), stylistID, rule)
	if err != nil {
		respondRuleError(c, h.Logger, err, "failed to update pricing rule")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rule": updated})
}

func (h *StylistHandler) DeleteRuleHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	if err := h.Service.DeleteRule(context.Background(), stylistID, c.Param("id"), c.Param("ruleId")); err != nil {
		respondOwnershipOrServerError(c, h.Logger, err, "failed to delete pricing rule")
		return
	}
	c.Status(http.StatusNoContent)
}

func respondOwnershipOrServerError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	var ownErr *stylist.OwnershipError
	if errors.As(err, &ownErr) {
		c.JSON(http.StatusForbidden, gin.H{"error": ownErr.Error()})
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// respondRuleError additionally surfaces rule validation failures from the
// repository write boundary as client errors.
func respondRuleError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	var ownErr *stylist.OwnershipError
	if errors.As(err, &ownErr) {
		c.JSON(http.StatusForbidden, gin.H{"error": ownErr.Error()})
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	// Remaining failures are write-boundary rejections (priority bounds,
	// condition shapes) whose messages read well as-is.
	logger.Warn(fallback, zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

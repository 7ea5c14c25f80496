package stylist

import (
	"context"

	accountRepo "pirouette/database/repository/account"
	ruleRepo "pirouette/database/repository/pricingrule"
	serviceRepo "pirouette/database/repository/service"
	"pirouette/models"
)

// StylistService manages stylist accounts, their service catalog and the
// pricing rules attached to each service.
type StylistService interface {
	Register(ctx context.Context, stylist models.Stylist, password string) (*models.Stylist, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.Stylist, string, error)
	GetByID(ctx context.Context, id string) (*models.Stylist, error)
	Update(ctx context.Context, stylist models.Stylist) (*models.Stylist, error)

	// Stripe Connect onboarding.
	StartPaymentOnboarding(ctx context.Context, stylistID, refreshURL, returnURL string) (string, error)

	// Service catalog.
	CreateService(ctx context.Context, stylistID string, svc models.Service) (*models.Service, error)
	GetService(ctx context.Context, stylistID, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context, stylistID string) ([]models.Service, error)
	UpdateService(ctx context.Context, stylistID string, svc models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, stylistID, serviceID string) error

	// Pricing rules.
	CreateRule(ctx context.Context, stylistID string, rule models.PricingRule) (*models.PricingRule, error)
	ListRules(ctx context.Context, stylistID, serviceID string) ([]models.PricingRule, error)
	UpdateRule(ctx context.Context, stylistID string, rule models.PricingRule) (*models.PricingRule, error)
	DeleteRule(ctx context.Context, stylistID, serviceID, ruleID string) error
}

// DefaultStylistService implements StylistService.
type DefaultStylistService struct {
	Repo     accountRepo.StylistRepository
	Services serviceRepo.ServiceRepository
	Rules    ruleRepo.PricingRuleRepository
}

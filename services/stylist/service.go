package stylist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"pirouette/models"
	"pirouette/utils"
)

const authTokenTTL = 72 * time.Hour

func (s *DefaultStylistService) Register(ctx context.Context, stylist models.Stylist, password string) (*models.Stylist, string, error) {
	if len(password) < 8 {
		return nil, "", &AuthError{Message: "password must be at least 8 characters"}
	}
	if existing, _ := s.Repo.GetByEmail(ctx, stylist.Email); existing != nil {
		return nil, "", &AuthError{Message: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	stylist.ID = uuid.New().String()
	stylist.PasswordHash = string(hash)
	stylist.Active = true
	stylist.CreatedAt = now
	stylist.UpdatedAt = now

	token, err := utils.GenerateToken(stylist.ID, stylist.Email, models.RoleStylist, authTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	stylist.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, stylist); err != nil {
		return nil, "", fmt.Errorf("create stylist: %w", err)
	}
	return &stylist, token, nil
}

func (s *DefaultStylistService) Authenticate(ctx context.Context, email, password string) (*models.Stylist, string, error) {
	stylist, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", &AuthError{Message: "invalid credentials"}
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stylist.PasswordHash), []byte(password)); err != nil {
		return nil, "", &AuthError{Message: "invalid credentials"}
	}

	token, err := utils.GenerateToken(stylist.ID, stylist.Email, models.RoleStylist, authTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	stylist.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, *stylist); err != nil {
		return nil, "", fmt.Errorf("store token: %w", err)
	}
	return stylist, token, nil
}

func (s *DefaultStylistService) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultStylistService) Update(ctx context.Context, stylist models.Stylist) (*models.Stylist, error) {
	current, err := s.Repo.GetByID(ctx, stylist.ID)
	if err != nil {
		return nil, err
	}
	// Immutable / internally managed fields.
	stylist.Email = current.Email
	stylist.PasswordHash = current.PasswordHash
	stylist.TokenHash = current.TokenHash
	stylist.StripeAccountID = current.StripeAccountID
	stylist.CreatedAt = current.CreatedAt

	if err := s.Repo.Update(ctx, stylist); err != nil {
		return nil, err
	}
	return &stylist, nil
}

// --- service catalog ---

func (s *DefaultStylistService) CreateService(ctx context.Context, stylistID string, svc models.Service) (*models.Service, error) {
	now := time.Now()
	svc.ID = uuid.New().String()
	svc.StylistID = stylistID
	svc.Active = true
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := s.Services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &svc, nil
}

func (s *DefaultStylistService) ListServices(ctx context.Context, stylistID string) ([]models.Service, error) {
	return s.Services.ListByStylist(ctx, stylistID)
}

// GetService resolves one of the stylist's own services.
func (s *DefaultStylistService) GetService(ctx context.Context, stylistID, serviceID string) (*models.Service, error) {
	return s.ownedService(ctx, stylistID, serviceID)
}

func (s *DefaultStylistService) UpdateService(ctx context.Context, stylistID string, svc models.Service) (*models.Service, error) {
	if _, err := s.ownedService(ctx, stylistID, svc.ID); err != nil {
		return nil, err
	}
	svc.StylistID = stylistID
	if err := s.Services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DefaultStylistService) DeleteService(ctx context.Context, stylistID, serviceID string) error {
	return s.Services.Delete(ctx, stylistID, serviceID)
}

// --- pricing rules ---

func (s *DefaultStylistService) CreateRule(ctx context.Context, stylistID string, rule models.PricingRule) (*models.PricingRule, error) {
	if _, err := s.ownedService(ctx, stylistID, rule.ServiceID); err != nil {
		return nil, err
	}

	now := time.Now()
	rule.ID = uuid.New().String()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	if err := s.Rules.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("create pricing rule: %w", err)
	}
	return &rule, nil
}

func (s *DefaultStylistService) ListRules(ctx context.Context, stylistID, serviceID string) ([]models.PricingRule, error) {
	if _, err := s.ownedService(ctx, stylistID, serviceID); err != nil {
		return nil, err
	}
	return s.Rules.ListByService(ctx, serviceID)
}

func (s *DefaultStylistService) UpdateRule(ctx context.Context, stylistID string, rule models.PricingRule) (*models.PricingRule, error) {
	if _, err := s.ownedService(ctx, stylistID, rule.ServiceID); err != nil {
		return nil, err
	}
	if err := s.Rules.Update(ctx, rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (s *DefaultStylistService) DeleteRule(ctx context.Context, stylistID, serviceID, ruleID string) error {
	if _, err := s.ownedService(ctx, stylistID, serviceID); err != nil {
		return err
	}
	return s.Rules.Delete(ctx, serviceID, ruleID)
}

// ownedService resolves a service and checks it belongs to the stylist.
func (s *DefaultStylistService) ownedService(ctx context.Context, stylistID, serviceID string) (*models.Service, error) {
	svc, err := s.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.StylistID != stylistID {
		return nil, &OwnershipError{Resource: "service", ID: serviceID}
	}
	return svc, nil
}

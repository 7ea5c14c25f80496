package dancer

import (
	"context"

	accountRepo "pirouette/database/repository/account"
	"pirouette/models"
)

// DancerService manages dancer accounts.
type DancerService interface {
	Register(ctx context.Context, dancer models.Dancer, password string) (*models.Dancer, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.Dancer, string, error)
	GetByID(ctx context.Context, id string) (*models.Dancer, error)
	Update(ctx context.Context, dancer models.Dancer) (*models.Dancer, error)
}

// DefaultDancerService implements DancerService.
type DefaultDancerService struct {
	Repo accountRepo.DancerRepository
}

package dancer

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

// AuthError signals failed registration or login.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func (s *DefaultDancerService) Register(ctx context.Context, dancer models.Dancer, password string) (*models.Dancer, string, error) {
	if len(password) < 8 {
		return nil, "", &AuthError{Message: "password must be at least 8 characters"}
	}
	if existing, _ := s.Repo.GetByEmail(ctx, dancer.Email); existing != nil {
		return nil, "", &AuthError{Message: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	dancer.ID = uuid.New().String()
	dancer.PasswordHash = string(hash)
	dancer.CreatedAt = now
	dancer.UpdatedAt = now

	token, err := utils.GenerateToken(dancer.ID, dancer.Email, models.RoleDancer, authTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	dancer.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, dancer); err != nil {
		return nil, "", fmt.Errorf("create dancer: %w", err)
	}
	return &dancer, token, nil
}

func (s *DefaultDancerService) Authenticate(ctx context.Context, email, password string) (*models.Dancer, string, error) {
	dancer, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", &AuthError{Message: "invalid credentials"}
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(dancer.PasswordHash), []byte(password)); err != nil {
		return nil, "", &AuthError{Message: "invalid credentials"}
	}

	token, err := utils.GenerateToken(dancer.ID, dancer.Email, models.RoleDancer, authTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	dancer.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, *dancer); err != nil {
		return nil, "", fmt.Errorf("store token: %w", err)
	}
	return dancer, token, nil
}

func (s *DefaultDancerService) GetByID(ctx context.Context, id string) (*models.Dancer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDancerService) Update(ctx context.Context, dancer models.Dancer) (*models.Dancer, error) {
	current, err := s.Repo.GetByID(ctx, dancer.ID)
	if err != nil {
		return nil, err
	}
	dancer.Email = current.Email
	dancer.PasswordHash = current.PasswordHash
	dancer.TokenHash = current.TokenHash
	dancer.CreatedAt = current.CreatedAt

	if err := s.Repo.Update(ctx, dancer); err != nil {
		return nil, err
	}
	return &dancer, nil
}

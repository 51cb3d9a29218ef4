package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/moodgarden/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type FlowerRepository interface {
	Create(ctx context.Context, flower *domain.Flower) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Flower, error)
}

type Repositories struct {
	User   UserRepository
	Flower FlowerRepository
}

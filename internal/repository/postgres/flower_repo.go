package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/moodgarden/backend/internal/domain"
	"gorm.io/gorm"
)

type flowerRepository struct {
	db *gorm.DB
}

func NewFlowerRepository(db *gorm.DB) *flowerRepository {
	return &flowerRepository{db: db}
}

// Create inserts the flower. The unique index on entry_id guarantees at most
// one flower per journal entry.
func (r *flowerRepository) Create(ctx context.Context, flower *domain.Flower) error {
	err := r.db.WithContext(ctx).Create(flower).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrFlowerExists
	}
	return err
}

func (r *flowerRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Flower, error) {
	flowers := []*domain.Flower{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&flowers).Error
	if err != nil {
		return nil, err
	}
	return flowers, nil
}

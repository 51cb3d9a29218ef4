package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moodgarden/backend/internal/domain"
	"github.com/moodgarden/backend/internal/repository"
	"gorm.io/datatypes"
)

type FlowerService struct {
	flowerRepo repository.FlowerRepository
}

func NewFlowerService(flowerRepo repository.FlowerRepository) *FlowerService {
	return &FlowerService{flowerRepo: flowerRepo}
}

type CreateFlowerInput struct {
	Mood    domain.Mood
	Title   string
	Content string
	Summary string
}

// Create derives the flower for one journal entry and persists it. Flower
// type and color follow from the mood; the display position is rolled here so
// the repository stores exactly what it is given.
func (s *FlowerService) Create(ctx context.Context, userID uuid.UUID, input CreateFlowerInput) (*domain.Flower, error) {
	if err := validateFlower(input); err != nil {
		return nil, err
	}

	flower := &domain.Flower{
		ID:         uuid.New(),
		UserID:     userID,
		EntryID:    uuid.New(),
		Mood:       input.Mood,
		FlowerType: input.Mood.FlowerType(),
		Color:      input.Mood.Color(),
		Position:   datatypes.NewJSONType(domain.RandomPosition()),
		Title:      input.Title,
		Content:    input.Content,
		Summary:    input.Summary,
		CreatedAt:  time.Now(),
	}

	if err := s.flowerRepo.Create(ctx, flower); err != nil {
		return nil, err
	}

	return flower, nil
}

// ListByUser returns the user's flowers newest-first. A user with no flowers
// gets an empty slice, not an error.
func (s *FlowerService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Flower, error) {
	return s.flowerRepo.ListByUserID(ctx, userID)
}

func validateFlower(input CreateFlowerInput) error {
	if input.Mood == "" {
		return domain.NewValidationError("mood", "mood is required")
	}
	if !input.Mood.Valid() {
		return domain.NewValidationError("mood", "must be a recognized mood")
	}
	if input.Title == "" {
		return domain.NewValidationError("title", "title is required")
	}
	if len(input.Title) > 100 {
		return domain.NewValidationError("title", "must be at most 100 characters")
	}
	if input.Content == "" {
		return domain.NewValidationError("content", "content is required")
	}
	if input.Summary == "" {
		return domain.NewValidationError("summary", "summary is required")
	}
	if len(input.Summary) > 500 {
		return domain.NewValidationError("summary", "must be at most 500 characters")
	}
	return nil
}

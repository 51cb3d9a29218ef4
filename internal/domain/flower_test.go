package domain_test

import (
	"testing"

	"github.com/moodgarden/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMoodMapping(t *testing.T) {
	tests := []struct {
		mood       domain.Mood
		flowerType string
		color      string
	}{
		{domain.MoodExtremelySad, "wilted", "#8B0000"},
		{domain.MoodSad, "tulip", "#4682B4"},
		{domain.MoodNeutral, "rose", "#F5A9B8"},
		{domain.MoodSlightlyHappy, "daisy", "#98FB98"},
		{domain.MoodVeryHappy, "sunflower", "#FFD700"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			assert.True(t, tt.mood.Valid())
			assert.Equal(t, tt.flowerType, tt.mood.FlowerType())
			assert.Equal(t, tt.color, tt.mood.Color())
		})
	}
}

func TestMoodMapping_UnknownFallsBackToNeutral(t *testing.T) {
	for _, mood := range []domain.Mood{"", "ecstatic", "EXTREMELY_SAD", "very happy"} {
		assert.False(t, mood.Valid())
		assert.Equal(t, domain.MoodNeutral.FlowerType(), mood.FlowerType())
		assert.Equal(t, domain.MoodNeutral.Color(), mood.Color())
	}
}

func TestRandomPosition_StaysInsidePlantingArea(t *testing.T) {
	for i := 0; i < 1000; i++ {
		pos := domain.RandomPosition()
		assert.GreaterOrEqual(t, pos.X, 10.0)
		assert.LessOrEqual(t, pos.X, 90.0)
		assert.GreaterOrEqual(t, pos.Y, 20.0)
		assert.LessOrEqual(t, pos.Y, 80.0)
	}
}

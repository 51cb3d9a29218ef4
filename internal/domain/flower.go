package domain

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Mood is the closed set of emotional states a journal entry can carry.
type Mood string

const (
	MoodExtremelySad  Mood = "extremely_sad"
	MoodSad           Mood = "sad"
	MoodNeutral       Mood = "neutral"
	MoodSlightlyHappy Mood = "slightly_happy"
	MoodVeryHappy     Mood = "very_happy"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodExtremelySad, MoodSad, MoodNeutral, MoodSlightlyHappy, MoodVeryHappy:
		return true
	}
	return false
}

// FlowerType maps a mood to its flower. Unknown moods map to the neutral
// flower, same as unknown moods map to the neutral color below.
func (m Mood) FlowerType() string {
	switch m {
	case MoodExtremelySad:
		return "wilted"
	case MoodSad:
		return "tulip"
	case MoodSlightlyHappy:
		return "daisy"
	case MoodVeryHappy:
		return "sunflower"
	default:
		return "rose"
	}
}

func (m Mood) Color() string {
	switch m {
	case MoodExtremelySad:
		return "#8B0000"
	case MoodSad:
		return "#4682B4"
	case MoodSlightlyHappy:
		return "#98FB98"
	case MoodVeryHappy:
		return "#FFD700"
	default:
		return "#F5A9B8"
	}
}

// Position is a display coordinate pair, each axis bounded to [0, 100].
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RandomPosition picks a display position inside the planting area.
// The writable range is narrower than the field bound so flowers never
// touch the garden edges.
func RandomPosition() Position {
	return Position{
		X: rand.Float64()*80 + 10,
		Y: rand.Float64()*60 + 20,
	}
}

// Flower is the persisted artifact derived from one journal entry.
// Exactly one flower exists per entry; flowers are never updated.
type Flower struct {
	ID         uuid.UUID                    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID                    `json:"userId" gorm:"type:uuid;not null;index:idx_flowers_user_created,priority:1"`
	EntryID    uuid.UUID                    `json:"entryId" gorm:"type:uuid;uniqueIndex;not null"`
	Mood       Mood                         `json:"mood" gorm:"not null"`
	FlowerType string                       `json:"flowerType" gorm:"not null"`
	Color      string                       `json:"color" gorm:"not null"`
	Position   datatypes.JSONType[Position] `json:"position" gorm:"not null"`
	Title      string                       `json:"title" gorm:"size:100;not null"`
	Content    string                       `json:"content" gorm:"not null"`
	Summary    string                       `json:"summary" gorm:"size:500;not null"`
	CreatedAt  time.Time                    `json:"createdAt" gorm:"index:idx_flowers_user_created,priority:2,sort:desc"`
}

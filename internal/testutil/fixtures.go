package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moodgarden/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	email := strings.ToLower(b.email)
	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		Email:        &email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// SignupResponse matches the API auth response
type SignupResponse struct {
	Created bool   `json:"created"`
	Token   string `json:"token"`
	User    struct {
		ID        string `json:"id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		CreatedAt string `json:"createdAt"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"username": b.username,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.URL("/auth/signup"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to sign up user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var signupResp SignupResponse
	if err := json.NewDecoder(resp.Body).Decode(&signupResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(signupResp.User.ID)
	user := &domain.User{
		ID:       userID,
		Username: signupResp.User.Username,
	}

	return user, signupResp.Token
}

// FlowerBuilder creates test flowers with a builder pattern
type FlowerBuilder struct {
	user      *domain.User
	mood      domain.Mood
	title     string
	createdAt time.Time
}

// NewFlowerBuilder creates a new FlowerBuilder with default values
func NewFlowerBuilder() *FlowerBuilder {
	return &FlowerBuilder{
		mood:      domain.MoodNeutral,
		title:     "Test entry",
		createdAt: time.Now(),
	}
}

// WithUser sets the owning user
func (b *FlowerBuilder) WithUser(user *domain.User) *FlowerBuilder {
	b.user = user
	return b
}

// WithMood sets the mood
func (b *FlowerBuilder) WithMood(mood domain.Mood) *FlowerBuilder {
	b.mood = mood
	return b
}

// WithTitle sets the title
func (b *FlowerBuilder) WithTitle(title string) *FlowerBuilder {
	b.title = title
	return b
}

// WithCreatedAt sets the creation time
func (b *FlowerBuilder) WithCreatedAt(createdAt time.Time) *FlowerBuilder {
	b.createdAt = createdAt
	return b
}

// Build creates the flower in the database
func (b *FlowerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Flower {
	t.Helper()

	if b.user == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.user = user
	}

	flower := &domain.Flower{
		ID:         uuid.New(),
		UserID:     b.user.ID,
		EntryID:    uuid.New(),
		Mood:       b.mood,
		FlowerType: b.mood.FlowerType(),
		Color:      b.mood.Color(),
		Position:   datatypes.NewJSONType(domain.RandomPosition()),
		Title:      b.title,
		Content:    "Test journal content",
		Summary:    "Test summary",
		CreatedAt:  b.createdAt,
	}

	if err := db.Create(flower).Error; err != nil {
		t.Fatalf("failed to create flower: %v", err)
	}

	return flower
}

package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moodgarden/backend/internal/domain"
	"github.com/moodgarden/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt reads at most 72 bytes of input; longer passwords are still valid
// here, so they are truncated the same way at signup and at login.
const maxPasswordBytes = 72

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	// Identifier is a username or, when it contains "@", an email address.
	Identifier string
	Password   string
}

type AuthResult struct {
	Created bool
	User    *domain.User
	Token   string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if err := validateSignup(input); err != nil {
		return nil, err
	}

	email := strings.ToLower(input.Email)

	// Pre-check for a friendly conflict before paying for the hash. The
	// unique indexes remain the authoritative guard under concurrent signups.
	if s.identifierTaken(ctx, input.Username, email) {
		return nil, domain.ErrAccountExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(passwordBytes(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        &email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Created: true, User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if input.Identifier == "" || input.Password == "" {
		return nil, domain.NewValidationError("identifier", "identifier and password are required")
	}

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(input.Identifier, "@") {
		user, err = s.userRepo.GetByEmail(ctx, input.Identifier)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, input.Identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Created: false, User: user, Token: token}, nil
}

// WhoAmI resolves a bearer token to the current account snapshot.
func (s *AuthService) WhoAmI(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) identifierTaken(ctx context.Context, username, email string) bool {
	if existing, err := s.userRepo.GetByUsername(ctx, username); err == nil && existing != nil {
		return true
	}
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return true
	}
	return false
}

func validateSignup(input SignupInput) error {
	if len(input.Username) < 3 || len(input.Username) > 30 {
		return domain.NewValidationError("username", "must be between 3 and 30 characters")
	}
	// Reject display-name forms like "Alice <a@x.com>"; only the bare
	// address is a valid identifier.
	addr, err := mail.ParseAddress(input.Email)
	if err != nil || addr.Address != input.Email {
		return domain.NewValidationError("email", "must be a valid email address")
	}
	if len(input.Password) < 6 || len(input.Password) > 128 {
		return domain.NewValidationError("password", "must be between 6 and 128 characters")
	}
	return nil
}

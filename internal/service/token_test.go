package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moodgarden/backend/internal/domain"
	"github.com/moodgarden/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := service.NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := service.NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := service.NewTokenIssuer("test-secret", time.Hour)
	other := service.NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := service.NewTokenIssuer("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccessToken(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", 15*time.Minute, time.Hour)

	token, err := m.GenerateAccessToken("user-1", "leo")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "leo", claims.Username)
	require.Equal(t, "access", claims.Type)
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", 15*time.Minute, time.Hour)

	token, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "refresh", claims.Type)
}

func TestTokenTypeMismatch(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", 15*time.Minute, time.Hour)

	access, err := m.GenerateAccessToken("user-1", "leo")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	require.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	require.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", -time.Minute, time.Hour)

	token, err := m.GenerateAccessToken("user-1", "leo")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewManager("secret-a", 15*time.Minute, time.Hour)
	verifier := NewManager("secret-b", 15*time.Minute, time.Hour)

	token, err := issuer.GenerateAccessToken("user-1", "leo")
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	require.Error(t, err)
}

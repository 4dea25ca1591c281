package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestValidateTokenExpiry(t *testing.T) {
	future := time.Now().Add(1 * time.Hour).Unix()
	past := time.Now().Add(-1 * time.Hour).Unix()

	require.NoError(t, validateTokenExpiry(jwt.MapClaims{"exp": float64(future)}, 0))
	require.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": float64(past)}, 0))
	require.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))

	// exp string juga diterima
	require.NoError(t, validateTokenExpiry(jwt.MapClaims{"exp": "9999999999"}, 0))
	require.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": "bukan-angka"}, 0))

	// skew: token baru lewat sedikit masih lolos
	justExpired := time.Now().Add(-10 * time.Second).Unix()
	require.NoError(t, validateTokenExpiry(jwt.MapClaims{"exp": float64(justExpired)}, 30*time.Second))
}

func TestExtractUserID(t *testing.T) {
	id := uuid.New()

	got, err := extractUserID(jwt.MapClaims{"id": id.String()})
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = extractUserID(jwt.MapClaims{})
	require.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{"id": 123})
	require.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{"id": "bukan-uuid"})
	require.Error(t, err)
}

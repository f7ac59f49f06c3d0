package authform

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "portal", "token"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoToken)

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     expiresAt.Unix(),
	}).SignedString([]byte("qualquer"))
	require.NoError(t, err)

	require.NoError(t, store.Save(token))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, token, loaded)

	exp, err := store.ExpiresAt()
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.True(t, expiresAt.Equal(*exp))

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestFileTokenStore_InvalidToken(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, store.Save("nao-e-jwt"))

	_, err := store.ExpiresAt()
	assert.Error(t, err)
}

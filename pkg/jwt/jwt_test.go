package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func newTestManager() *Manager {
	return NewManager("test-secret", "bookshop", 2*time.Hour, 7*24*time.Hour)
}

func TestManager_GenerateAndParse(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateToken(42, "reader@example.com", "reader")
	require.NoError(t, err)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	t.Run("Access Token带用户信息", func(t *testing.T) {
		claims, err := m.ParseToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "reader@example.com", claims.Email)
		assert.Equal(t, "42", claims.Subject)
		assert.Equal(t, "bookshop", claims.Issuer)
	})

	t.Run("Refresh Token只带用户ID", func(t *testing.T) {
		claims, err := m.ParseToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Empty(t, claims.Email)
	})
}

func TestManager_ParseToken_Invalid(t *testing.T) {
	m := newTestManager()
	pair, err := m.GenerateToken(1, "a@example.com", "a")
	require.NoError(t, err)

	t.Run("签名密钥不同", func(t *testing.T) {
		other := NewManager("another-secret", "bookshop", time.Hour, time.Hour)
		_, err := other.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("签发方不同", func(t *testing.T) {
		other := NewManager("test-secret", "someone-else", time.Hour, time.Hour)
		_, err := other.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := m.ParseToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("已过期", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(3 * time.Hour) }
		defer func() { m.now = time.Now }()

		_, err := m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
}

func TestManager_RemainingTTL(t *testing.T) {
	m := newTestManager()
	pair, err := m.GenerateToken(1, "a@example.com", "a")
	require.NoError(t, err)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)

	ttl := m.RemainingTTL(claims)
	assert.InDelta(t, (2 * time.Hour).Seconds(), ttl.Seconds(), 5)

	m.now = func() time.Time { return time.Now().Add(5 * time.Hour) }
	assert.Zero(t, m.RemainingTTL(claims))
	assert.Zero(t, m.RemainingTTL(&Claims{}))
}

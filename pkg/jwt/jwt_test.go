package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// TestGenerateAndParse 测试Token生成与解析的完整流程
func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "library", claims.Issuer)
}

// TestParseExpiredToken 过期Token应返回ErrTokenExpired
func TestParseExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, time.Hour)

	pair, err := m.GenerateToken("admin")
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestParseWrongSecret 签名密钥不一致应返回ErrInvalidToken
func TestParseWrongSecret(t *testing.T) {
	m1 := NewManager("secret-a", time.Hour, time.Hour)
	m2 := NewManager("secret-b", time.Hour, time.Hour)

	pair, err := m1.GenerateToken("admin")
	require.NoError(t, err)

	_, err = m2.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestParseGarbage 非法字符串应返回ErrInvalidToken
func TestParseGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)

	_, err := m.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags(" a, b ,, c ,"))
	assert.Equal(t, []string{"x", "x"}, ParseTags("x,x"))
	assert.Equal(t, []string{}, ParseTags(""))
	assert.Equal(t, []string{}, ParseTags(" , ,"))
	assert.Equal(t, "a, b", JoinTags([]string{"a", "b"}))
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "HS256", time.Hour)

	token, err := m.GenerateToken("admin", true)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)

	withID, tokenID, err := m.GenerateTokenWithID("admin", true)
	require.NoError(t, err)
	claims, err = m.ValidateToken(withID)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)

	other := NewJWTManager("another-secret", "HS256", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	expired := NewJWTManager("secret", "HS256", -time.Minute)
	stale, err := expired.GenerateToken("admin", true)
	require.NoError(t, err)
	_, err = m.ValidateToken(stale)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.False(t, IsBcryptHash("password123"))
	assert.NoError(t, CheckPassword("password123", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}

type sampleForm struct {
	Title        string `json:"title" label:"标题" validate:"required"`
	Platform     string `json:"platform" validate:"omitempty,platform"`
	ResourceType string `json:"resourceType" validate:"omitempty,resource_type"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sampleForm{Title: "t", Platform: "123pan", ResourceType: "compressed"}))
	assert.NoError(t, ValidateStruct(sampleForm{Title: "t"}))

	err := ValidateStruct(sampleForm{Platform: "dropbox", ResourceType: "ebook"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "标题是必填字段")
	assert.Contains(t, err.Error(), "platform必须是")
	assert.Contains(t, err.Error(), "resourceType必须是")
}

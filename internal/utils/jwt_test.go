package utils

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
    tok, err := NewAccessToken("test-secret", "user_42", "owner", 15)
    require.NoError(t, err)
    require.NotEmpty(t, tok.Token)

    userID, role, err := ParseAccessToken("test-secret", tok.Token)
    require.NoError(t, err)
    assert.Equal(t, "user_42", userID)
    assert.Equal(t, "owner", role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
    tok, err := NewAccessToken("secret-a", "user_1", "player", 15)
    require.NoError(t, err)

    _, _, err = ParseAccessToken("secret-b", tok.Token)
    assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
    _, _, err := ParseAccessToken("secret", "not.a.jwt")
    assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
    tok, err := NewAccessToken("secret", "user_1", "player", -1)
    require.NoError(t, err)

    _, _, err = ParseAccessToken("secret", tok.Token)
    assert.Error(t, err)
}

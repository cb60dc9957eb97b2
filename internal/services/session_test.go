package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewSessionManager("super-secret", time.Hour)

	token, err := m.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestSessionManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewSessionManager("secret", -time.Second)

	token, err := m.Issue("u1")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestSessionManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewSessionManager("right-secret", time.Hour)
	verifier := NewSessionManager("wrong-secret", time.Hour)

	token, err := issuer.Issue("u2")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestSessionManager_Malformed(t *testing.T) {
	t.Parallel()

	m := NewSessionManager("k", time.Hour)

	_, err := m.Verify("not.a.jwt")
	assert.Error(t, err)

	_, err = m.Verify("")
	assert.Error(t, err)
}

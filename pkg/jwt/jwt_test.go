package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate("alice", "64f0c2a9e1b2c3d4e5f60718")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "64f0c2a9e1b2c3d4e5f60718", claims.ID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-one").Generate("alice", "id-1")
	require.NoError(t, err)

	_, err = NewManager("secret-two").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate("alice", "id-1")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Verify(tampered)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}

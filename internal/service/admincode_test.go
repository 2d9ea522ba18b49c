package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminCodeVerifier_FromPlainCode(t *testing.T) {
	v, err := NewAdminCodeVerifier("brew-master", "")
	require.NoError(t, err)

	assert.True(t, v.Enabled())
	assert.True(t, v.Verify("brew-master"))
	assert.False(t, v.Verify("brew-apprentice"))
	assert.False(t, v.Verify(""))
}

func TestAdminCodeVerifier_FromHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("espresso"), bcrypt.MinCost)
	require.NoError(t, err)

	v, err := NewAdminCodeVerifier("ignored-when-hash-set", string(hash))
	require.NoError(t, err)

	assert.True(t, v.Verify("espresso"))
	assert.False(t, v.Verify("ignored-when-hash-set"))

	_, err = NewAdminCodeVerifier("", "not-a-bcrypt-hash")
	assert.Error(t, err)
}

func TestAdminCodeVerifier_Disabled(t *testing.T) {
	v, err := NewAdminCodeVerifier("", "")
	require.NoError(t, err)
	assert.False(t, v.Enabled())
	assert.False(t, v.Verify("anything"))

	var nilVerifier *AdminCodeVerifier
	assert.False(t, nilVerifier.Verify("anything"))
}

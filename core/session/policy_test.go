package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/profile"
)

func TestMockPolicy(t *testing.T) {
	pol := MockPolicy{Sentinel: "password123"}
	tests := []struct {
		password string
		wantErr  error
	}{
		{password: ""},
		{password: "password123"},
		{password: "Password123", wantErr: ErrInvalidCredentials},
		{password: "nope", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantErr, pol.Authenticate(profile.Profile{}, tt.password), "password=%q", tt.password)
	}
}

func TestNewPolicy(t *testing.T) {
	conf := core.NewTestConfig(t.TempDir())

	pol, err := NewPolicy(conf)
	require.NoError(t, err)
	assert.Equal(t, MockPolicy{Sentinel: "password123"}, pol)

	conf.Session.AuthMode = core.AuthModeHash
	pol, err = NewPolicy(conf)
	require.NoError(t, err)
	assert.Equal(t, HashPolicy{}, pol)

	conf.Session.AuthMode = "lol"
	_, err = NewPolicy(conf)
	assert.Error(t, err)
}

func TestNewProfileID(t *testing.T) {
	a, b := NewProfileID(), NewProfileID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, len(profileIDPrefix)+26)
	assert.Equal(t, profileIDPrefix, a[:len(profileIDPrefix)])
}

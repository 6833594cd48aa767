package roblox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIdentityRolimonsNumeric(t *testing.T) {
	id, username, err := ExtractIdentity("https://www.rolimons.com/player/261")
	require.NoError(t, err)
	assert.Equal(t, int64(261), id)
	assert.Empty(t, username)
}

func TestExtractIdentityRolimonsUsername(t *testing.T) {
	id, username, err := ExtractIdentity("https://www.rolimons.com/player/builderman")
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Equal(t, "builderman", username)
}

func TestExtractIdentityRobloxProfileURL(t *testing.T) {
	id, username, err := ExtractIdentity("https://www.roblox.com/users/156/profile")
	require.NoError(t, err)
	assert.Equal(t, int64(156), id)
	assert.Empty(t, username)
}

func TestExtractIdentityNoMarker(t *testing.T) {
	_, _, err := ExtractIdentity("https://example.com/something/else")
	assert.ErrorIs(t, err, ErrNoIdentity)
}

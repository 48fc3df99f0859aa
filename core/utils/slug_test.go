package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "stimpak", Slug("Stimpak"))
	assert.Equal(t, "stim-pak", Slug("Stim Pak"))
	assert.Equal(t, "stim-pak", Slug("  stim   PAK "))
	assert.Equal(t, "stim-pak", Slug("stim\tpak"))
	assert.Equal(t, "", Slug("   "))
}

func TestSlugDeterministic(t *testing.T) {
	// Colliding display names must derive the identical key.
	assert.Equal(t, Slug("Stim Pak"), Slug("stim   pak"))
}

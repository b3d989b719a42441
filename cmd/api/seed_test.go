package main

import (
	"testing"

	"github.com/gamassss/urlist/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeedLists(t *testing.T) {
	lists := buildSeedLists(4)

	require.Len(t, lists, len(demoLists)+4)
	assert.Equal(t, "weekend-reads", lists[0].Slug)
	assert.Equal(t, "generated-list-4", lists[len(lists)-1].Slug)

	seen := make(map[string]bool)
	for _, l := range lists {
		assert.True(t, validator.IsSlug(l.Slug), l.Slug)
		assert.False(t, seen[l.Slug], "duplicate slug %s", l.Slug)
		seen[l.Slug] = true
		assert.NotEmpty(t, l.URLs)
	}
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	up, _, err := root.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", up.Name())
}

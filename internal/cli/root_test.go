package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "storefront", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"browse", "show", "categories", "cart", "favorites", "wishlist", "saved", "admin"}

	for _, name := range commands {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestCartSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	subcommands := []string{"show", "add", "inc", "dec", "rm", "clear"}

	for _, name := range subcommands {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{"cart", name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}

	t.Run("with flag seeds every subcommand", func(t *testing.T) {
		sub, _, err := cmd.Find([]string{"cart", "dec"})
		require.NoError(t, err)
		assert.NotNil(t, sub.InheritedFlags().Lookup("with"))
	})
}

func TestSearchAliasesBrowse(t *testing.T) {
	cmd := NewRootCommand()
	sub, _, err := cmd.Find([]string{"search"})
	require.NoError(t, err)
	assert.Equal(t, "browse", sub.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "storefront.yaml", configFlag.DefValue)
}

func TestBrowseFlagValidation(t *testing.T) {
	t.Run("rejects unknown sort field", func(t *testing.T) {
		err := runBrowse(&RootOptions{}, &browseOptions{Sort: "weight"}, NewBrowseCommand(&RootOptions{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sort field")
	})

	t.Run("rejects unknown order", func(t *testing.T) {
		err := runBrowse(&RootOptions{}, &browseOptions{Order: "sideways"}, NewBrowseCommand(&RootOptions{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid order")
	})
}

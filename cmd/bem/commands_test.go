package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/bem"
)

// newTestCommand builds a fresh command so flag state does not leak between tests
func newTestCommand(run func(*cobra.Command, []string) error, setup func(*cobra.Command)) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{RunE: run}
	if setup != nil {
		setup(cmd)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestRunBlock(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		extend   string
		elements []string
		want     string
		kind     error
	}{
		{
			name: "block",
			args: []string{"some-block"},
			want: "some-block\n",
		},
		{
			name: "modifiers",
			args: []string{"some-block", "modifier-1", "modifier-2"},
			want: "some-block some-block--modifier-1 some-block--modifier-2\n",
		},
		{
			name:     "elements",
			args:     []string{"some-block", "ignored"},
			elements: []string{"a", "b"},
			want:     "some-block__a some-block__b\n",
		},
		{
			name:   "extend",
			args:   []string{"some-block", "m1"},
			extend: "extended",
			want:   "some-block-extended some-block-extended--m1\n",
		},
		{
			name:     "extend then element",
			args:     []string{"card"},
			extend:   "header",
			elements: []string{"title"},
			want:     "card-header__title\n",
		},
		{
			name: "invalid modifier",
			args: []string{"b", "x--y"},
			kind: bem.ErrModifierSeparator,
		},
		{
			name:     "invalid element",
			args:     []string{"b"},
			elements: []string{"x__y"},
			kind:     bem.ErrElementSeparator,
		},
		{
			name: "empty block",
			args: []string{""},
			kind: bem.ErrEmptyBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			cmd, out := newTestCommand(runBlock, func(c *cobra.Command) {
				c.Flags().String("extend", "", "")
				c.Flags().StringSlice("element", nil, "")
			})
			require.NoError(t, cmd.Flags().Set("extend", tt.extend))
			for _, el := range tt.elements {
				require.NoError(t, cmd.Flags().Set("element", el))
			}

			err := runBlock(cmd, tt.args)
			if tt.kind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.kind)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunRenderAndCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "card.bem.yaml"), []byte(`block: card
modifiers:
  featured: true
  muted: false
elements: [title]
`), 0644))

	t.Run("render text", func(t *testing.T) {
		resetKoanf()
		k.Set("source", dir)
		k.Set("color", false)

		cmd, out := newTestCommand(runRender, nil)
		require.NoError(t, runRender(cmd, nil))
		assert.Contains(t, out.String(), "card card--featured")
		assert.Contains(t, out.String(), "card__title")
	})

	t.Run("check passes", func(t *testing.T) {
		resetKoanf()
		k.Set("source", dir)

		cmd, out := newTestCommand(runCheck, nil)
		require.NoError(t, runCheck(cmd, nil))
		assert.Contains(t, out.String(), "0 issues")
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.bem.yaml"), []byte("block: bad\nelements: [a__b]\n"), 0644))

	t.Run("check fails", func(t *testing.T) {
		resetKoanf()
		k.Set("source", dir)

		cmd, out := newTestCommand(runCheck, nil)
		err := runCheck(cmd, nil)
		assert.ErrorIs(t, err, errIssuesFound)
		assert.Contains(t, out.String(), "bad.bem.yaml:2:12:")
	})

	t.Run("quiet render still fails", func(t *testing.T) {
		resetKoanf()
		k.Set("source", dir)
		k.Set("quiet", true)

		cmd, out := newTestCommand(runRender, nil)
		err := runRender(cmd, nil)
		assert.ErrorIs(t, err, errIssuesFound)
		assert.Empty(t, out.String())
	})
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".bem.yaml")

	cmd, out := newTestCommand(initCmd.RunE, func(c *cobra.Command) {
		c.Flags().Bool("force", false, "")
		c.Flags().String("config", "", "")
	})
	require.NoError(t, cmd.Flags().Set("config", path))

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "Created")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, string(content))

	// Refuses to overwrite without --force
	err = cmd.RunE(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, cmd.Flags().Set("force", "true"))
	require.NoError(t, cmd.RunE(cmd, nil))

	// The generated config loads cleanly
	resetKoanf()
	require.NoError(t, loadConfigFromPath(path))
	assert.Equal(t, "text", k.String("render.format"))
	assert.Equal(t, []string{"**/*.bem.yaml", "**/*.bem.yml"}, k.Strings("include"))
}

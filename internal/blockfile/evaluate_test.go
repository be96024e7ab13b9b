package blockfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/bem"
)

func TestEvaluate_Sample(t *testing.T) {
	def, err := Parse("card.bem.yaml", []byte(sampleDefinition))
	require.NoError(t, err)

	eval, err := def.Evaluate()
	require.NoError(t, err)

	assert.Equal(t, "some-block some-block--modifier-1 some-block--modifier-3", eval.Classes.Render())
	assert.Equal(t, []ElementClass{
		{Name: "title", Class: "some-block__title"},
		{Name: "body", Class: "some-block__body"},
	}, eval.Elements)
	require.Len(t, eval.Extends, 1)
	assert.Equal(t, "header", eval.Extends[0].Extension)
	assert.Equal(t, "some-block-header some-block-header--sticky", eval.Extends[0].Classes.Render())
}

func TestEvaluate_Minimal(t *testing.T) {
	def, err := Parse("b.bem.yaml", []byte("block: nav\n"))
	require.NoError(t, err)

	eval, err := def.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, "nav", eval.Classes.Render())
	assert.Empty(t, eval.Elements)
	assert.Empty(t, eval.Extends)
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    error
		line    int
		column  int
	}{
		{
			name:    "empty block",
			content: "block: \"\"\n",
			kind:    bem.ErrEmptyBlock,
			line:    1,
			column:  8,
		},
		{
			name:    "modifier with separator",
			content: "block: b\nmodifiers:\n  ok: true\n  bad--one: true\n",
			kind:    bem.ErrModifierSeparator,
			line:    4,
			column:  3,
		},
		{
			name:    "named modifier with separator",
			content: "block: b\nmodifiers:\n  dyn:\n    name: x--y\n",
			kind:    bem.ErrModifierSeparator,
			line:    3,
			column:  3,
		},
		{
			name:    "inactive invalid modifier is ignored until active",
			content: "block: b\nmodifiers:\n  bad--one: false\n  dyn: {name: \"\"}\n",
			kind:    bem.ErrEmptyModifier,
			line:    4,
			column:  3,
		},
		{
			name:    "element separator",
			content: "block: b\nelements:\n  - ok\n  - x__y\n",
			kind:    bem.ErrElementSeparator,
			line:    4,
			column:  5,
		},
		{
			name:    "empty element",
			content: "block: b\nelements: [\"\"]\n",
			kind:    bem.ErrEmptyElement,
			line:    2,
			column:  12,
		},
		{
			name:    "empty extension",
			content: "block: b\nextends:\n  - extension: \"\"\n",
			kind:    bem.ErrEmptyExtension,
			line:    3,
			column:  16,
		},
		{
			name:    "extension modifier with separator",
			content: "block: b\nextends:\n  - extension: sub\n    modifiers:\n      a--b: true\n",
			kind:    bem.ErrModifierSeparator,
			line:    5,
			column:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse("e.bem.yaml", []byte(tt.content))
			require.NoError(t, err)

			eval, err := def.Evaluate()
			require.Error(t, err)
			assert.Nil(t, eval)
			assert.ErrorIs(t, err, tt.kind)
			assert.ErrorIs(t, err, bem.ErrValidation)

			var eerr *EvalError
			require.True(t, errors.As(err, &eerr))
			assert.Equal(t, Position{Filename: "e.bem.yaml", Line: tt.line, Column: tt.column}, eerr.Pos)
		})
	}
}

package automaton

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRule(t *testing.T) {
	conway, err := LookupRule("Conway's Life")
	require.NoError(t, err)
	assert.Equal(t, "S23/B3", conway.String())

	seeds, err := LookupRule("Seeds")
	require.NoError(t, err)
	assert.Equal(t, "S/B2", seeds.String())

	highLife, err := LookupRule("High Life")
	require.NoError(t, err)
	assert.Equal(t, "S23/B36", highLife.String())
}

func TestLookupRuleUnknownName(t *testing.T) {
	_, err := LookupRule("Anti-Life")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRuleNames(t *testing.T) {
	names := RuleNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Conway's Life")
	assert.Contains(t, names, "Day and Night")
	assert.Contains(t, names, "Replicator")
	assert.Len(t, names, 23)
}

package automaton

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleValidation(t *testing.T) {
	_, err := NewRule([]int{2, 3}, []int{3})
	require.NoError(t, err)

	_, err = NewRule([]int{9}, []int{3})
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewRule([]int{2}, []int{-1})
	assert.ErrorIs(t, err, ErrInvalidRule)

	//rules with no survival or no birth are legal
	_, err = NewRule([]int{}, []int{})
	require.NoError(t, err)
}

func TestRuleFromSpecRequiresBothKeys(t *testing.T) {
	_, err := RuleFromSpec(map[string][]int{"S": {2, 3}, "B": {3}})
	require.NoError(t, err)

	_, err = RuleFromSpec(map[string][]int{"S": {2, 3}})
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = RuleFromSpec(map[string][]int{"B": {3}})
	assert.ErrorIs(t, err, ErrInvalidRule)

	//explicitly empty sets satisfy the required keys
	_, err = RuleFromSpec(map[string][]int{"S": {}, "B": {}})
	require.NoError(t, err)
}

func TestNextState(t *testing.T) {
	conway, err := NewRule([]int{2, 3}, []int{3})
	require.NoError(t, err)

	cases := []struct {
		alive      bool
		neighbours int
		want       bool
	}{
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{false, 2, false},
		{false, 3, true},
		{false, 8, false},
	}
	for _, tc := range cases {
		got := conway.NextState(tc.alive, tc.neighbours)
		assert.Equal(t, tc.want, got, "alive=%v neighbours=%d", tc.alive, tc.neighbours)
		//pure function: a second call does not change its mind
		assert.Equal(t, got, conway.NextState(tc.alive, tc.neighbours))
	}
}

func TestEmptyRuleKillsEverything(t *testing.T) {
	empty, err := NewRule([]int{}, []int{})
	require.NoError(t, err)

	for n := 0; n <= 8; n++ {
		assert.False(t, empty.NextState(true, n))
		assert.False(t, empty.NextState(false, n))
	}
}

func TestRuleString(t *testing.T) {
	conway, err := NewRule([]int{3, 2}, []int{3})
	require.NoError(t, err)
	assert.Equal(t, "S23/B3", conway.String())

	seeds, err := NewRule([]int{}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, "S/B2", seeds.String())
}

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRuleFile(t *testing.T) {
	path := writeRuleFile(t, "S: [2, 3]\nB: [3]\n")
	r, err := LoadRuleFile(path)
	require.NoError(t, err)
	assert.Equal(t, "S23/B3", r.String())
}

func TestLoadRuleFileMissingKey(t *testing.T) {
	path := writeRuleFile(t, "S: [2, 3]\n")
	_, err := LoadRuleFile(path)
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestLoadRuleFileBadValues(t *testing.T) {
	path := writeRuleFile(t, "S: [2, 3]\nB: [9]\n")
	_, err := LoadRuleFile(path)
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestLoadRuleFileMissingFile(t *testing.T) {
	_, err := LoadRuleFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Chief Stew", "chief stewardess"},
		{"First Mate", "chief officer"},
		{"  Skipper  ", "captain"},
		{"2nd Engineer", "second engineer"},
		{"Private Chef", "head chef"},
		{"stewardess", "stewardess"},
		{"unrecognized title", "unrecognized title"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalTitle(tt.input))
		})
	}
}

func TestLadderPosition_ExactMatchFirst(t *testing.T) {
	// "stewardess" must never resolve through "chief stewardess".
	dept, rung, ok := LadderPosition("stewardess")
	require.True(t, ok)
	assert.Equal(t, DeptInterior, dept)
	assert.Equal(t, 1, rung)

	dept, rung, ok = LadderPosition("chief stewardess")
	require.True(t, ok)
	assert.Equal(t, DeptInterior, dept)
	assert.Equal(t, 3, rung)
}

func TestEligibleRoles_IncludesStepDown(t *testing.T) {
	roles := EligibleRoles("chief stewardess")
	assert.Equal(t, []string{"chief stewardess", "second stewardess"}, roles)
}

func TestEligibleRoles_NoStepUpRoles(t *testing.T) {
	for _, role := range []string{"captain", "chief engineer", "head chef", "estate manager"} {
		t.Run(role, func(t *testing.T) {
			assert.Equal(t, []string{role}, EligibleRoles(role))
			assert.False(t, AllowsStepUp(role))
		})
	}
}

func TestEligibleRoles_BottomRung(t *testing.T) {
	assert.Equal(t, []string{"deckhand"}, EligibleRoles("deckhand"))
}

func TestRungDelta(t *testing.T) {
	delta, ok := RungDelta("captain", "bosun")
	require.True(t, ok)
	assert.Equal(t, 3, delta)

	delta, ok = RungDelta("chief officer", "captain")
	require.True(t, ok)
	assert.Equal(t, -1, delta)

	// Different ladders never compare.
	_, ok = RungDelta("captain", "head chef")
	assert.False(t, ok)

	_, ok = RungDelta("captain", "not a role")
	assert.False(t, ok)
}

func TestStepDownRole(t *testing.T) {
	below, ok := StepDownRole("bosun")
	require.True(t, ok)
	assert.Equal(t, "lead deckhand", below)

	_, ok = StepDownRole("captain")
	assert.False(t, ok, "terminal roles have no step-down")

	_, ok = StepDownRole("deckhand")
	assert.False(t, ok, "bottom rung has no step-down")
}

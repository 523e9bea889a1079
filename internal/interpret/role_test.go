package interpret

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRoleRegex_Specificity(t *testing.T) {
	tests := []struct {
		query    string
		expected string
	}{
		{"Looking for a chief stewardess for a 60m MY", "chief stewardess"},
		{"Head stew needed for busy charter", "chief stewardess"},
		{"Junior stewardess, first season welcome", "junior stewardess"},
		{"2nd stewardess for rotation", "second stewardess"},
		{"Experienced stewardess wanted", "stewardess"},
		{"First mate for 45m SY", "chief officer"},
		{"Captain for private 70m", "captain"},
		{"Private chef for family of six", "head chef"},
		{"Sous chef for charter galley", "sous chef"},
		{"Estate manager for property in Provence", "estate manager"},
		{"Butler for London townhouse", "house manager"},
		{"Governess for two children", "governess"},
		{"Close protection security for principal", "security officer"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			role, ok := ExtractRoleRegex(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestExtractRoleRegex_NoMatch(t *testing.T) {
	_, ok := ExtractRoleRegex("Someone reliable for the summer")
	assert.False(t, ok)
}

func TestExtractRole_SentinelWithoutClient(t *testing.T) {
	role := ExtractRole(context.Background(), nil, "Someone reliable for the summer")
	assert.Equal(t, SentinelRole, role)

	role = ExtractRole(context.Background(), nil, "Need a bosun asap")
	assert.Equal(t, "bosun", role)
}

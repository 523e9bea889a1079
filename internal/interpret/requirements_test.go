package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequirements_MinExperience(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"at least years", "Stewardess with at least 5 years", 60},
		{"minimum of months", "minimum of 6 months onboard", 6},
		{"trailing minimum", "2 years minimum required", 24},
		{"plus form", "Chef with 5+ years in galleys", 60},
		{"bare experience", "Deckhand, 18 months of experience", 18},
		{"none stated", "Looking for a nanny in Monaco", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseRequirements(tt.query)
			assert.Equal(t, tt.expected, req.MinExperienceMonths)
		})
	}
}

func TestParseRequirements_JuniorImpliesCeiling(t *testing.T) {
	req := ParseRequirements("Junior stewardess, 6 months minimum")
	assert.True(t, req.IsJuniorRole)
	assert.Equal(t, 6, req.MinExperienceMonths)
	assert.Equal(t, 42, req.MaxExperienceMonths)

	req = ParseRequirements("Entry level deckhand, no experience necessary")
	assert.True(t, req.IsJuniorRole)
	assert.Equal(t, 36, req.MaxExperienceMonths)

	req = ParseRequirements("Experienced chief stewardess wanted")
	assert.False(t, req.IsJuniorRole)
	assert.True(t, req.IsSeniorRole)
	assert.Zero(t, req.MaxExperienceMonths)
}

func TestParseRequirements_LowMinimumImpliesJunior(t *testing.T) {
	// No junior wording, but a 6-month minimum is a junior listing.
	req := ParseRequirements("Deckhand, 6 months minimum")
	assert.True(t, req.IsJuniorRole)
	assert.Equal(t, 6, req.MinExperienceMonths)
	assert.Equal(t, 42, req.MaxExperienceMonths)

	// A year-and-a-half minimum is not.
	req = ParseRequirements("Deckhand, 18 months of experience")
	assert.False(t, req.IsJuniorRole)
	assert.Zero(t, req.MaxExperienceMonths)

	// Senior wording wins over a low minimum.
	req = ParseRequirements("Experienced mate, minimum of 12 months on deck")
	assert.False(t, req.IsJuniorRole)
	assert.Zero(t, req.MaxExperienceMonths)
}

func TestParseRequirements_VesselSizeVsExposure(t *testing.T) {
	// A bare size is the job's vessel.
	req := ParseRequirements("Bosun for a 55m motor yacht")
	assert.Equal(t, 55.0, req.YachtSizeMeters)
	assert.Zero(t, req.MinYachtSizeExperienceMeters)

	// A size near an experience cue is required prior exposure.
	req = ParseRequirements("Chief stewardess, must have worked on 60m+ vessels")
	assert.Equal(t, 60.0, req.MinYachtSizeExperienceMeters)
	assert.Zero(t, req.YachtSizeMeters)

	// Sizes outside the plausible range are ignored.
	req = ParseRequirements("Stewardess needed, vessel is 500m")
	assert.Zero(t, req.YachtSizeMeters)
}

func TestParseRequirements_Certs(t *testing.T) {
	req := ParseRequirements("Deckhand with STCW and ENG1. Yachtmaster preferred.")
	assert.Equal(t, []string{"STCW", "ENG1"}, req.RequiredCerts)
	assert.Equal(t, []string{"Yachtmaster"}, req.PreferredCerts)
}

func TestParseRequirements_Licenses(t *testing.T) {
	req := ParseRequirements("Captain with Master 3000GT for 70m MY")
	assert.Contains(t, req.RequiredLicenses, "Master 3000GT")
}

func TestParseRequirements_Gender(t *testing.T) {
	req := ParseRequirements("Female stew only for this charter season")
	assert.Equal(t, "female", req.RequiredGender)

	req = ParseRequirements("Stewardess wanted for charter season")
	assert.Empty(t, req.RequiredGender)
}

func TestParseRequirements_SalaryTier(t *testing.T) {
	assert.Equal(t, "premium", ParseRequirements("Captain, €12,000 per month").SalaryTier)
	assert.Equal(t, "premium", ParseRequirements("Chef, $12k monthly").SalaryTier)
	assert.Equal(t, "standard", ParseRequirements("Stewardess, €5,000/mo").SalaryTier)
	assert.Equal(t, "entry", ParseRequirements("Junior stew, €3,000").SalaryTier)
	assert.Empty(t, ParseRequirements("Stewardess wanted").SalaryTier)
}

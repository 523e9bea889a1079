package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seaboard/crewmatch/internal/types"
)

func juniorStewQuery() *types.InterpretedQuery {
	return &types.InterpretedQuery{
		RawQuery:      "Junior stewardess, 6 months minimum",
		PrimaryRole:   "junior stewardess",
		EligibleRoles: []string{"junior stewardess"},
		Requirements: types.ParsedRequirements{
			MinExperienceMonths: 6,
			MaxExperienceMonths: 42,
			IsJuniorRole:        true,
		},
	}
}

func TestAssessSuitability_SevereOverqualification(t *testing.T) {
	// Eight years of experience against a junior listing's implied ceiling.
	veteran := &types.CandidateProfile{
		PrimaryPosition: "junior stewardess",
		YearsExperience: 8,
	}

	s := AssessSuitability(veteran, juniorStewQuery())
	assert.True(t, s.Overqualified)
	assert.LessOrEqual(t, s.Multiplier, 0.3)
	assert.NotEmpty(t, s.Reasons)
}

func TestAssessSuitability_ModerateOverqualification(t *testing.T) {
	// Five years: over the 42-month ceiling but under twice it.
	c := &types.CandidateProfile{
		PrimaryPosition: "junior stewardess",
		YearsExperience: 5,
	}

	s := AssessSuitability(c, juniorStewQuery())
	assert.True(t, s.Overqualified)
	assert.InDelta(t, 0.5, s.Multiplier, 1e-9)
}

func TestAssessSuitability_CleanMatch(t *testing.T) {
	c := &types.CandidateProfile{
		PrimaryPosition: "junior stewardess",
		YearsExperience: 1,
	}

	s := AssessSuitability(c, juniorStewQuery())
	assert.False(t, s.Overqualified)
	assert.False(t, s.Underqualified)
	assert.InDelta(t, 1.0, s.Multiplier, 1e-9)
	assert.Equal(t, types.RecommendationStrong, s.Recommendation)
}

func TestAssessSuitability_VeteranOnShortMinimumBrief(t *testing.T) {
	// "Deckhand, 6 months minimum" carries no junior wording, but the low
	// minimum implies a junior listing with a 42-month ceiling. Seven years
	// is exactly twice that ceiling and lands in the severe tier.
	q := &types.InterpretedQuery{
		RawQuery:      "Deckhand, 6 months minimum",
		PrimaryRole:   "deckhand",
		EligibleRoles: []string{"deckhand"},
		Requirements: types.ParsedRequirements{
			MinExperienceMonths: 6,
			MaxExperienceMonths: 42,
			IsJuniorRole:        true,
		},
	}
	veteran := &types.CandidateProfile{PrimaryPosition: "deckhand", YearsExperience: 7}

	s := AssessSuitability(veteran, q)
	assert.True(t, s.Overqualified)
	assert.LessOrEqual(t, s.Multiplier, 0.3)
}

func TestAssessSuitability_HierarchyOverqualification(t *testing.T) {
	q := &types.InterpretedQuery{
		PrimaryRole:   "deckhand",
		EligibleRoles: []string{"deckhand"},
	}
	captain := &types.CandidateProfile{PrimaryPosition: "captain", YearsExperience: 12}

	s := AssessSuitability(captain, q)
	assert.True(t, s.Overqualified)
	assert.LessOrEqual(t, s.Multiplier, 0.3)
}

func TestAssessSuitability_LegitimateStepUpExemption(t *testing.T) {
	// A much larger target vessel turns apparent overqualification into
	// career progression.
	q := juniorStewQuery()
	q.Requirements.YachtSizeMeters = 90

	c := &types.CandidateProfile{
		PrimaryPosition: "junior stewardess",
		YearsExperience: 5,
		YachtExperience: []types.YachtExperience{
			{Position: "junior stewardess", SizeMeters: 35, DurationMonths: 60},
		},
	}

	s := AssessSuitability(c, q)
	assert.False(t, s.Overqualified)
}

func TestAssessSuitability_Underqualification(t *testing.T) {
	q := &types.InterpretedQuery{
		PrimaryRole:   "chief stewardess",
		EligibleRoles: []string{"chief stewardess", "second stewardess"},
		Requirements:  types.ParsedRequirements{MinExperienceMonths: 60},
	}

	// 48 of 60 months: shortfall 0.2, minor tier.
	minor := &types.CandidateProfile{PrimaryPosition: "chief stewardess", YearsExperience: 4}
	s := AssessSuitability(minor, q)
	assert.True(t, s.Underqualified)
	assert.InDelta(t, 0.85, s.Multiplier, 1e-9)

	// 24 of 60 months: shortfall 0.6, severe tier.
	severe := &types.CandidateProfile{PrimaryPosition: "chief stewardess", YearsExperience: 2}
	s = AssessSuitability(severe, q)
	assert.InDelta(t, 0.3, s.Multiplier, 1e-9)
}

func TestAssessSuitability_VesselSizeShortfall(t *testing.T) {
	q := &types.InterpretedQuery{
		PrimaryRole:   "chief stewardess",
		EligibleRoles: []string{"chief stewardess"},
		Requirements:  types.ParsedRequirements{MinYachtSizeExperienceMeters: 60},
	}
	c := &types.CandidateProfile{
		PrimaryPosition: "chief stewardess",
		YachtExperience: []types.YachtExperience{
			{Position: "chief stewardess", SizeMeters: 50, DurationMonths: 24},
		},
	}

	s := AssessSuitability(c, q)
	assert.True(t, s.Underqualified)
	// Shortfall 10/60 is minor.
	assert.InDelta(t, 0.85, s.Multiplier, 1e-9)
}

func TestAssessSuitability_StatedVesselSizeImpliesExposure(t *testing.T) {
	// "60m+" with no experience wording still sets the exposure bar: a
	// candidate whose largest vessel under-runs it ranks below one whose
	// record clears it.
	q := &types.InterpretedQuery{
		RawQuery:      "Chief Stewardess, 60m+, STCW required",
		PrimaryRole:   "chief stewardess",
		EligibleRoles: []string{"chief stewardess"},
		Requirements: types.ParsedRequirements{
			YachtSizeMeters: 60,
			RequiredCerts:   []string{"STCW"},
		},
	}
	onLargeVessel := &types.CandidateProfile{
		PrimaryPosition: "chief stewardess",
		YearsExperience: 6,
		Certifications:  []types.Certification{{Name: "STCW"}},
		YachtExperience: []types.YachtExperience{
			{Position: "chief stewardess", SizeMeters: 65, DurationMonths: 30},
		},
	}
	onSmallVessel := &types.CandidateProfile{
		PrimaryPosition: "chief stewardess",
		YearsExperience: 6,
		Certifications:  []types.Certification{{Name: "STCW"}},
		YachtExperience: []types.YachtExperience{
			{Position: "chief stewardess", SizeMeters: 55, DurationMonths: 30},
		},
	}

	large := AssessSuitability(onLargeVessel, q)
	small := AssessSuitability(onSmallVessel, q)

	assert.False(t, large.Underqualified)
	assert.InDelta(t, 1.0, large.Multiplier, 1e-9)
	assert.True(t, small.Underqualified)
	assert.InDelta(t, 0.85, small.Multiplier, 1e-9)

	w := DefaultWeights()
	largePrior := PriorScore(ComputeStructuredScore(onLargeVessel, q, nil, w), large, 0.8, w)
	smallPrior := PriorScore(ComputeStructuredScore(onSmallVessel, q, nil, w), small, 0.8, w)
	assert.Greater(t, largePrior, smallPrior)
}

func TestAssessSuitability_CertGaps(t *testing.T) {
	q := &types.InterpretedQuery{
		PrimaryRole:   "deckhand",
		EligibleRoles: []string{"deckhand"},
		Requirements:  types.ParsedRequirements{RequiredCerts: []string{"STCW", "Silver Service"}},
	}
	c := &types.CandidateProfile{PrimaryPosition: "deckhand"}

	s := AssessSuitability(c, q)
	assert.True(t, s.MissingRequiredCerts)
	// Critical STCW gap (0.4) compounds with the secondary gap (0.75).
	assert.InDelta(t, 0.3, s.Multiplier, 1e-9)
	assert.Equal(t, types.RecommendationUnlikely, s.Recommendation)
}

func TestAssessSuitability_PreferredCertBonusClamped(t *testing.T) {
	q := &types.InterpretedQuery{
		PrimaryRole:   "stewardess",
		EligibleRoles: []string{"stewardess"},
		Requirements:  types.ParsedRequirements{PreferredCerts: []string{"WSET"}},
	}
	c := &types.CandidateProfile{
		PrimaryPosition: "stewardess",
		Certifications:  []types.Certification{{Name: "WSET Level 3"}},
	}

	s := AssessSuitability(c, q)
	// Bonus never pushes the multiplier above 1.0.
	assert.InDelta(t, 1.0, s.Multiplier, 1e-9)
}

func TestAssessSuitability_CareerMismatch(t *testing.T) {
	q := &types.InterpretedQuery{
		PrimaryRole:   "stewardess",
		EligibleRoles: []string{"stewardess"},
	}
	c := &types.CandidateProfile{
		PrimaryPosition: "stewardess",
		PositionsHeld:   []string{"deckhand", "bosun", "stewardess"},
	}

	s := AssessSuitability(c, q)
	assert.True(t, s.CareerMismatch)
	assert.InDelta(t, 0.3, s.Multiplier, 1e-9)
}

func TestAssessSuitability_FlightRisk(t *testing.T) {
	q := juniorStewQuery()
	q.Requirements.SalaryTier = "entry"

	veteran := &types.CandidateProfile{PrimaryPosition: "junior stewardess", YearsExperience: 7}
	s := AssessSuitability(veteran, q)
	assert.True(t, s.FlightRisk)
}

func TestAssessSuitability_MultiplierFloor(t *testing.T) {
	q := &types.InterpretedQuery{
		PrimaryRole:   "deckhand",
		EligibleRoles: []string{"deckhand"},
		Requirements: types.ParsedRequirements{
			MinExperienceMonths: 120,
			RequiredCerts:       []string{"STCW", "ENG1"},
		},
	}
	c := &types.CandidateProfile{PrimaryPosition: "stewardess"}

	s := AssessSuitability(c, q)
	assert.GreaterOrEqual(t, s.Multiplier, 0.1)
}

package scoring

import (
	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

// Fallback component weights: position fit dominates, experience fills in.
const (
	fallbackPositionWeight   = 0.6
	fallbackExperienceWeight = 0.4
)

// FallbackScore recomputes a simplified 0-100 score from position fit and
// years of experience only. It runs when the full pipeline yields zero
// candidates, so lead generation never shows a hard empty state while any
// department-eligible candidate exists.
func FallbackScore(c *types.CandidateProfile, q *types.InterpretedQuery) float64 {
	return fallbackPositionWeight*fallbackPositionScore(c, q) +
		fallbackExperienceWeight*fallbackExperienceScore(c)
}

func fallbackPositionScore(c *types.CandidateProfile, q *types.InterpretedQuery) float64 {
	current := taxonomy.CanonicalTitle(c.PrimaryPosition)
	target := taxonomy.CanonicalTitle(q.PrimaryRole)

	if current == target {
		return 100
	}
	if heldPosition(c, target) || sameLadder(current, target) {
		return 75
	}

	searchDept := taxonomy.DepartmentForPosition(target)
	candDept := taxonomy.DepartmentForCandidate(c.PositionCategory, c.PrimaryPosition)
	switch {
	case candDept == taxonomy.DeptUnknown:
		return 0
	case searchDept == candDept:
		return 55
	case taxonomy.Compatible(searchDept, candDept):
		return 40
	default:
		return 20
	}
}

func fallbackExperienceScore(c *types.CandidateProfile) float64 {
	years := c.TotalExperienceYears()
	switch {
	case years >= 10:
		return 100
	case years >= 5:
		return 80
	case years >= 3:
		return 60
	case years >= 1:
		return 40
	default:
		return 20
	}
}

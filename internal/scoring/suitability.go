package scoring

import (
	"fmt"

	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

// Penalty multipliers for the recruiter suitability model. Underqualification
// tiers key off the shortfall ratio against the stated minimum.
const (
	overqualSeverePenalty   = 0.25
	overqualModeratePenalty = 0.5
	overqualHierarchyPenalty = 0.3

	underqualMinorPenalty    = 0.85
	underqualModeratePenalty = 0.6
	underqualSeverePenalty   = 0.3

	missingCriticalCertPenalty  = 0.4
	missingSecondaryCertPenalty = 0.75
	preferredCertBonus          = 1.05

	careerMismatchPenalty = 0.3

	// A target vessel this much larger than the candidate's biggest prior
	// vessel makes an apparent overqualification a legitimate step up.
	legitStepUpSizeRatio = 1.5
)

// AssessSuitability models an experienced recruiter's judgment as a
// 0.1-1.0 multiplier with a reasoning trail.
func AssessSuitability(c *types.CandidateProfile, q *types.InterpretedQuery) types.Suitability {
	s := types.Suitability{Multiplier: 1.0}
	candMonths := c.TotalExperienceMonths()
	req := q.Requirements

	// Overqualification against a junior listing's implied ceiling.
	if req.MaxExperienceMonths > 0 && candMonths > req.MaxExperienceMonths {
		if !isLegitimateStepUp(c, q) {
			s.Overqualified = true
			if candMonths >= 2*req.MaxExperienceMonths {
				s.Multiplier *= overqualSeverePenalty
				s.Reasons = append(s.Reasons, fmt.Sprintf("severely overqualified: %d months experience against an implied ceiling of %d", candMonths, req.MaxExperienceMonths))
			} else {
				s.Multiplier *= overqualModeratePenalty
				s.Reasons = append(s.Reasons, fmt.Sprintf("overqualified: %d months experience against an implied ceiling of %d", candMonths, req.MaxExperienceMonths))
			}
		}
	}

	// Overqualification by hierarchy: more than one rung above the target.
	if delta, ok := taxonomy.RungDelta(c.PrimaryPosition, q.PrimaryRole); ok && delta > 1 {
		if !isLegitimateStepUp(c, q) {
			s.Overqualified = true
			s.Multiplier *= overqualHierarchyPenalty
			s.Reasons = append(s.Reasons, fmt.Sprintf("current position is %d rungs above the target role", delta))
		}
	}

	// Underqualification on experience, proportional to the shortfall.
	if req.MinExperienceMonths > 0 && candMonths < req.MinExperienceMonths {
		s.Underqualified = true
		shortfall := float64(req.MinExperienceMonths-candMonths) / float64(req.MinExperienceMonths)
		s.Multiplier *= underqualPenalty(shortfall)
		s.Reasons = append(s.Reasons, fmt.Sprintf("experience below stated minimum: %d of %d months", candMonths, req.MinExperienceMonths))
	}

	// Underqualification on vessel-size exposure, same tiers. A legitimate
	// step up to a much larger vessel is not penalized for it.
	if sizeReq := q.VesselSizeRequirementMeters(); sizeReq > 0 && !isLegitimateStepUp(c, q) {
		largest := c.LargestVesselMeters()
		if largest < sizeReq {
			s.Underqualified = true
			shortfall := (sizeReq - largest) / sizeReq
			s.Multiplier *= underqualPenalty(shortfall)
			s.Reasons = append(s.Reasons, fmt.Sprintf("largest vessel %.0fm below the required %.0fm experience", largest, sizeReq))
		}
	}

	// Certification gaps: critical gaps score far worse than secondary ones.
	heldCerts := canonicalCertSet(c)
	for _, cert := range req.RequiredCerts {
		if heldCerts[cert] {
			continue
		}
		s.MissingRequiredCerts = true
		if taxonomy.IsCriticalCert(cert) {
			s.Multiplier *= missingCriticalCertPenalty
			s.Reasons = append(s.Reasons, fmt.Sprintf("missing critical certification %s", cert))
		} else {
			s.Multiplier *= missingSecondaryCertPenalty
			s.Reasons = append(s.Reasons, fmt.Sprintf("missing certification %s", cert))
		}
	}
	for _, cert := range req.PreferredCerts {
		if heldCerts[cert] {
			s.Multiplier *= preferredCertBonus
			s.Reasons = append(s.Reasons, fmt.Sprintf("holds preferred certification %s", cert))
		}
	}

	// Career/department mismatch across the candidate's history.
	if historicalDepartmentMismatch(c, q) {
		s.CareerMismatch = true
		s.Multiplier *= careerMismatchPenalty
		s.Reasons = append(s.Reasons, "career history sits in a different department than the search")
	}

	// Flight risk: an overqualified candidate on a lower salary tier is
	// unlikely to stay.
	if s.Overqualified && (req.SalaryTier == "entry" || req.SalaryTier == "standard") {
		s.FlightRisk = true
		s.Reasons = append(s.Reasons, "overqualification combined with the salary tier suggests retention risk")
	}

	s.Multiplier = clamp(s.Multiplier, 0.1, 1.0)
	s.Recommendation = suitabilityRecommendation(s)
	return s
}

func underqualPenalty(shortfall float64) float64 {
	switch {
	case shortfall < 0.25:
		return underqualMinorPenalty
	case shortfall < 0.5:
		return underqualModeratePenalty
	default:
		return underqualSeverePenalty
	}
}

// isLegitimateStepUp reports whether the target vessel is large enough
// relative to the candidate's biggest prior vessel that the move reads as
// career progression rather than a step down.
func isLegitimateStepUp(c *types.CandidateProfile, q *types.InterpretedQuery) bool {
	target := q.TargetVesselSizeMeters()
	largest := c.LargestVesselMeters()
	return target > 0 && largest > 0 && target > legitStepUpSizeRatio*largest
}

func canonicalCertSet(c *types.CandidateProfile) map[string]bool {
	held := make(map[string]bool, len(c.Certifications))
	for _, cert := range c.Certifications {
		if canonical, ok := taxonomy.CanonicalCert(cert.Name); ok {
			held[canonical] = true
		}
	}
	return held
}

// historicalDepartmentMismatch reports whether the majority of the
// candidate's recorded positions sit outside the searched department and
// its compatible neighbors.
func historicalDepartmentMismatch(c *types.CandidateProfile, q *types.InterpretedQuery) bool {
	searchDept := taxonomy.DepartmentForPosition(q.PrimaryRole)
	if searchDept == taxonomy.DeptUnknown {
		return false
	}

	positions := c.PositionsHeld
	if len(positions) == 0 {
		positions = []string{c.PrimaryPosition}
	}

	mismatched := 0
	for _, pos := range positions {
		dept := taxonomy.DepartmentForPosition(pos)
		if dept != taxonomy.DeptUnknown && !taxonomy.Compatible(searchDept, dept) {
			mismatched++
		}
	}
	return mismatched > len(positions)/2
}

func suitabilityRecommendation(s types.Suitability) string {
	switch {
	case s.Multiplier >= 0.85 && !s.Overqualified && !s.Underqualified && !s.CareerMismatch && !s.MissingRequiredCerts:
		return types.RecommendationStrong
	case s.Multiplier >= 0.65 && !s.CareerMismatch && !s.MissingRequiredCerts:
		return types.RecommendationSuitable
	case s.Multiplier >= 0.4:
		return types.RecommendationConsider
	default:
		return types.RecommendationUnlikely
	}
}

// Package eligibility applies the hard pre-scoring filter: gender,
// department compatibility, position-ladder eligibility and license
// requirements. A candidate rejected here never reaches scoring.
package eligibility

import (
	"fmt"
	"strings"

	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

// SearchDepartment resolves the department being searched, preferring the
// AI parse over title inference.
func SearchDepartment(q *types.InterpretedQuery) taxonomy.Department {
	if q.AIParsed != nil && q.AIParsed.Department != "" {
		if dept := taxonomy.DepartmentForCategory(q.AIParsed.Department); dept != taxonomy.DeptUnknown {
			return dept
		}
	}
	return taxonomy.DepartmentForPosition(q.PrimaryRole)
}

// Evaluate is a pure predicate over one candidate and the interpreted query.
func Evaluate(c *types.CandidateProfile, q *types.InterpretedQuery) types.EligibilityDecision {
	// Gender constraint: only an explicit mismatch rejects.
	if g := q.Requirements.RequiredGender; g != "" && c.Gender != "" && !strings.EqualFold(c.Gender, g) {
		return types.EligibilityDecision{Eligible: false, Reason: fmt.Sprintf("brief requires %s candidates", g)}
	}

	// Department compatibility. An unknown search department is permissive;
	// an unclassifiable candidate never slips into a classified search.
	searchDept := SearchDepartment(q)
	if searchDept != taxonomy.DeptUnknown {
		candDept := taxonomy.DepartmentForCandidate(c.PositionCategory, c.PrimaryPosition)
		if candDept == taxonomy.DeptUnknown {
			return types.EligibilityDecision{Eligible: false, Reason: "candidate department cannot be determined"}
		}
		if !taxonomy.Compatible(searchDept, candDept) {
			return types.EligibilityDecision{
				Eligible: false,
				Reason:   fmt.Sprintf("%s candidate incompatible with %s search", candDept, searchDept),
			}
		}
	}

	// Position eligibility on the current primary position only: a candidate
	// who was once senior but has regressed does not qualify.
	if q.PrimaryRole != "" && q.PrimaryRole != types.SentinelRole {
		current := taxonomy.CanonicalTitle(c.PrimaryPosition)
		eligible := false
		for _, role := range q.EligibleRoles {
			if current == taxonomy.CanonicalTitle(role) {
				eligible = true
				break
			}
		}
		if !eligible {
			return types.EligibilityDecision{
				Eligible: false,
				Reason:   fmt.Sprintf("current position %q is not eligible for %q", c.PrimaryPosition, q.PrimaryRole),
			}
		}
	}

	// License requirement: the candidate's highest recorded license must
	// match one of the normalized required variants.
	if required := q.RequiredLicenses(); len(required) > 0 {
		highest := taxonomy.HighestLicense(c.LicenseNames())
		matched := false
		for _, lic := range required {
			if canonical, ok := taxonomy.NormalizeLicense(lic); ok && canonical == highest {
				matched = true
				break
			}
		}
		if !matched {
			return types.EligibilityDecision{Eligible: false, Reason: "required license not held"}
		}
	}

	return types.EligibilityDecision{Eligible: true}
}

// Filter partitions candidates into the eligible set, recording a decision
// per candidate. Filtering is idempotent: re-running it on an already
// filtered set changes nothing.
func Filter(candidates []*types.CandidateProfile, q *types.InterpretedQuery) ([]*types.CandidateProfile, map[string]types.EligibilityDecision) {
	kept := make([]*types.CandidateProfile, 0, len(candidates))
	decisions := make(map[string]types.EligibilityDecision, len(candidates))

	for _, c := range candidates {
		decision := Evaluate(c, q)
		decisions[c.ID] = decision
		if decision.Eligible {
			kept = append(kept, c)
		}
	}

	return kept, decisions
}

// DepartmentEligible returns candidates that pass only the department check,
// used by the fallback scorer when the full pipeline yields nothing.
func DepartmentEligible(candidates []*types.CandidateProfile, q *types.InterpretedQuery) []*types.CandidateProfile {
	searchDept := SearchDepartment(q)
	kept := make([]*types.CandidateProfile, 0, len(candidates))
	for _, c := range candidates {
		candDept := taxonomy.DepartmentForCandidate(c.PositionCategory, c.PrimaryPosition)
		if searchDept == taxonomy.DeptUnknown || taxonomy.Compatible(searchDept, candDept) {
			kept = append(kept, c)
		}
	}
	return kept
}

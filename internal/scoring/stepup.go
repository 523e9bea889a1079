package scoring

import (
	"fmt"

	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

// Step-up readiness thresholds.
const (
	stepUpMinMonthsInRole = 36
	stepUpVesselSizeRatio = 0.7
)

// AssessStepUp evaluates readiness for candidates sitting exactly one rung
// below the target role. Returns nil for everyone else, including when the
// target is a no-step-up role. Readiness yields a scoring boost but never
// overrides a hard eligibility rejection.
func AssessStepUp(c *types.CandidateProfile, q *types.InterpretedQuery) *types.StepUpReadiness {
	target := taxonomy.CanonicalTitle(q.PrimaryRole)
	if !taxonomy.AllowsStepUp(target) {
		return nil
	}

	delta, ok := taxonomy.RungDelta(c.PrimaryPosition, target)
	if !ok || delta != -1 {
		return nil
	}

	readiness := &types.StepUpReadiness{
		CurrentRole: taxonomy.CanonicalTitle(c.PrimaryPosition),
		TargetRole:  target,
	}

	// Factor 1: at least three years in the current role.
	if months := c.MonthsInPosition(c.PrimaryPosition); months >= stepUpMinMonthsInRole {
		readiness.QualifyingFactors = append(readiness.QualifyingFactors, fmt.Sprintf("%d months in current role", months))
	} else {
		readiness.Gaps = append(readiness.Gaps, fmt.Sprintf("only %d months in current role", months))
	}

	// Factor 2: holds a license the next rung requires.
	if required := taxonomy.LicensesForStepUp(target); len(required) > 0 {
		held := heldLicenseSet(c)
		matched := ""
		for _, lic := range required {
			if held[lic] {
				matched = lic
				break
			}
		}
		if matched != "" {
			readiness.QualifyingFactors = append(readiness.QualifyingFactors, fmt.Sprintf("holds %s", matched))
		} else {
			readiness.Gaps = append(readiness.Gaps, "missing the license the next rung requires")
		}
	}

	// Factor 3: largest-vessel experience near any stated size requirement.
	if sizeReq := q.VesselSizeRequirementMeters(); sizeReq > 0 {
		largest := c.LargestVesselMeters()
		if largest >= stepUpVesselSizeRatio*sizeReq {
			readiness.QualifyingFactors = append(readiness.QualifyingFactors, fmt.Sprintf("vessel experience %.0fm against a %.0fm requirement", largest, sizeReq))
		} else {
			readiness.Gaps = append(readiness.Gaps, fmt.Sprintf("largest vessel %.0fm well below the %.0fm requirement", largest, sizeReq))
		}
	}

	factors := len(readiness.QualifyingFactors)
	readiness.Ready = factors >= 2 || (factors == 1 && len(readiness.Gaps) == 0)
	return readiness
}

func heldLicenseSet(c *types.CandidateProfile) map[string]bool {
	held := make(map[string]bool, len(c.Licenses))
	for _, lic := range c.Licenses {
		if canonical, ok := taxonomy.NormalizeLicense(lic.Name); ok {
			held[canonical] = true
		}
	}
	return held
}

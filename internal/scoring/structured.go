package scoring

import (
	"strings"

	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

// ComputeStructuredScore builds the transparent weighted 0-100 score.
// TotalScore is a pure function of the components and the weight set.
func ComputeStructuredScore(c *types.CandidateProfile, q *types.InterpretedQuery, stepUp *types.StepUpReadiness, w Weights) types.StructuredScore {
	components := types.ScoreComponents{
		PositionFit:       positionFitScore(c, q, stepUp),
		ExperienceQuality: experienceQualityScore(c, q),
		SkillMatch:        skillMatchScore(c, q),
		Verification:      verificationScore(c),
	}

	bonuses := excellenceBonuses(c, q)
	components.Excellence = excellenceScore(bonuses)

	total := components.PositionFit*w.PositionFit +
		components.ExperienceQuality*w.ExperienceQuality +
		components.SkillMatch*w.SkillMatch +
		components.Verification*w.Verification +
		components.Excellence*w.Excellence +
		components.Availability*w.Availability

	return types.StructuredScore{
		Components:     components,
		Bonuses:        bonuses,
		TotalScore:     clamp(total, 0, 100),
		Recommendation: structuredRecommendation(total),
	}
}

func positionFitScore(c *types.CandidateProfile, q *types.InterpretedQuery, stepUp *types.StepUpReadiness) float64 {
	current := taxonomy.CanonicalTitle(c.PrimaryPosition)
	target := taxonomy.CanonicalTitle(q.PrimaryRole)

	switch {
	case current == target:
		return 100
	case stepUp != nil && stepUp.Ready:
		return 85
	case stepUp != nil:
		return 70
	case heldPosition(c, target) || sameLadder(current, target):
		return 60
	default:
		return 30
	}
}

func heldPosition(c *types.CandidateProfile, target string) bool {
	for _, pos := range c.PositionsHeld {
		if taxonomy.CanonicalTitle(pos) == target {
			return true
		}
	}
	return false
}

func sameLadder(roleA, roleB string) bool {
	_, ok := taxonomy.RungDelta(roleA, roleB)
	return ok
}

func experienceQualityScore(c *types.CandidateProfile, q *types.InterpretedQuery) float64 {
	years := c.TotalExperienceYears()

	var base float64
	switch {
	case years >= 10:
		base = 100
	case years >= 7:
		base = 85
	case years >= 5:
		base = 70
	case years >= 3:
		base = 55
	case years >= 1:
		base = 40
	default:
		base = 30
	}

	// Boost when vessel experience clears the stated requirement by 20%.
	if sizeReq := q.VesselSizeRequirementMeters(); sizeReq > 0 {
		largest := c.LargestVesselMeters()
		if largest >= 1.2*sizeReq {
			base += 10
		}
	}

	return clamp(base, 0, 100)
}

func skillMatchScore(c *types.CandidateProfile, q *types.InterpretedQuery) float64 {
	score := 50.0
	held := canonicalCertSet(c)

	if required := q.Requirements.RequiredCerts; len(required) > 0 {
		matched := 0
		for _, cert := range required {
			if held[cert] {
				matched++
			}
		}
		score = 50 + 40*float64(matched)/float64(len(required))
	}

	for _, cert := range q.Requirements.PreferredCerts {
		if held[cert] {
			score += 5
		}
	}

	// Soft requirements from the AI parse: matched brief-stated skills add
	// up to 30; matching none at all applies a penalty with a floor of 30.
	if q.AIParsed != nil {
		softSkills := collectSoftSkills(q.AIParsed)
		if len(softSkills) > 0 {
			matched := matchedSoftSkills(c, softSkills)
			if matched > 0 {
				score += minFloat(30, 10*float64(matched))
			} else {
				score -= minFloat(15, 5*float64(len(softSkills)))
				if score < 30 {
					score = 30
				}
			}
		}
	}

	return clamp(score, 0, 100)
}

func collectSoftSkills(parsed *types.AIQueryParsed) []string {
	var skills []string
	skills = append(skills, parsed.Soft.CuisineTypes...)
	skills = append(skills, parsed.Soft.ServiceStyle...)
	skills = append(skills, parsed.Soft.SpecialSkills...)
	skills = append(skills, parsed.Soft.DietaryExpertise...)
	return skills
}

// matchedSoftSkills counts soft skills that appear anywhere in the
// candidate's narrative or certification text.
func matchedSoftSkills(c *types.CandidateProfile, skills []string) int {
	var haystack strings.Builder
	haystack.WriteString(strings.ToLower(c.ProfileSummary))
	haystack.WriteString(" ")
	haystack.WriteString(strings.ToLower(c.Bio))
	for _, cert := range c.Certifications {
		haystack.WriteString(" ")
		haystack.WriteString(strings.ToLower(cert.Name))
	}
	text := haystack.String()

	matched := 0
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" && strings.Contains(text, skill) {
			matched++
		}
	}
	return matched
}

func verificationScore(c *types.CandidateProfile) float64 {
	score := 40.0
	if strings.TrimSpace(c.ProfileSummary) != "" && strings.TrimSpace(c.Bio) != "" {
		score += 15
	}
	if len(c.YachtExperience) >= 2 {
		score += 15
	}
	if len(c.References) > 0 {
		score += 15
	}
	if len(c.Certifications) >= 3 {
		score += 15
	}
	return clamp(score, 0, 100)
}

// excellenceBonuses flags where the candidate exceeds, not merely meets,
// the stated requirements.
func excellenceBonuses(c *types.CandidateProfile, q *types.InterpretedQuery) types.ScoreBonuses {
	bonuses := types.ScoreBonuses{}

	if sizeReq := q.VesselSizeRequirementMeters(); sizeReq > 0 && c.LargestVesselMeters() >= 1.2*sizeReq {
		bonuses.ExceedsYachtSize = true
	}
	if minExp := q.Requirements.MinExperienceMonths; minExp > 0 && c.TotalExperienceMonths() >= minExp*3/2 {
		bonuses.ExceedsExperience = true
	}
	for _, cert := range c.Certifications {
		if canonical, ok := taxonomy.CanonicalCert(cert.Name); ok && taxonomy.IsPremiumCert(canonical) {
			bonuses.PremiumCerts = true
			break
		}
	}
	for _, exp := range c.YachtExperience {
		if exp.DurationMonths >= 36 {
			bonuses.LongTenure = true
			break
		}
	}
	if !bonuses.LongTenure {
		for _, exp := range c.HouseholdExperience {
			if exp.DurationMonths >= 36 {
				bonuses.LongTenure = true
				break
			}
		}
	}
	bonuses.VerifiedReferences = c.HasVerifiedReference()

	return bonuses
}

func excellenceScore(b types.ScoreBonuses) float64 {
	score := 0.0
	for _, hit := range []bool{b.ExceedsYachtSize, b.ExceedsExperience, b.PremiumCerts, b.LongTenure, b.VerifiedReferences} {
		if hit {
			score += 25
		}
	}
	return clamp(score, 0, 100)
}

func structuredRecommendation(total float64) string {
	switch {
	case total >= 85:
		return types.RecommendationExcellent
	case total >= 70:
		return types.RecommendationStrong
	case total >= 55:
		return types.RecommendationSuitable
	case total >= 40:
		return types.RecommendationConsider
	default:
		return types.RecommendationUnlikely
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

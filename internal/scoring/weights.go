// Package scoring implements the deterministic scoring stages of the match
// pipeline: the recruiter suitability multiplier, the transparent weighted
// structured score with its excellence bonus, step-up readiness, the
// zero-result fallback score, and the blend formulas that merge stage
// outputs.
package scoring

// Weights is the versioned scoring configuration. All weights and blend
// ratios live here so scoring behavior can be pinned in tests independent
// of code changes elsewhere.
type Weights struct {
	Version string

	// Structured score component weights; must sum to 1.0. Availability is
	// fixed at 0: outreach can always be attempted, so availability never
	// gates a match.
	PositionFit       float64
	ExperienceQuality float64
	SkillMatch        float64
	Verification      float64
	Excellence        float64
	Availability      float64

	// Share of the pre-judgment score taken by the structured score; the
	// remainder comes from embedding similarity.
	PriorStructuredShare float64

	// Judgment blend: final = blend*judgment + (1-blend)*prior. Low
	// confidence judgments get the reduced blend.
	JudgmentBlend              float64
	JudgmentBlendLowConfidence float64

	// Rerank blend: final = (1-blend)*prior + blend*relevance.
	RerankBlend float64

	// Minimum fallback score (0-100) for a candidate to be surfaced in
	// fallback mode.
	FallbackThreshold float64
}

// DefaultWeights returns the current pipeline weight set.
func DefaultWeights() Weights {
	return Weights{
		Version: "2025-08",

		PositionFit:       0.50,
		ExperienceQuality: 0.25,
		SkillMatch:        0.15,
		Verification:      0.07,
		Excellence:        0.03,
		Availability:      0.0,

		PriorStructuredShare: 0.8,

		JudgmentBlend:              0.8,
		JudgmentBlendLowConfidence: 0.5,

		RerankBlend: 0.1,

		FallbackThreshold: 55,
	}
}

// ComponentSum returns the sum of the structured component weights.
func (w Weights) ComponentSum() float64 {
	return w.PositionFit + w.ExperienceQuality + w.SkillMatch + w.Verification + w.Excellence + w.Availability
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

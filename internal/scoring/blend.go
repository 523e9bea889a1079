package scoring

import (
	"strings"

	"github.com/seaboard/crewmatch/internal/types"
)

// A judgment below this match score vetoes even when is_match is true.
const judgmentVetoScore = 30

// PriorScore combines the structured score, the recruiter multiplier, and
// embedding similarity into the 0-1 pre-judgment score.
func PriorScore(structured types.StructuredScore, suitability types.Suitability, similarity float64, w Weights) float64 {
	deterministic := (structured.TotalScore / 100) * suitability.Multiplier
	prior := w.PriorStructuredShare*deterministic + (1-w.PriorStructuredShare)*similarity
	return clamp(prior, 0, 1)
}

// JudgmentVetoes reports whether the judgment removes the candidate
// outright: an explicit non-match, or a match score below the veto floor.
func JudgmentVetoes(j *types.AIJudgment) bool {
	if j == nil {
		return false
	}
	return !j.IsMatch || j.MatchScore < judgmentVetoScore
}

// ApplyJudgment blends the AI judgment with the prior score. The judgment
// dominates once present; low-confidence judgments are blended evenly with
// the prior instead.
func ApplyJudgment(prior float64, j *types.AIJudgment, w Weights) float64 {
	if j == nil {
		return prior
	}
	blend := w.JudgmentBlend
	if strings.EqualFold(j.Confidence, "low") {
		blend = w.JudgmentBlendLowConfidence
	}
	return clamp(blend*(j.MatchScore/100)+(1-blend)*prior, 0, 1)
}

// ApplyRerank blends a cross-encoder relevance score into the prior.
func ApplyRerank(prior, relevance float64, w Weights) float64 {
	return clamp((1-w.RerankBlend)*prior+w.RerankBlend*relevance, 0, 1)
}

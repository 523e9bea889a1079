package types

// Recommendation tiers shared by the suitability and structured scorers.
const (
	RecommendationExcellent = "excellent"
	RecommendationStrong    = "strong"
	RecommendationSuitable  = "suitable"
	RecommendationConsider  = "consider"
	RecommendationUnlikely  = "unlikely"
)

// EligibilityDecision records why a candidate passed or failed the hard
// filter. A rejected candidate never reaches scoring.
type EligibilityDecision struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// Suitability models an experienced recruiter's judgment beyond raw skills
// matching: a 0.1-1.0 multiplier, a discrete recommendation, and the
// reasoning trail behind it.
type Suitability struct {
	Multiplier           float64  `json:"multiplier"`
	Recommendation       string   `json:"recommendation"`
	Reasons              []string `json:"reasons,omitempty"`
	Overqualified        bool     `json:"overqualified,omitempty"`
	Underqualified       bool     `json:"underqualified,omitempty"`
	CareerMismatch       bool     `json:"career_mismatch,omitempty"`
	MissingRequiredCerts bool     `json:"missing_required_certs,omitempty"`
	FlightRisk           bool     `json:"flight_risk,omitempty"`
}

// ScoreComponents are the weighted components of the structured score,
// each on a 0-100 scale.
type ScoreComponents struct {
	PositionFit       float64 `json:"position_fit"`
	ExperienceQuality float64 `json:"experience_quality"`
	SkillMatch        float64 `json:"skill_match"`
	Verification      float64 `json:"verification"`
	Excellence        float64 `json:"excellence"`
	Availability      float64 `json:"availability"`
}

// ScoreBonuses flag where a candidate exceeds, rather than meets, the
// stated requirements.
type ScoreBonuses struct {
	ExceedsYachtSize   bool `json:"exceeds_yacht_size"`
	ExceedsExperience  bool `json:"exceeds_experience"`
	PremiumCerts       bool `json:"premium_certs"`
	LongTenure         bool `json:"long_tenure"`
	VerifiedReferences bool `json:"verified_references"`
}

// StructuredScore is the transparent weighted 0-100 score. TotalScore is a
// pure function of the components and the pipeline's weight set.
type StructuredScore struct {
	Components     ScoreComponents `json:"components"`
	Bonuses        ScoreBonuses    `json:"bonuses"`
	TotalScore     float64         `json:"total_score"`
	Recommendation string          `json:"recommendation"`
}

// StepUpReadiness describes whether a candidate one rung below the target
// role is ready to advance.
type StepUpReadiness struct {
	CurrentRole       string   `json:"current_role"`
	TargetRole        string   `json:"target_role"`
	QualifyingFactors []string `json:"qualifying_factors,omitempty"`
	Gaps              []string `json:"gaps,omitempty"`
	Ready             bool     `json:"ready"`
}

// AIJudgment is the per-candidate LLM assessment. IsMatch=false is a hard
// veto regardless of MatchScore.
type AIJudgment struct {
	IsMatch          bool     `json:"is_match"`
	Confidence       string   `json:"confidence"`
	MatchScore       float64  `json:"match_score"`
	Reasoning        string   `json:"reasoning,omitempty"`
	SpecialStrengths []string `json:"special_strengths,omitempty"`
	Concerns         []string `json:"concerns,omitempty"`
	StepUpPotential  bool     `json:"step_up_potential,omitempty"`
}

// ScoredCandidate carries a candidate through the scoring pipeline. Each
// stage reads the prior FinalScore and writes a new one; the breakdown
// fields are set once by their producing stage.
type ScoredCandidate struct {
	Profile     *CandidateProfile
	Token       string
	Similarity  float64
	Suitability Suitability
	Structured  StructuredScore
	StepUp      *StepUpReadiness
	Judgment    *AIJudgment
	FinalScore  float64
}

package types

// Search quality levels returned in MatchResponse.
const (
	QualityExcellent      = "excellent"
	QualityGood           = "good"
	QualityLimited        = "limited"
	QualityNoExactMatches = "no_exact_matches"
)

// Presentation holds the narrative fields generated for one candidate
// before anonymization.
type Presentation struct {
	RichBio             string   `json:"rich_bio"`
	CareerHighlights    []string `json:"career_highlights"`
	ExperienceSummary   string   `json:"experience_summary"`
	KeyStrengths        []string `json:"key_strengths"`
	WhyGoodFit          string   `json:"why_good_fit"`
	EmployeeQualities   []string `json:"employee_qualities"`
	LongevityAssessment string   `json:"longevity_assessment"`
}

// AnonymizedCandidate is one entry in the ranked result list. It carries
// only an opaque per-request token, never the real candidate identity.
type AnonymizedCandidate struct {
	ID                  string   `json:"id"`
	DisplayName         string   `json:"display_name"`
	AvatarURL           string   `json:"avatar_url,omitempty"`
	Position            string   `json:"position"`
	ExperienceYears     *float64 `json:"experience_years"`
	RichBio             string   `json:"rich_bio"`
	CareerHighlights    []string `json:"career_highlights"`
	ExperienceSummary   string   `json:"experience_summary"`
	Languages           []string `json:"languages"`
	Nationality         string   `json:"nationality,omitempty"`
	Availability        string   `json:"availability,omitempty"`
	MatchScore          float64  `json:"match_score"`
	KeyStrengths        []string `json:"key_strengths"`
	Qualifications      []string `json:"qualifications"`
	NotableEmployers    []string `json:"notable_employers"`
	WhyGoodFit          string   `json:"why_good_fit"`
	EmployeeQualities   []string `json:"employee_qualities"`
	LongevityAssessment string   `json:"longevity_assessment"`
}

// SearchCriteria echoes the interpreted brief back to the client.
type SearchCriteria struct {
	Query    string `json:"query"`
	Role     string `json:"role"`
	Location string `json:"location,omitempty"`
	Timeline string `json:"timeline,omitempty"`
}

// ResultStats summarizes how the pool narrowed through the pipeline.
type ResultStats struct {
	PoolSize        int   `json:"pool_size"`
	EligibleCount   int   `json:"eligible_count"`
	JudgedCount     int   `json:"judged_count"`
	VetoedCount     int   `json:"vetoed_count"`
	RerankedCount   int   `json:"reranked_count"`
	FallbackApplied bool  `json:"fallback_applied"`
	DurationMillis  int64 `json:"duration_ms"`
}

// MatchResponse is the response body for POST /match. The client always
// receives a well-formed response with explicit quality and fallback
// indicators, never a silent empty result.
type MatchResponse struct {
	Candidates             []AnonymizedCandidate `json:"candidates"`
	TotalMatches           int                   `json:"total_matches"`
	TotalFound             int                   `json:"total_found"`
	SearchCriteria         SearchCriteria        `json:"search_criteria"`
	SearchQuality          string                `json:"search_quality"`
	SearchNotes            []string              `json:"search_notes,omitempty"`
	AlternativeSuggestions []string              `json:"alternative_suggestions,omitempty"`
	FallbackMode           bool                  `json:"fallback_mode"`
	ResultStats            ResultStats           `json:"result_stats"`
}

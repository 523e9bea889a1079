package types

import (
	"github.com/go-playground/validator/v10"
)

// SentinelRole stands in for the target role when no role could be
// extracted from the brief.
const SentinelRole = "this role"

// MatchRequest is the request body for POST /match.
type MatchRequest struct {
	Query       string `json:"query" validate:"required,min=1"`
	PreviewMode bool   `json:"preview_mode"`
	Limit       int    `json:"limit" validate:"omitempty,min=1,max=20"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ParsedRequirements holds the requirement set extracted from the brief by
// deterministic regex parsing. Immutable for the request's lifetime.
type ParsedRequirements struct {
	MinExperienceMonths          int      `json:"min_experience_months,omitempty"`
	MaxExperienceMonths          int      `json:"max_experience_months,omitempty"`
	YachtSizeMeters              float64  `json:"yacht_size_meters,omitempty"`
	MinYachtSizeExperienceMeters float64  `json:"min_yacht_size_experience_meters,omitempty"`
	RequiredCerts                []string `json:"required_certs,omitempty"`
	PreferredCerts               []string `json:"preferred_certs,omitempty"`
	RequiredLicenses             []string `json:"required_licenses,omitempty"`
	IsJuniorRole                 bool     `json:"is_junior_role,omitempty"`
	IsSeniorRole                 bool     `json:"is_senior_role,omitempty"`
	SalaryTier                   string   `json:"salary_tier,omitempty"`
	RequiredGender               string   `json:"required_gender,omitempty"`
}

// HardRequirements are the non-negotiable constraints from the AI parse.
type HardRequirements struct {
	MinExperienceYears float64  `json:"min_experience_years,omitempty"`
	MinYachtSizeMeters float64  `json:"min_yacht_size_meters,omitempty"`
	RequiredCerts      []string `json:"required_certs,omitempty"`
	RequiredLicenses   []string `json:"required_licenses,omitempty"`
	Languages          []string `json:"languages,omitempty"`
}

// SoftRequirements are preferences that influence scoring but never filter.
type SoftRequirements struct {
	CuisineTypes     []string `json:"cuisine_types,omitempty"`
	ServiceStyle     []string `json:"service_style,omitempty"`
	SpecialSkills    []string `json:"special_skills,omitempty"`
	DietaryExpertise []string `json:"dietary_expertise,omitempty"`
}

// AIQueryParsed is the optional LLM enrichment of the brief.
type AIQueryParsed struct {
	Department             string           `json:"department,omitempty"`
	Seniority              string           `json:"seniority,omitempty"`
	Hard                   HardRequirements `json:"hard_requirements"`
	Soft                   SoftRequirements `json:"soft_requirements"`
	SearchKeywords         []string         `json:"search_keywords,omitempty"`
	TargetVesselSizeMeters float64          `json:"target_vessel_size_meters,omitempty"`
	PropertyType           string           `json:"property_type,omitempty"`
	ClientType             string           `json:"client_type,omitempty"`
}

// InterpretedQuery is the full structured interpretation of one brief:
// the extracted role, its step-up-eligible set, regex requirements, and
// the optional AI parse. Immutable once built.
type InterpretedQuery struct {
	RawQuery      string
	PrimaryRole   string
	EligibleRoles []string
	Requirements  ParsedRequirements
	AIParsed      *AIQueryParsed
}

// RequiredLicenses merges license requirements from the regex parse and
// the AI parse, regex first.
func (q *InterpretedQuery) RequiredLicenses() []string {
	merged := append([]string{}, q.Requirements.RequiredLicenses...)
	if q.AIParsed != nil {
		for _, lic := range q.AIParsed.Hard.RequiredLicenses {
			if !containsFold(merged, lic) {
				merged = append(merged, lic)
			}
		}
	}
	return merged
}

// VesselSizeRequirementMeters returns the stated prior-exposure size
// requirement, falling back to the AI parse when regex found none. When
// neither states one, the job's own vessel size stands in: a brief for a
// 60m yacht expects experience at that scale.
func (q *InterpretedQuery) VesselSizeRequirementMeters() float64 {
	if q.Requirements.MinYachtSizeExperienceMeters > 0 {
		return q.Requirements.MinYachtSizeExperienceMeters
	}
	if q.AIParsed != nil && q.AIParsed.Hard.MinYachtSizeMeters > 0 {
		return q.AIParsed.Hard.MinYachtSizeMeters
	}
	return q.TargetVesselSizeMeters()
}

// TargetVesselSizeMeters returns the job's vessel size when stated.
func (q *InterpretedQuery) TargetVesselSizeMeters() float64 {
	if q.Requirements.YachtSizeMeters > 0 {
		return q.Requirements.YachtSizeMeters
	}
	if q.AIParsed != nil {
		return q.AIParsed.TargetVesselSizeMeters
	}
	return 0
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if equalFoldTrim(item, s) {
			return true
		}
	}
	return false
}

// Package types provides type definitions for structured data used throughout
// the crew-match engine.
package types

import "strings"

// YachtExperience is one vessel stint extracted from a candidate's CV by the
// ingestion pipeline.
type YachtExperience struct {
	VesselName     string  `json:"vessel_name"`
	SizeMeters     float64 `json:"size_meters"`
	Position       string  `json:"position"`
	DurationMonths int     `json:"duration_months"`
	VesselType     string  `json:"vessel_type,omitempty"`
	StartDate      string  `json:"start_date,omitempty"`
	EndDate        string  `json:"end_date,omitempty"`
}

// HouseholdExperience is one private-household stint.
type HouseholdExperience struct {
	Property       string `json:"property"`
	Location       string `json:"location,omitempty"`
	Position       string `json:"position"`
	DurationMonths int    `json:"duration_months"`
	PropertyType   string `json:"property_type,omitempty"`
}

// Certification is a named professional certification.
type Certification struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// License is a maritime or professional license.
type License struct {
	Name      string `json:"name"`
	Authority string `json:"authority,omitempty"`
}

// LanguageSkill is a spoken language with proficiency level.
type LanguageSkill struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Reference is an employment reference record.
type Reference struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Verified     bool   `json:"verified"`
}

// CandidateProfile is the read-only candidate record supplied by the
// ingestion pipeline. The matching engine never mutates it.
type CandidateProfile struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Nationality         string                `json:"nationality,omitempty"`
	Gender              string                `json:"gender,omitempty"`
	PrimaryPosition     string                `json:"primary_position"`
	PositionCategory    string                `json:"position_category,omitempty"`
	PositionsHeld       []string              `json:"positions_held,omitempty"`
	YearsExperience     float64               `json:"years_experience,omitempty"`
	YachtExperience     []YachtExperience     `json:"yacht_experience,omitempty"`
	HouseholdExperience []HouseholdExperience `json:"household_experience,omitempty"`
	Certifications      []Certification       `json:"certifications,omitempty"`
	Licenses            []License             `json:"licenses,omitempty"`
	Languages           []LanguageSkill       `json:"languages,omitempty"`
	ProfileSummary      string                `json:"profile_summary,omitempty"`
	Bio                 string                `json:"bio,omitempty"`
	Embedding           []float32             `json:"-"`
	AvailabilityStatus  string                `json:"availability_status,omitempty"`
	AvatarURL           string                `json:"avatar_url,omitempty"`
	References          []Reference           `json:"references,omitempty"`
}

// TotalExperienceMonths returns the candidate's experience in months,
// preferring the explicit years field and falling back to summing
// work-history durations when it is absent or zero.
func (c *CandidateProfile) TotalExperienceMonths() int {
	if c.YearsExperience > 0 {
		return int(c.YearsExperience * 12)
	}
	total := 0
	for _, exp := range c.YachtExperience {
		total += exp.DurationMonths
	}
	for _, exp := range c.HouseholdExperience {
		total += exp.DurationMonths
	}
	return total
}

// TotalExperienceYears returns the candidate's experience in years.
func (c *CandidateProfile) TotalExperienceYears() float64 {
	return float64(c.TotalExperienceMonths()) / 12.0
}

// LargestVesselMeters returns the size of the largest vessel the candidate
// has worked on, or 0 when there is no yacht history.
func (c *CandidateProfile) LargestVesselMeters() float64 {
	largest := 0.0
	for _, exp := range c.YachtExperience {
		if exp.SizeMeters > largest {
			largest = exp.SizeMeters
		}
	}
	return largest
}

// MonthsInPosition sums the recorded duration the candidate has held the
// given position across yacht and household history.
func (c *CandidateProfile) MonthsInPosition(position string) int {
	total := 0
	for _, exp := range c.YachtExperience {
		if equalFoldTrim(exp.Position, position) {
			total += exp.DurationMonths
		}
	}
	for _, exp := range c.HouseholdExperience {
		if equalFoldTrim(exp.Position, position) {
			total += exp.DurationMonths
		}
	}
	return total
}

// LicenseNames returns the raw license name strings.
func (c *CandidateProfile) LicenseNames() []string {
	names := make([]string, 0, len(c.Licenses))
	for _, l := range c.Licenses {
		names = append(names, l.Name)
	}
	return names
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// HasVerifiedReference reports whether any reference has been verified.
func (c *CandidateProfile) HasVerifiedReference() bool {
	for _, ref := range c.References {
		if ref.Verified {
			return true
		}
	}
	return false
}

package anonymize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seaboard/crewmatch/internal/judge"
	"github.com/seaboard/crewmatch/internal/llm"
	"github.com/seaboard/crewmatch/internal/prompts"
	"github.com/seaboard/crewmatch/internal/schemas"
	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

// Presenter generates narrative presentations for candidates, falling back
// to deterministic templates when generation fails.
type Presenter struct {
	client  llm.Client
	timeout time.Duration
}

// NewPresenter creates a presenter with a per-call timeout.
func NewPresenter(client llm.Client, timeout time.Duration) *Presenter {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Presenter{client: client, timeout: timeout}
}

// Generate produces the narrative fields for one candidate. On any
// generation or validation failure it returns the template presentation
// and the underlying error so callers can log the degradation.
func (p *Presenter) Generate(ctx context.Context, c *types.CandidateProfile, q *types.InterpretedQuery) (*types.Presentation, error) {
	if p.client == nil {
		return TemplatePresentation(c, q), nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	template := prompts.MustGet("presentation.json", "present-candidate")
	prompt := prompts.Format(template, map[string]string{
		"Query":   q.RawQuery,
		"Role":    q.PrimaryRole,
		"Profile": judge.FormatProfile(c),
	})

	jsonResp, err := p.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return TemplatePresentation(c, q), fmt.Errorf("presentation call failed: %w", err)
	}
	jsonResp = llm.CleanJSONBlock(jsonResp)

	if err := schemas.Validate("presentation.schema.json", jsonResp); err != nil {
		return TemplatePresentation(c, q), fmt.Errorf("presentation returned invalid structure: %w", err)
	}

	var presentation types.Presentation
	if err := json.Unmarshal([]byte(jsonResp), &presentation); err != nil {
		return TemplatePresentation(c, q), fmt.Errorf("failed to parse presentation: %w", err)
	}
	return &presentation, nil
}

// TemplatePresentation builds a serviceable presentation from structured
// fields alone. It never fails, so the pipeline always has narrative text.
func TemplatePresentation(c *types.CandidateProfile, q *types.InterpretedQuery) *types.Presentation {
	position := taxonomy.CanonicalTitle(c.PrimaryPosition)
	years := c.TotalExperienceYears()

	bio := fmt.Sprintf("An experienced %s with %.0f years in the industry.", position, years)
	if largest := c.LargestVesselMeters(); largest > 0 {
		bio = fmt.Sprintf("An experienced %s with %.0f years in the industry, including service aboard vessels up to %.0fm.", position, years, largest)
	}

	var highlights []string
	for _, exp := range c.YachtExperience {
		highlights = append(highlights, fmt.Sprintf("%s aboard %s for %d months", exp.Position, genericVessel(exp), exp.DurationMonths))
	}
	for _, exp := range c.HouseholdExperience {
		highlights = append(highlights, fmt.Sprintf("%s at a private residence for %d months", exp.Position, exp.DurationMonths))
	}
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}

	var strengths []string
	for _, cert := range c.Certifications {
		if canonical, ok := taxonomy.CanonicalCert(cert.Name); ok && taxonomy.IsPremiumCert(canonical) {
			strengths = append(strengths, "holds "+canonical)
		}
	}
	if c.HasVerifiedReference() {
		strengths = append(strengths, "verified references on file")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, fmt.Sprintf("solid %s background", position))
	}

	fit := fmt.Sprintf("Current %s with directly relevant experience.", position)
	if !strings.EqualFold(position, taxonomy.CanonicalTitle(q.PrimaryRole)) && q.PrimaryRole != types.SentinelRole {
		fit = fmt.Sprintf("Background as %s transfers well to a %s position.", position, q.PrimaryRole)
	}

	longevity := "Employment history shows steady tenures."
	if longest := longestStintMonths(c); longest >= 36 {
		longevity = fmt.Sprintf("Longest single engagement of %d months indicates strong commitment.", longest)
	}

	return &types.Presentation{
		RichBio:             bio,
		CareerHighlights:    highlights,
		ExperienceSummary:   fmt.Sprintf("%.0f years of professional experience.", years),
		KeyStrengths:        strengths,
		WhyGoodFit:          fit,
		EmployeeQualities:   []string{"professional", "experienced"},
		LongevityAssessment: longevity,
	}
}

func longestStintMonths(c *types.CandidateProfile) int {
	longest := 0
	for _, exp := range c.YachtExperience {
		if exp.DurationMonths > longest {
			longest = exp.DurationMonths
		}
	}
	for _, exp := range c.HouseholdExperience {
		if exp.DurationMonths > longest {
			longest = exp.DurationMonths
		}
	}
	return longest
}

// Assemble combines a scored candidate and its presentation into the
// anonymized result entry. Every narrative field passes through ScrubText
// regardless of how the presentation was produced.
func Assemble(sc *types.ScoredCandidate, p *types.Presentation) types.AnonymizedCandidate {
	c := sc.Profile
	years := c.TotalExperienceYears()

	token := sc.Token
	if token == "" {
		token = uuid.NewString()
	}

	langs := make([]string, 0, len(c.Languages))
	for _, lang := range c.Languages {
		langs = append(langs, lang.Language)
	}

	quals := make([]string, 0, len(c.Certifications)+len(c.Licenses))
	for _, cert := range c.Certifications {
		quals = append(quals, cert.Name)
	}
	for _, lic := range c.Licenses {
		quals = append(quals, lic.Name)
	}

	var employers []string
	for _, exp := range c.YachtExperience {
		employers = append(employers, genericVessel(exp))
	}
	for range c.HouseholdExperience {
		employers = append(employers, "a private residence")
	}
	if len(employers) > 4 {
		employers = employers[:4]
	}

	return types.AnonymizedCandidate{
		ID:                  token,
		DisplayName:         ObfuscateName(c.Name),
		AvatarURL:           c.AvatarURL,
		Position:            taxonomy.CanonicalTitle(c.PrimaryPosition),
		ExperienceYears:     &years,
		RichBio:             ScrubText(p.RichBio, c),
		CareerHighlights:    scrubAll(p.CareerHighlights, c),
		ExperienceSummary:   ScrubText(p.ExperienceSummary, c),
		Languages:           langs,
		Nationality:         c.Nationality,
		Availability:        c.AvailabilityStatus,
		MatchScore:          sc.FinalScore * 100,
		KeyStrengths:        scrubAll(p.KeyStrengths, c),
		Qualifications:      quals,
		NotableEmployers:    employers,
		WhyGoodFit:          ScrubText(p.WhyGoodFit, c),
		EmployeeQualities:   scrubAll(p.EmployeeQualities, c),
		LongevityAssessment: ScrubText(p.LongevityAssessment, c),
	}
}

func scrubAll(list []string, c *types.CandidateProfile) []string {
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = ScrubText(item, c)
	}
	return out
}

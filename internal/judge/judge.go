// Package judge provides the per-candidate AI judgment stage: an LLM
// re-evaluation of nuanced fit that can veto candidates the upstream
// filters missed.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/seaboard/crewmatch/internal/llm"
	"github.com/seaboard/crewmatch/internal/prompts"
	"github.com/seaboard/crewmatch/internal/schemas"
	"github.com/seaboard/crewmatch/internal/types"
)

// Judge assesses one candidate against the interpreted brief. Errors are
// per-candidate: callers fall back to the prior deterministic score and
// never fail the request.
type Judge interface {
	Assess(ctx context.Context, c *types.CandidateProfile, q *types.InterpretedQuery) (*types.AIJudgment, error)
}

// LLMJudge implements Judge over the shared LLM client.
type LLMJudge struct {
	client  llm.Client
	timeout time.Duration
}

// NewLLMJudge creates a judge with a per-call timeout.
func NewLLMJudge(client llm.Client, timeout time.Duration) *LLMJudge {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &LLMJudge{client: client, timeout: timeout}
}

// Assess runs one judgment call and parses the structured verdict.
func (j *LLMJudge) Assess(ctx context.Context, c *types.CandidateProfile, q *types.InterpretedQuery) (*types.AIJudgment, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	template := prompts.MustGet("matching.json", "judge-candidate")
	prompt := prompts.Format(template, map[string]string{
		"Query":   q.RawQuery,
		"Role":    q.PrimaryRole,
		"Profile": FormatProfile(c),
	})

	jsonResp, err := j.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("judgment call failed: %w", err)
	}
	jsonResp = llm.CleanJSONBlock(jsonResp)

	if err := schemas.Validate("ai_judgment.schema.json", jsonResp); err != nil {
		return nil, fmt.Errorf("judgment returned invalid structure: %w", err)
	}

	var judgment types.AIJudgment
	if err := json.Unmarshal([]byte(jsonResp), &judgment); err != nil {
		return nil, fmt.Errorf("failed to parse judgment: %w", err)
	}

	if judgment.MatchScore < 0 {
		judgment.MatchScore = 0
	}
	if judgment.MatchScore > 100 {
		judgment.MatchScore = 100
	}
	if judgment.Confidence == "" {
		judgment.Confidence = "medium"
	}

	return &judgment, nil
}

// FormatProfile renders the candidate's structured record as prompt text.
// Total experience is computed from work-history durations when the
// explicit years field is absent or zero.
func FormatProfile(c *types.CandidateProfile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Position: %s\n", c.PrimaryPosition)
	if len(c.PositionsHeld) > 0 {
		fmt.Fprintf(&sb, "Positions held: %s\n", strings.Join(c.PositionsHeld, ", "))
	}
	fmt.Fprintf(&sb, "Total experience: %.1f years\n", c.TotalExperienceYears())
	if c.Nationality != "" {
		fmt.Fprintf(&sb, "Nationality: %s\n", c.Nationality)
	}

	if len(c.YachtExperience) > 0 {
		sb.WriteString("Yacht experience:\n")
		for _, exp := range c.YachtExperience {
			fmt.Fprintf(&sb, "  - %s on a %.0fm %s (%d months)\n", exp.Position, exp.SizeMeters, vesselTypeOr(exp.VesselType, "yacht"), exp.DurationMonths)
		}
	}
	if len(c.HouseholdExperience) > 0 {
		sb.WriteString("Household experience:\n")
		for _, exp := range c.HouseholdExperience {
			fmt.Fprintf(&sb, "  - %s at a %s (%d months)\n", exp.Position, vesselTypeOr(exp.PropertyType, "private residence"), exp.DurationMonths)
		}
	}

	if len(c.Certifications) > 0 {
		names := make([]string, 0, len(c.Certifications))
		for _, cert := range c.Certifications {
			names = append(names, cert.Name)
		}
		fmt.Fprintf(&sb, "Certifications: %s\n", strings.Join(names, ", "))
	}
	if len(c.Licenses) > 0 {
		names := make([]string, 0, len(c.Licenses))
		for _, lic := range c.Licenses {
			names = append(names, lic.Name)
		}
		fmt.Fprintf(&sb, "Licenses: %s\n", strings.Join(names, ", "))
	}
	if len(c.Languages) > 0 {
		langs := make([]string, 0, len(c.Languages))
		for _, lang := range c.Languages {
			langs = append(langs, lang.Language)
		}
		fmt.Fprintf(&sb, "Languages: %s\n", strings.Join(langs, ", "))
	}
	if c.ProfileSummary != "" {
		fmt.Fprintf(&sb, "Summary: %s\n", c.ProfileSummary)
	}

	return sb.String()
}

func vesselTypeOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

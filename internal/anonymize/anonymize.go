// Package anonymize turns scored candidates into client-facing
// presentations with all identifying detail removed.
package anonymize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seaboard/crewmatch/internal/types"
)

// ObfuscateName reduces a full name to a first-initial display name,
// e.g. "Lucia Fernandez" becomes "L****".
func ObfuscateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Candidate"
	}
	first := []rune(name)[0]
	return strings.ToUpper(string(first)) + "****"
}

var vesselPrefixRe = regexp.MustCompile(`(?i)\b(?:M/?Y|S/?Y|M/?V)\s+[A-Z][\w'-]*(?:\s+[A-Z][\w'-]*)*`)

// ScrubText removes identifying tokens from generated narrative: the
// candidate's name parts, vessel names, and property names, each replaced
// with a generic description.
func ScrubText(text string, c *types.CandidateProfile) string {
	if text == "" {
		return text
	}

	for _, part := range nameParts(c.Name) {
		re, err := wordPattern(part)
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, "the candidate")
	}

	for _, exp := range c.YachtExperience {
		if strings.TrimSpace(exp.VesselName) == "" {
			continue
		}
		re, err := wordPattern(exp.VesselName)
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, genericVessel(exp))
	}
	text = vesselPrefixRe.ReplaceAllString(text, "a private yacht")

	for _, exp := range c.HouseholdExperience {
		if strings.TrimSpace(exp.Property) == "" {
			continue
		}
		re, err := wordPattern(exp.Property)
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, "a private residence")
	}

	return text
}

func genericVessel(exp types.YachtExperience) string {
	vesselType := strings.ToLower(strings.TrimSpace(exp.VesselType))
	if vesselType == "" {
		vesselType = "yacht"
	}
	if exp.SizeMeters > 0 {
		return fmt.Sprintf("a %.0fm %s", exp.SizeMeters, vesselType)
	}
	return "a " + vesselType
}

// nameParts splits a name into scrubbed tokens, skipping fragments too
// short to match safely.
func nameParts(name string) []string {
	var parts []string
	for _, part := range strings.Fields(name) {
		if len([]rune(part)) >= 3 {
			parts = append(parts, part)
		}
	}
	return parts
}

func wordPattern(literal string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(literal)) + `\b`)
}

// ValidateAnonymized scans the assembled result for identity leaks and
// returns the leaked tokens. An empty slice means clean. Callers log
// leaks; they never fail the request over them.
func ValidateAnonymized(a *types.AnonymizedCandidate, c *types.CandidateProfile) []string {
	haystack := strings.ToLower(strings.Join(append([]string{
		a.DisplayName, a.RichBio, a.ExperienceSummary, a.WhyGoodFit, a.LongevityAssessment,
	}, flatten(a.CareerHighlights, a.KeyStrengths, a.EmployeeQualities, a.Qualifications, a.NotableEmployers)...), " "))

	var leaked []string
	seen := make(map[string]bool)
	check := func(token string) {
		token = strings.ToLower(strings.TrimSpace(token))
		if len(token) < 3 || seen[token] {
			return
		}
		if strings.Contains(haystack, token) {
			leaked = append(leaked, token)
			seen[token] = true
		}
	}

	for _, part := range nameParts(c.Name) {
		check(part)
	}
	for _, exp := range c.YachtExperience {
		check(exp.VesselName)
	}
	for _, exp := range c.HouseholdExperience {
		check(exp.Property)
	}
	return leaked
}

func flatten(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

package interpret

import (
	"context"
	"regexp"
	"strings"

	"github.com/seaboard/crewmatch/internal/llm"
	"github.com/seaboard/crewmatch/internal/prompts"
	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

// SentinelRole is returned when no role can be extracted from the brief.
const SentinelRole = types.SentinelRole

// rolePatterns maps title regexes to canonical roles, ordered
// most-specific-first so "chief stewardess" wins over "stewardess".
var rolePatterns = []struct {
	re   *regexp.Regexp
	role string
}{
	{regexp.MustCompile(`(?i)\bchief\s+stew(?:ardess)?\b`), "chief stewardess"},
	{regexp.MustCompile(`(?i)\b(?:head|senior)\s+stew(?:ardess)?\b`), "chief stewardess"},
	{regexp.MustCompile(`(?i)\b(?:junior|jnr)\s+stew(?:ardess)?\b`), "junior stewardess"},
	{regexp.MustCompile(`(?i)\b(?:second|2nd)\s+stew(?:ardess)?\b`), "second stewardess"},
	{regexp.MustCompile(`(?i)\bpurser\b`), "purser"},
	{regexp.MustCompile(`(?i)\bstew(?:ardess)?\b`), "stewardess"},
	{regexp.MustCompile(`(?i)\bchief\s+officer\b|\bfirst\s+officer\b|\bfirst\s+mate\b`), "chief officer"},
	{regexp.MustCompile(`(?i)\b(?:second|2nd)\s+officer\b`), "second officer"},
	{regexp.MustCompile(`(?i)\bchief\s+engineer\b`), "chief engineer"},
	{regexp.MustCompile(`(?i)\b(?:second|2nd)\s+engineer\b`), "second engineer"},
	{regexp.MustCompile(`(?i)\b(?:third|3rd)\s+engineer\b`), "third engineer"},
	{regexp.MustCompile(`(?i)\bbosun\b|\bboatswain\b`), "bosun"},
	{regexp.MustCompile(`(?i)\blead\s+deckhand\b`), "lead deckhand"},
	{regexp.MustCompile(`(?i)\bdeck\s*hand\b`), "deckhand"},
	{regexp.MustCompile(`(?i)\bcaptain\b|\bmaster\b|\bskipper\b`), "captain"},
	{regexp.MustCompile(`(?i)\bhead\s+chef\b|\bexecutive\s+chef\b|\bprivate\s+chef\b`), "head chef"},
	{regexp.MustCompile(`(?i)\bsous\s+chef\b`), "sous chef"},
	{regexp.MustCompile(`(?i)\b(?:crew|yacht)\s+chef\b|\bchef\b|\bcook\b`), "crew chef"},
	{regexp.MustCompile(`(?i)\bestate\s+manager\b`), "estate manager"},
	{regexp.MustCompile(`(?i)\bhouse\s+manager\b|\bbutler\b`), "house manager"},
	{regexp.MustCompile(`(?i)\bhead\s+housekeeper\b`), "head housekeeper"},
	{regexp.MustCompile(`(?i)\bhouse\s*keeper\b`), "housekeeper"},
	{regexp.MustCompile(`(?i)\bgoverness\b`), "governess"},
	{regexp.MustCompile(`(?i)\bnanny\b`), "nanny"},
	{regexp.MustCompile(`(?i)\bhead\s+of\s+security\b`), "head of security"},
	{regexp.MustCompile(`(?i)\bsecurity\s+officer\b|\bsecurity\b`), "security officer"},
	{regexp.MustCompile(`(?i)\bspa\s+therapist\b|\bmasseuse\b`), "spa therapist"},
}

// ExtractRoleRegex extracts the target role from a brief using the ordered
// pattern table.
func ExtractRoleRegex(query string) (string, bool) {
	for _, p := range rolePatterns {
		if p.re.MatchString(query) {
			return p.role, true
		}
	}
	return "", false
}

// ExtractRole extracts the target role: for non-trivial queries a fast LLM
// call runs first, falling back to the regex table on failure or an empty
// result, then to the sentinel role.
func ExtractRole(ctx context.Context, client llm.Client, query string) string {
	query = strings.TrimSpace(query)

	if client != nil && len(query) > 3 {
		if role, ok := extractRoleLLM(ctx, client, query); ok {
			return role
		}
	}

	if role, ok := ExtractRoleRegex(query); ok {
		return role
	}
	return SentinelRole
}

func extractRoleLLM(ctx context.Context, client llm.Client, query string) (string, bool) {
	template := prompts.MustGet("matching.json", "extract-role")
	prompt := prompts.Format(template, map[string]string{"Query": query})

	resp, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", false
	}

	role := taxonomy.CanonicalTitle(resp)
	if role == "" || role == "unknown" {
		return "", false
	}
	// Only trust the model when it names a role the ladder system knows;
	// anything else falls through to the regex table.
	if _, _, ok := taxonomy.LadderPosition(role); !ok {
		return "", false
	}
	return role, true
}

package interpret

import (
	"context"
	"encoding/json"

	"github.com/seaboard/crewmatch/internal/llm"
	"github.com/seaboard/crewmatch/internal/prompts"
	"github.com/seaboard/crewmatch/internal/schemas"
	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

// minQueryLenForAIParse guards the extra model call: very short briefs carry
// nothing the regex parse would miss.
const minQueryLenForAIParse = 15

// ParseQueryAI runs the LLM brief parse. Callers treat any error as
// non-fatal and proceed with the regex-only requirements.
func ParseQueryAI(ctx context.Context, client llm.Client, query string) (*types.AIQueryParsed, error) {
	if len(query) <= minQueryLenForAIParse {
		return nil, nil
	}

	template := prompts.MustGet("matching.json", "parse-brief")
	prompt := prompts.Format(template, map[string]string{"Query": query})

	jsonResp, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "brief parse failed", Cause: err}
	}
	jsonResp = llm.CleanJSONBlock(jsonResp)

	if err := schemas.Validate("ai_query_parsed.schema.json", jsonResp); err != nil {
		return nil, &ParseError{Message: "brief parse returned invalid structure", Cause: err}
	}

	var parsed types.AIQueryParsed
	if err := json.Unmarshal([]byte(jsonResp), &parsed); err != nil {
		return nil, &ParseError{Message: "failed to parse brief response", Cause: err}
	}

	// Normalize the department against the taxonomy so downstream filters
	// never see a free-form value.
	if dept := taxonomy.DepartmentForCategory(parsed.Department); dept != taxonomy.DeptUnknown {
		parsed.Department = string(dept)
	} else {
		parsed.Department = ""
	}

	return &parsed, nil
}

// Interpret builds the full structured interpretation of a brief. The LLM
// client may be nil, in which case only deterministic parsing runs.
func Interpret(ctx context.Context, client llm.Client, query string) *types.InterpretedQuery {
	role := ExtractRole(ctx, client, query)

	q := &types.InterpretedQuery{
		RawQuery:     query,
		PrimaryRole:  role,
		Requirements: ParseRequirements(query),
	}

	if role != SentinelRole {
		q.EligibleRoles = taxonomy.EligibleRoles(role)
	} else {
		q.EligibleRoles = []string{role}
	}

	if client != nil {
		if parsed, err := ParseQueryAI(ctx, client, query); err == nil && parsed != nil {
			q.AIParsed = parsed
		}
	}

	return q
}

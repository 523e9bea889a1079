// Package rerank provides an optional cross-encoder reranking stage backed
// by an external HTTP service. The stage is strictly best-effort: any
// failure leaves the existing ordering untouched.
package rerank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/seaboard/crewmatch/internal/types"
)

// Candidate is one document sent to the reranker.
type Candidate struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// Result is one relevance score returned by the reranker.
type Result struct {
	ID        string  `json:"id"`
	Relevance float64 `json:"relevance"`
}

// Reranker scores documents for relevance against a query.
type Reranker interface {
	Rerank(ctx context.Context, query string, candidates []Candidate) ([]Result, error)
}

// HTTPReranker calls a JSON-over-HTTP reranking service.
type HTTPReranker struct {
	endpoint string
	client   *http.Client
}

// NewHTTPReranker creates a reranker client for the given endpoint.
func NewHTTPReranker(endpoint string, timeout time.Duration) *HTTPReranker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPReranker{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type rerankRequest struct {
	Query      string      `json:"query"`
	Candidates []Candidate `json:"candidates"`
}

type rerankResponse struct {
	Results []Result `json:"results"`
}

// Rerank posts the query and candidate documents and returns relevance
// scores keyed by candidate ID.
func (r *HTTPReranker) Rerank(ctx context.Context, query string, candidates []Candidate) ([]Result, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(rerankRequest{Query: query, Candidates: candidates})
	if err != nil {
		return nil, fmt.Errorf("failed to encode rerank request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build rerank request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rerank call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rerank service returned status %d", resp.StatusCode)
	}

	var parsed rerankResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode rerank response: %w", err)
	}

	for i := range parsed.Results {
		if parsed.Results[i].Relevance < 0 {
			parsed.Results[i].Relevance = 0
		}
		if parsed.Results[i].Relevance > 1 {
			parsed.Results[i].Relevance = 1
		}
	}
	return parsed.Results, nil
}

// BuildDocument flattens a candidate's structured record into the document
// text sent to the reranker.
func BuildDocument(c *types.CandidateProfile) string {
	var sb strings.Builder

	sb.WriteString(c.PrimaryPosition)
	if len(c.PositionsHeld) > 0 {
		sb.WriteString(". Previously: ")
		sb.WriteString(strings.Join(c.PositionsHeld, ", "))
	}
	fmt.Fprintf(&sb, ". %.1f years of experience", c.TotalExperienceYears())

	if largest := c.LargestVesselMeters(); largest > 0 {
		fmt.Fprintf(&sb, ", largest vessel %.0fm", largest)
	}
	if len(c.Certifications) > 0 {
		names := make([]string, 0, len(c.Certifications))
		for _, cert := range c.Certifications {
			names = append(names, cert.Name)
		}
		sb.WriteString(". Certifications: ")
		sb.WriteString(strings.Join(names, ", "))
	}
	if c.ProfileSummary != "" {
		sb.WriteString(". ")
		sb.WriteString(c.ProfileSummary)
	}
	if c.Bio != "" {
		sb.WriteString(". ")
		sb.WriteString(c.Bio)
	}

	return sb.String()
}

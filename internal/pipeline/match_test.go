package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaboard/crewmatch/internal/rerank"
	"github.com/seaboard/crewmatch/internal/scoring"
	"github.com/seaboard/crewmatch/internal/store"
	"github.com/seaboard/crewmatch/internal/types"
)

type stubStore struct {
	candidates []store.Retrieved
	err        error
}

func (s *stubStore) Search(_ context.Context, _ []float32, _ int) ([]store.Retrieved, error) {
	return s.candidates, s.err
}

type stubEmbedder struct{}

func (stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{0.1, 0.2, 0.3}, nil
}

type stubJudge struct {
	judgments map[string]*types.AIJudgment
	err       error
}

func (j *stubJudge) Assess(_ context.Context, c *types.CandidateProfile, _ *types.InterpretedQuery) (*types.AIJudgment, error) {
	if j.err != nil {
		return nil, j.err
	}
	if judgment, ok := j.judgments[c.ID]; ok {
		return judgment, nil
	}
	return &types.AIJudgment{IsMatch: true, Confidence: "high", MatchScore: 80}, nil
}

type stubReranker struct {
	relevance float64
	err       error
	called    bool
}

func (r *stubReranker) Rerank(_ context.Context, _ string, candidates []rerank.Candidate) ([]rerank.Result, error) {
	r.called = true
	if r.err != nil {
		return nil, r.err
	}
	results := make([]rerank.Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, rerank.Result{ID: c.ID, Relevance: r.relevance})
	}
	return results, nil
}

func stewPool() []store.Retrieved {
	return []store.Retrieved{
		{
			Profile: &types.CandidateProfile{
				ID: "chief", Name: "Lucia Fernandez",
				PrimaryPosition: "chief stewardess", YearsExperience: 8,
				YachtExperience: []types.YachtExperience{
					{VesselName: "Aurora", SizeMeters: 70, Position: "chief stewardess", DurationMonths: 48},
				},
			},
			Similarity: 0.9,
		},
		{
			Profile: &types.CandidateProfile{
				ID: "second", Name: "Maya Brown",
				PrimaryPosition: "second stewardess", YearsExperience: 4,
				YachtExperience: []types.YachtExperience{
					{VesselName: "Borealis", SizeMeters: 55, Position: "second stewardess", DurationMonths: 40},
				},
			},
			Similarity: 0.7,
		},
		{
			Profile: &types.CandidateProfile{
				ID: "captain", Name: "John Smith",
				PrimaryPosition: "captain", PositionCategory: "deck", YearsExperience: 15,
			},
			Similarity: 0.6,
		},
	}
}

func newMatcher(st store.CandidateStore) *Matcher {
	return &Matcher{
		Store:    st,
		Embedder: stubEmbedder{},
		Weights:  scoring.DefaultWeights(),
	}
}

func TestMatch_RanksEligibleCandidates(t *testing.T) {
	m := newMatcher(&stubStore{candidates: stewPool()})
	m.Judge = &stubJudge{}

	resp, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess for a 60m motor yacht"})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.ResultStats.PoolSize)
	assert.Equal(t, 2, resp.ResultStats.EligibleCount, "the captain never passes the interior filter")
	assert.Equal(t, 2, resp.TotalMatches)
	assert.False(t, resp.FallbackMode)
	assert.Equal(t, "chief stewardess", resp.SearchCriteria.Role)

	// The sitting chief stewardess outranks the step-up candidate.
	require.Len(t, resp.Candidates, 2)
	assert.Equal(t, "chief stewardess", resp.Candidates[0].Position)
	assert.GreaterOrEqual(t, resp.Candidates[0].MatchScore, resp.Candidates[1].MatchScore)
}

func TestMatch_AnonymizesResults(t *testing.T) {
	m := newMatcher(&stubStore{candidates: stewPool()})

	resp, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess for a 60m motor yacht"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Candidates)

	for _, entry := range resp.Candidates {
		assert.NotContains(t, []string{"chief", "second"}, entry.ID, "internal IDs never surface")
		assert.Regexp(t, `^[A-Z]\*{4}$`, entry.DisplayName)
		assert.NotContains(t, entry.RichBio, "Aurora")
		assert.NotContains(t, entry.RichBio, "Lucia")
	}
}

func TestMatch_JudgmentVeto(t *testing.T) {
	m := newMatcher(&stubStore{candidates: stewPool()})
	m.Judge = &stubJudge{judgments: map[string]*types.AIJudgment{
		"second": {IsMatch: false, Confidence: "high", MatchScore: 10},
	}}

	resp, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess for a 60m motor yacht"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ResultStats.VetoedCount)
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "chief stewardess", resp.Candidates[0].Position)
}

func TestMatch_JudgeFailureKeepsPriorScore(t *testing.T) {
	m := newMatcher(&stubStore{candidates: stewPool()})
	m.Judge = &stubJudge{err: errors.New("model unavailable")}

	resp, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess for a 60m motor yacht"})
	require.NoError(t, err)

	assert.Zero(t, resp.ResultStats.JudgedCount)
	assert.Zero(t, resp.ResultStats.VetoedCount)
	assert.Len(t, resp.Candidates, 2, "judging is best-effort")
}

func TestMatch_RerankFailureKeepsOrder(t *testing.T) {
	m := newMatcher(&stubStore{candidates: stewPool()})
	reranker := &stubReranker{err: errors.New("service down")}
	m.Reranker = reranker

	resp, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess for a 60m motor yacht"})
	require.NoError(t, err)

	assert.True(t, reranker.called)
	assert.Zero(t, resp.ResultStats.RerankedCount)
	assert.Len(t, resp.Candidates, 2)
}

func TestMatch_RerankBlends(t *testing.T) {
	m := newMatcher(&stubStore{candidates: stewPool()})
	m.Reranker = &stubReranker{relevance: 0.95}

	resp, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess for a 60m motor yacht"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ResultStats.RerankedCount)
}

func TestMatch_FallbackMode(t *testing.T) {
	// Only a plain stewardess in the pool: two rungs below the target, so
	// the strict filter rejects her, but she is department-adjacent.
	pool := []store.Retrieved{
		{
			Profile: &types.CandidateProfile{
				ID: "stew", Name: "Ana Costa",
				PrimaryPosition: "stewardess", YearsExperience: 5,
			},
			Similarity: 0.6,
		},
	}
	m := newMatcher(&stubStore{candidates: pool})

	resp, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess needed for busy charter"})
	require.NoError(t, err)

	assert.True(t, resp.FallbackMode)
	assert.True(t, resp.ResultStats.FallbackApplied)
	assert.Equal(t, types.QualityLimited, resp.SearchQuality)
	assert.NotEmpty(t, resp.SearchNotes)
	require.Len(t, resp.Candidates, 1)
}

func TestMatch_NoMatchesAtAll(t *testing.T) {
	pool := []store.Retrieved{
		{
			Profile:    &types.CandidateProfile{ID: "deck", Name: "Tom Reed", PrimaryPosition: "deckhand", PositionCategory: "deck"},
			Similarity: 0.3,
		},
	}
	m := newMatcher(&stubStore{candidates: pool})

	resp, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess needed for busy charter"})
	require.NoError(t, err)

	assert.Empty(t, resp.Candidates)
	assert.Equal(t, types.QualityNoExactMatches, resp.SearchQuality)
	assert.False(t, resp.FallbackMode, "fallback with nothing to surface is not fallback mode")
	assert.NotEmpty(t, resp.AlternativeSuggestions)
}

func TestMatch_LimitApplied(t *testing.T) {
	m := newMatcher(&stubStore{candidates: stewPool()})

	resp, err := m.Match(context.Background(), &types.MatchRequest{
		Query: "Chief stewardess for a 60m motor yacht",
		Limit: 1,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Candidates, 1)
	assert.Equal(t, 2, resp.TotalFound)
}

func TestMatch_RetrievalFailure(t *testing.T) {
	m := newMatcher(&stubStore{err: errors.New("connection refused")})

	_, err := m.Match(context.Background(), &types.MatchRequest{Query: "Chief stewardess"})
	assert.Error(t, err)
}

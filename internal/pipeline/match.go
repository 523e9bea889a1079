// Package pipeline orchestrates one match request end to end: interpret,
// retrieve, filter, score, judge, rerank, and present.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/seaboard/crewmatch/internal/anonymize"
	"github.com/seaboard/crewmatch/internal/eligibility"
	"github.com/seaboard/crewmatch/internal/interpret"
	"github.com/seaboard/crewmatch/internal/judge"
	"github.com/seaboard/crewmatch/internal/llm"
	"github.com/seaboard/crewmatch/internal/rerank"
	"github.com/seaboard/crewmatch/internal/scoring"
	"github.com/seaboard/crewmatch/internal/store"
	"github.com/seaboard/crewmatch/internal/taxonomy"
	"github.com/seaboard/crewmatch/internal/types"
)

const (
	defaultPoolSize    = 50
	defaultConcurrency = 4
	defaultLimit       = 5
)

// Embedder is the subset of the embedding client the pipeline needs.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Matcher runs the match pipeline. Judge, Reranker, and Presenter are
// optional; a nil stage is skipped with the prior score carried forward.
type Matcher struct {
	Store     store.CandidateStore
	Embedder  Embedder
	LLM       llm.Client
	Judge     judge.Judge
	Reranker  rerank.Reranker
	Presenter *anonymize.Presenter
	Weights   scoring.Weights
	Log       *zap.Logger

	// Concurrency bounds the parallel judgment and presentation calls.
	Concurrency int
	// PoolSize is the retrieval breadth before filtering.
	PoolSize int
}

// Match executes one match request and always returns a well-formed
// response when retrieval succeeds: zero results become fallback mode or
// an explicit no_exact_matches response, never an error.
func (m *Matcher) Match(ctx context.Context, req *types.MatchRequest) (*types.MatchResponse, error) {
	start := time.Now()
	log := m.logger()

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := interpret.Interpret(ctx, m.LLM, req.Query)
	log.Info("interpreted brief",
		zap.String("role", query.PrimaryRole),
		zap.Strings("eligible_roles", query.EligibleRoles),
		zap.Bool("ai_parsed", query.AIParsed != nil))

	retrieved, err := m.retrieve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("candidate retrieval failed: %w", err)
	}

	stats := types.ResultStats{PoolSize: len(retrieved)}

	pool := make([]*types.CandidateProfile, 0, len(retrieved))
	similarity := make(map[string]float64, len(retrieved))
	for _, r := range retrieved {
		pool = append(pool, r.Profile)
		similarity[r.Profile.ID] = r.Similarity
	}

	eligible, decisions := eligibility.Filter(pool, query)
	stats.EligibleCount = len(eligible)
	log.Info("eligibility filter applied",
		zap.Int("pool", len(pool)),
		zap.Int("eligible", len(eligible)))

	scored := m.scoreAll(eligible, query, similarity)

	scored = m.judgeAll(ctx, scored, query, &stats, log)

	scored = m.rerankAll(ctx, scored, query, &stats, log)

	sortByScore(scored)

	fallback := false
	if len(scored) == 0 {
		scored = m.fallbackScore(pool, query, similarity)
		fallback = len(scored) > 0
		stats.FallbackApplied = fallback
		log.Info("fallback scoring applied", zap.Int("surfaced", len(scored)))
	}

	totalFound := len(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	candidates := m.present(ctx, scored, query, req.PreviewMode, log)

	stats.DurationMillis = time.Since(start).Milliseconds()

	resp := &types.MatchResponse{
		Candidates:   candidates,
		TotalMatches: len(candidates),
		TotalFound:   totalFound,
		SearchCriteria: types.SearchCriteria{
			Query: req.Query,
			Role:  query.PrimaryRole,
		},
		SearchQuality:          searchQuality(scored, fallback),
		FallbackMode:           fallback,
		ResultStats:            stats,
		AlternativeSuggestions: alternativeSuggestions(query, decisions, fallback || totalFound == 0),
	}
	if fallback {
		resp.SearchNotes = append(resp.SearchNotes,
			"No candidates met every stated requirement; showing the closest department matches instead.")
	}
	return resp, nil
}

func (m *Matcher) logger() *zap.Logger {
	if m.Log != nil {
		return m.Log
	}
	return zap.NewNop()
}

func (m *Matcher) retrieve(ctx context.Context, q *types.InterpretedQuery) ([]store.Retrieved, error) {
	poolSize := m.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	embedding, err := m.Embedder.Embed(ctx, q.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return m.Store.Search(ctx, embedding, poolSize)
}

// scoreAll runs the deterministic stages: suitability, step-up, structured
// score, and the prior blend. Pure computation, no concurrency needed.
func (m *Matcher) scoreAll(eligible []*types.CandidateProfile, q *types.InterpretedQuery, similarity map[string]float64) []*types.ScoredCandidate {
	scored := make([]*types.ScoredCandidate, 0, len(eligible))
	for _, c := range eligible {
		suitability := scoring.AssessSuitability(c, q)
		stepUp := scoring.AssessStepUp(c, q)
		structured := scoring.ComputeStructuredScore(c, q, stepUp, m.Weights)

		sc := &types.ScoredCandidate{
			Profile:     c,
			Token:       uuid.NewString(),
			Similarity:  similarity[c.ID],
			Suitability: suitability,
			Structured:  structured,
			StepUp:      stepUp,
		}
		sc.FinalScore = scoring.PriorScore(structured, suitability, sc.Similarity, m.Weights)
		scored = append(scored, sc)
	}
	return scored
}

// judgeAll runs bounded-concurrency AI judgments. Per-candidate failures
// keep the prior score; vetoed candidates are dropped.
func (m *Matcher) judgeAll(ctx context.Context, scored []*types.ScoredCandidate, q *types.InterpretedQuery, stats *types.ResultStats, log *zap.Logger) []*types.ScoredCandidate {
	if m.Judge == nil || len(scored) == 0 {
		return scored
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency())

	var mu sync.Mutex
	judged := 0

	for _, sc := range scored {
		sc := sc
		g.Go(func() error {
			judgment, err := m.Judge.Assess(gctx, sc.Profile, q)
			if err != nil {
				log.Warn("judgment failed, keeping prior score",
					zap.String("candidate", sc.Token),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			sc.Judgment = judgment
			judged++
			mu.Unlock()
			return nil
		})
	}
	// Workers only return nil; Wait is for completion.
	_ = g.Wait()

	stats.JudgedCount = judged

	kept := make([]*types.ScoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if scoring.JudgmentVetoes(sc.Judgment) {
			stats.VetoedCount++
			continue
		}
		sc.FinalScore = scoring.ApplyJudgment(sc.FinalScore, sc.Judgment, m.Weights)
		kept = append(kept, sc)
	}
	return kept
}

// rerankAll blends cross-encoder relevance into the scores. Any failure
// leaves the ordering untouched.
func (m *Matcher) rerankAll(ctx context.Context, scored []*types.ScoredCandidate, q *types.InterpretedQuery, stats *types.ResultStats, log *zap.Logger) []*types.ScoredCandidate {
	if m.Reranker == nil || len(scored) == 0 {
		return scored
	}

	docs := make([]rerank.Candidate, 0, len(scored))
	for _, sc := range scored {
		docs = append(docs, rerank.Candidate{
			ID:      sc.Token,
			Content: rerank.BuildDocument(sc.Profile),
		})
	}

	results, err := m.Reranker.Rerank(ctx, q.RawQuery, docs)
	if err != nil {
		log.Warn("rerank failed, keeping existing order", zap.Error(err))
		return scored
	}

	relevance := make(map[string]float64, len(results))
	for _, r := range results {
		relevance[r.ID] = r.Relevance
	}
	for _, sc := range scored {
		if rel, ok := relevance[sc.Token]; ok {
			sc.FinalScore = scoring.ApplyRerank(sc.FinalScore, rel, m.Weights)
			stats.RerankedCount++
		}
	}
	return scored
}

// fallbackScore surfaces department-eligible candidates with a simplified
// score when the full pipeline removed everyone.
func (m *Matcher) fallbackScore(pool []*types.CandidateProfile, q *types.InterpretedQuery, similarity map[string]float64) []*types.ScoredCandidate {
	candidates := eligibility.DepartmentEligible(pool, q)

	var scored []*types.ScoredCandidate
	for _, c := range candidates {
		score := scoring.FallbackScore(c, q)
		if score < m.Weights.FallbackThreshold {
			continue
		}
		scored = append(scored, &types.ScoredCandidate{
			Profile:    c,
			Token:      uuid.NewString(),
			Similarity: similarity[c.ID],
			FinalScore: score / 100,
		})
	}
	sortByScore(scored)
	return scored
}

// present generates and anonymizes the final entries with bounded
// concurrency. Preview mode and presenter failures use the deterministic
// template instead of a model call.
func (m *Matcher) present(ctx context.Context, scored []*types.ScoredCandidate, q *types.InterpretedQuery, preview bool, log *zap.Logger) []types.AnonymizedCandidate {
	if len(scored) == 0 {
		return []types.AnonymizedCandidate{}
	}

	presentations := make([]*types.Presentation, len(scored))

	if preview || m.Presenter == nil {
		for i, sc := range scored {
			presentations[i] = anonymize.TemplatePresentation(sc.Profile, q)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(m.concurrency())
		for i, sc := range scored {
			i, sc := i, sc
			g.Go(func() error {
				p, err := m.Presenter.Generate(gctx, sc.Profile, q)
				if err != nil {
					log.Warn("presentation degraded to template",
						zap.String("candidate", sc.Token),
						zap.Error(err))
				}
				presentations[i] = p
				return nil
			})
		}
		_ = g.Wait()
	}

	out := make([]types.AnonymizedCandidate, 0, len(scored))
	for i, sc := range scored {
		entry := anonymize.Assemble(sc, presentations[i])
		if leaked := anonymize.ValidateAnonymized(&entry, sc.Profile); len(leaked) > 0 {
			log.Warn("anonymization leak detected",
				zap.String("candidate", sc.Token),
				zap.Strings("tokens", leaked))
		}
		out = append(out, entry)
	}
	return out
}

func (m *Matcher) concurrency() int {
	if m.Concurrency > 0 {
		return m.Concurrency
	}
	return defaultConcurrency
}

func sortByScore(scored []*types.ScoredCandidate) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
}

// searchQuality grades the surfaced set by its top score.
func searchQuality(scored []*types.ScoredCandidate, fallback bool) string {
	if len(scored) == 0 {
		return types.QualityNoExactMatches
	}
	if fallback {
		return types.QualityLimited
	}
	top := scored[0].FinalScore
	switch {
	case top >= 0.8:
		return types.QualityExcellent
	case top >= 0.6:
		return types.QualityGood
	default:
		return types.QualityLimited
	}
}

// alternativeSuggestions proposes brief adjustments when results are thin,
// derived from the most common rejection reasons and the role ladder.
func alternativeSuggestions(q *types.InterpretedQuery, decisions map[string]types.EligibilityDecision, thin bool) []string {
	if !thin {
		return nil
	}

	var suggestions []string

	if q.PrimaryRole != types.SentinelRole {
		if stepDown, ok := taxonomy.StepDownRole(q.PrimaryRole); ok {
			suggestions = append(suggestions,
				fmt.Sprintf("Consider experienced %s candidates ready to step up.", stepDown))
		}
	}
	if len(q.RequiredLicenses()) > 0 {
		suggestions = append(suggestions, "Relaxing the license requirement would widen the pool.")
	}
	if q.Requirements.MinExperienceMonths >= 60 {
		suggestions = append(suggestions, "Lowering the minimum experience would widen the pool.")
	}

	rejectedForDept := 0
	for _, d := range decisions {
		if !d.Eligible && d.Reason != "" {
			rejectedForDept++
		}
	}
	if rejectedForDept > 0 && len(suggestions) == 0 {
		suggestions = append(suggestions, "Broadening the role description may surface adjacent candidates.")
	}
	return suggestions
}

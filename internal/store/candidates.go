package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/seaboard/crewmatch/internal/types"
)

// Retrieved is one candidate pulled from storage with its similarity to
// the query embedding.
type Retrieved struct {
	Profile    *types.CandidateProfile
	Similarity float64
}

// CandidateStore retrieves the candidate pool ranked by embedding
// similarity.
type CandidateStore interface {
	Search(ctx context.Context, embedding []float32, limit int) ([]Retrieved, error)
}

// CandidateRepo implements CandidateStore over the shared pool.
type CandidateRepo struct {
	db *DB
}

// NewCandidateRepo creates a repository over the given database.
func NewCandidateRepo(db *DB) *CandidateRepo {
	return &CandidateRepo{db: db}
}

const searchQuery = `
	SELECT id, name, nationality, gender, primary_position, position_category,
	       positions_held, years_experience, profile_summary, bio,
	       availability_status, avatar_url, embedding, profile_json
	FROM candidates
	WHERE embedding IS NOT NULL`

// Search loads all embeddable candidates, ranks them by cosine similarity
// to the query embedding, and returns the top limit rows. The pool is
// small enough that in-process ranking beats maintaining an index.
func (r *CandidateRepo) Search(ctx context.Context, embedding []float32, limit int) ([]Retrieved, error) {
	rows, err := r.db.Pool.Query(ctx, searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var results []Retrieved
	for rows.Next() {
		var (
			c           types.CandidateProfile
			profileJSON []byte
		)
		err := rows.Scan(
			&c.ID, &c.Name, &c.Nationality, &c.Gender, &c.PrimaryPosition,
			&c.PositionCategory, &c.PositionsHeld, &c.YearsExperience,
			&c.ProfileSummary, &c.Bio, &c.AvailabilityStatus, &c.AvatarURL,
			&c.Embedding, &profileJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}

		if len(profileJSON) > 0 {
			if err := unmarshalProfileDetail(profileJSON, &c); err != nil {
				return nil, fmt.Errorf("failed to parse profile detail for %s: %w", c.ID, err)
			}
		}

		results = append(results, Retrieved{
			Profile:    &c,
			Similarity: CosineSimilarity(embedding, c.Embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate rows: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// profileDetail is the nested JSON document carrying the work history and
// credential lists.
type profileDetail struct {
	YachtExperience     []types.YachtExperience     `json:"yacht_experience"`
	HouseholdExperience []types.HouseholdExperience `json:"household_experience"`
	Certifications      []types.Certification       `json:"certifications"`
	Licenses            []types.License             `json:"licenses"`
	Languages           []types.LanguageSkill       `json:"languages"`
	References          []types.Reference           `json:"references"`
}

func unmarshalProfileDetail(data []byte, c *types.CandidateProfile) error {
	var detail profileDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return err
	}
	c.YachtExperience = detail.YachtExperience
	c.HouseholdExperience = detail.HouseholdExperience
	c.Certifications = detail.Certifications
	c.Licenses = detail.Licenses
	c.Languages = detail.Languages
	c.References = detail.References
	return nil
}

// CosineSimilarity returns the cosine similarity of two vectors, or 0 when
// either is empty or their lengths differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

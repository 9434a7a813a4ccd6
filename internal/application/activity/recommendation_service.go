package activity

import (
	"context"
	"math/rand"
	"strings"

	"github.com/wanderplan/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const maxRecommendations = 8

// RecommendationResult is the response for a recommendations request
type RecommendationResult struct {
	Destination string     `json:"destination"`
	Activities  []Activity `json:"activities"`
	Count       int        `json:"count"`
}

// RecommendationService serves curated activity suggestions per
// destination. Resolution order: exact city match, then substring match,
// then a generic category mix.
type RecommendationService struct {
	logger *zap.Logger
	rng    *rand.Rand
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		logger: logger,
		rng:    nil, // nil rng uses the package-level source
	}
}

// Recommend returns up to eight shuffled activities for a destination
func (s *RecommendationService) Recommend(ctx context.Context, destination string) (*RecommendationResult, error) {
	normalized := normalizeDestination(destination)
	if normalized == "" {
		return nil, shared.NewDomainError("DESTINATION_REQUIRED", "Destination is required")
	}

	activities := s.resolve(normalized)
	s.shuffle(activities)
	if len(activities) > maxRecommendations {
		activities = activities[:maxRecommendations]
	}

	return &RecommendationResult{
		Destination: strings.TrimSpace(destination),
		Activities:  activities,
		Count:       len(activities),
	}, nil
}

// normalizeDestination lowercases and keeps only the text before the
// first comma, so "Paris, France" resolves as "paris".
func normalizeDestination(destination string) string {
	normalized := strings.ToLower(strings.TrimSpace(destination))
	if idx := strings.Index(normalized, ","); idx >= 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	return normalized
}

func (s *RecommendationService) resolve(city string) []Activity {
	if curated, ok := cityCatalog[city]; ok {
		return append([]Activity(nil), curated...)
	}

	for name, curated := range cityCatalog {
		if strings.Contains(city, name) || strings.Contains(name, city) {
			return append([]Activity(nil), curated...)
		}
	}

	mix := make([]Activity, 0, maxRecommendations)
	for _, entry := range genericMix {
		pool := genericPool[entry.category]
		picks := s.pick(pool, entry.count)
		mix = append(mix, picks...)
	}
	return mix
}

// pick samples up to n distinct activities from a pool
func (s *RecommendationService) pick(pool []Activity, n int) []Activity {
	if n > len(pool) {
		n = len(pool)
	}
	indices := s.perm(len(pool))
	picks := make([]Activity, 0, n)
	for _, idx := range indices[:n] {
		picks = append(picks, pool[idx])
	}
	return picks
}

func (s *RecommendationService) shuffle(activities []Activity) {
	swap := func(i, j int) { activities[i], activities[j] = activities[j], activities[i] }
	if s.rng != nil {
		s.rng.Shuffle(len(activities), swap)
		return
	}
	rand.Shuffle(len(activities), swap)
}

func (s *RecommendationService) perm(n int) []int {
	if s.rng != nil {
		return s.rng.Perm(n)
	}
	return rand.Perm(n)
}

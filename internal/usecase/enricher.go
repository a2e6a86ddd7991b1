package usecase

import (
	"context"

	"github.com/dokopoo/toilet-service/internal/domain"
)

// CandidateEnricher defines the interface for candidate address enrichment
type CandidateEnricher interface {
	EnrichCandidates(ctx context.Context, candidates []*domain.Candidate) []*domain.Candidate
}

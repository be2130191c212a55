package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"pokevault/internal/catalog"
	apperrors "pokevault/internal/errors"
	"pokevault/internal/logger"
)

const (
	// maxDetailResolve caps how many references an ability/type hit expands
	// into full records.
	maxDetailResolve = 50
	// detailConcurrency bounds the parallel detail fetches.
	detailConcurrency = 10
)

// CatalogAPI is the subset of the catalog client the services need.
type CatalogAPI interface {
	Pokemon(ctx context.Context, key string) (*catalog.Pokemon, error)
	PokemonByAbility(ctx context.Context, ability string) ([]string, error)
	PokemonByType(ctx context.Context, typeName string) ([]string, error)
}

// SearchService resolves a free-text query against the catalog by trying
// exact lookup, then ability lookup, then type lookup. The first strategy
// that produces results wins; results are never merged across strategies.
type SearchService interface {
	Resolve(ctx context.Context, query string) ([]catalog.Pokemon, error)
}

type searchService struct {
	catalog CatalogAPI
}

// NewSearchService creates a new search service.
func NewSearchService(catalogClient CatalogAPI) SearchService {
	return &searchService{catalog: catalogClient}
}

// Resolve runs the strategy cascade. A strategy that misses (or whose lookup
// fails upstream) falls through to the next; that fall-through is expected
// control flow and is logged at debug only. If an ability or type hit cannot
// have all of its details resolved, the whole resolve fails rather than
// returning a partial list.
func (s *searchService) Resolve(ctx context.Context, query string) ([]catalog.Pokemon, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	if pokemon, err := s.catalog.Pokemon(ctx, query); err == nil {
		return []catalog.Pokemon{*pokemon}, nil
	} else {
		logger.Log.Debugw("exact lookup missed", "query", query, "err", err)
	}

	if names, err := s.catalog.PokemonByAbility(ctx, query); err == nil && len(names) > 0 {
		return s.resolveDetails(ctx, names)
	} else if err != nil {
		logger.Log.Debugw("ability lookup missed", "query", query, "err", err)
	}

	if names, err := s.catalog.PokemonByType(ctx, query); err == nil && len(names) > 0 {
		return s.resolveDetails(ctx, names)
	} else if err != nil {
		logger.Log.Debugw("type lookup missed", "query", query, "err", err)
	}

	return nil, &apperrors.NoResultsError{Query: query}
}

// resolveDetails fetches full records for the first maxDetailResolve
// references concurrently. The first failure cancels the remaining fetches
// and fails the resolution.
func (s *searchService) resolveDetails(ctx context.Context, names []string) ([]catalog.Pokemon, error) {
	if len(names) > maxDetailResolve {
		names = names[:maxDetailResolve]
	}

	results := make([]catalog.Pokemon, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			pokemon, err := s.catalog.Pokemon(ctx, name)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", name, err)
			}
			results[i] = *pokemon
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	return results, nil
}

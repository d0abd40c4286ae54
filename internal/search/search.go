// Package search implements the provider search and trust-ranking engine:
// filtering, sorting and pagination over a provider snapshot, ranked by the
// verification/badge/vouch trust model under the default sort. The whole
// pipeline is pure and synchronous; the only I/O is the snapshot fetch at
// the orchestrator boundary.
package search

import (
	"context"

	"github.com/arcuspath/backend/model"
)

// ProviderSource is the read contract the engine needs from the record
// store. Only committed, active providers should be returned.
type ProviderSource interface {
	FindAllActive(ctx context.Context) ([]model.Provider, error)
}

type Service struct {
	providers ProviderSource
}

func NewService(providers ProviderSource) *Service {
	return &Service{providers: providers}
}

type Result struct {
	Providers []model.Provider
	Total     int
	Page      int
	PageSize  int
	HasMore   bool
}

// SearchProviders is the composed entry point: snapshot fetch, active-status
// baseline, filter, sort, paginate. Every call is independent given the same
// backing dataset; nothing here mutates shared state.
func (s *Service) SearchProviders(ctx context.Context, f Filters, opt SortOption, page, pageSize int) (*Result, error) {
	snapshot, err := s.providers.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Apply(snapshot, f)
	ordered := Sort(filtered, opt)
	pg := Paginate(ordered, page, pageSize)

	return &Result{
		Providers: pg.Items,
		Total:     pg.Total,
		Page:      pg.Page,
		PageSize:  pg.PageSize,
		HasMore:   pg.HasMore,
	}, nil
}

package catalog

import (
	"context"
	"log/slog"

	"artpiece/internal/domain"
)

// Service lists catalog titles.
type Service struct {
	client domain.CatalogClient
	log    *slog.Logger
}

// New returns a Service reading from client.
func New(client domain.CatalogClient, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{client: client, log: log}
}

// Titles fetches the catalog once and returns the item ids in catalog order.
// A failed fetch is logged and yields an empty, non-nil list together with
// the error, so callers can render an empty screen and still report why.
func (s *Service) Titles(ctx context.Context) ([]domain.ItemID, error) {
	items, err := s.client.FetchItems(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog fetch failed", slog.Any("error", err))
		return []domain.ItemID{}, err
	}
	ids := make([]domain.ItemID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID())
	}
	s.log.DebugContext(ctx, "catalog fetched", slog.Int("items", len(ids)))
	return ids, nil
}

// Compile-time assertion that Service implements domain.CatalogService.
var _ domain.CatalogService = (*Service)(nil)

package stats

import "context"

type Service interface {
	// GetStats returns the aggregate snapshot, served from cache within
	// the freshness window.
	GetStats(ctx context.Context) (*Stats, error)
}

package stats

import (
	"context"
	"time"
)

// Counts carries the raw aggregates the snapshot is built from.
type Counts struct {
	Projects         int
	FeaturedProjects int
	Skills           int
	Experiences      int
	Education        int
	UnreadMessages   int
	EarliestStart    time.Time
}

type Repository interface {
	GetCounts(ctx context.Context) (*Counts, error)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/stats"
	"portfolio-backend/pkg/cache"
)

type fakeCountsRepo struct {
	counts stats.Counts
	calls  int
}

func (f *fakeCountsRepo) GetCounts(ctx context.Context) (*stats.Counts, error) {
	f.calls++
	c := f.counts
	return &c, nil
}

func TestGetStatsComputesSnapshot(t *testing.T) {
	repo := &fakeCountsRepo{counts: stats.Counts{
		Projects:         12,
		FeaturedProjects: 3,
		Skills:           20,
		Experiences:      4,
		Education:        2,
		UnreadMessages:   5,
		EarliestStart:    time.Now().AddDate(-6, -2, 0),
	}}
	svc := NewStatsService(repo, cache.NewMemoryCache(time.Minute), time.Minute)

	got, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, got.TotalProjects)
	assert.Equal(t, 3, got.FeaturedProjects)
	assert.Equal(t, 20, got.TotalSkills)
	assert.Equal(t, 5, got.UnreadMessages)
	assert.Equal(t, 6, got.YearsOfExperience)
}

func TestGetStatsServesFromCacheWithinWindow(t *testing.T) {
	repo := &fakeCountsRepo{counts: stats.Counts{Projects: 1}}
	svc := NewStatsService(repo, cache.NewMemoryCache(time.Minute), time.Minute)

	_, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	repo.counts.Projects = 99
	got, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalProjects, "second read must come from cache")
	assert.Equal(t, 1, repo.calls)
}

func TestGetStatsRecomputesAfterExpiry(t *testing.T) {
	repo := &fakeCountsRepo{counts: stats.Counts{Projects: 1}}
	svc := NewStatsService(repo, cache.NewMemoryCache(time.Minute), 10*time.Millisecond)

	_, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	repo.counts.Projects = 2
	got, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalProjects)
	assert.Equal(t, 2, repo.calls)
}

func TestGetStatsWorksWithoutCache(t *testing.T) {
	repo := &fakeCountsRepo{counts: stats.Counts{Skills: 5}}
	svc := NewStatsService(repo, nil, time.Minute)

	got, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalSkills)
}

func TestYearsSince(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, stats.YearsSince(time.Time{}, now))
	assert.Equal(t, 0, stats.YearsSince(now.AddDate(1, 0, 0), now))
	assert.Equal(t, 4, stats.YearsSince(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

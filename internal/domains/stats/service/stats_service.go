package service

import (
	"context"
	"time"

	"portfolio-backend/internal/domains/stats"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const cacheKey = "portfolio:stats"

type statsService struct {
	repo     stats.Repository
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewStatsService(repo stats.Repository, c cache.Cache, ttl time.Duration) stats.Service {
	return &statsService{repo: repo, cache: c, cacheTTL: ttl, now: time.Now}
}

func (s *statsService) GetStats(ctx context.Context) (*stats.Stats, error) {
	if s.cache != nil {
		var cached stats.Stats
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		} else if err != nil {
			logger.Warn("stats cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	counts, err := s.repo.GetCounts(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &stats.Stats{
		TotalProjects:     counts.Projects,
		FeaturedProjects:  counts.FeaturedProjects,
		TotalSkills:       counts.Skills,
		TotalExperiences:  counts.Experiences,
		TotalEducation:    counts.Education,
		UnreadMessages:    counts.UnreadMessages,
		YearsOfExperience: stats.YearsSince(counts.EarliestStart, s.now()),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, snapshot, s.cacheTTL); err != nil {
			logger.Warn("stats cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return snapshot, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/pkg/cache"
)

type fakeRepo struct {
	active *profile.Profile
	calls  int
}

func (f *fakeRepo) GetActive(ctx context.Context) (*profile.Profile, error) {
	f.calls++
	return f.active, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	if f.active != nil {
		return nil, profile.ErrAlreadyExists
	}
	stored := *p
	stored.ID = uuid.New()
	f.active = &stored
	return &stored, nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, p *profile.Profile) (*profile.Profile, error) {
	if f.active == nil || f.active.ID != id {
		return nil, profile.ErrNotFound
	}
	updated := *p
	updated.ID = id
	f.active = &updated
	return &updated, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.active == nil || f.active.ID != id {
		return profile.ErrNotFound
	}
	f.active = nil
	return nil
}

func validRequest() *profile.UpsertRequest {
	return &profile.UpsertRequest{
		Name:     "Ada Lovelace",
		Title:    "Software Engineer",
		Bio:      "I write programs.",
		Email:    "ada@example.com",
		Location: "London",
	}
}

func TestGetProfileCachesWithinWindow(t *testing.T) {
	repo := &fakeRepo{active: &profile.Profile{
		ID:       uuid.New(),
		Name:     "Ada Lovelace",
		Title:    "Software Engineer",
		Bio:      "I write programs.",
		Email:    "ada@example.com",
		Location: "London",
	}}
	svc := NewProfileService(repo, cache.NewMemoryCache(time.Minute), time.Minute, nil)
	ctx := context.Background()

	first, err := svc.GetProfile(ctx)
	require.NoError(t, err)

	repo.active.Name = "Changed"
	second, err := svc.GetProfile(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name, "second read must come from cache")
	assert.Equal(t, 1, repo.calls)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewProfileService(&fakeRepo{}, nil, time.Minute, nil)

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestCreateProfileSecondCreateConflicts(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewProfileService(repo, nil, time.Minute, nil)
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.CreateProfile(ctx, validRequest())
	require.Error(t, err)
	assert.Equal(t, 409, apperror.From(err).Status)
}

func TestCreateProfileCollectsMissingFields(t *testing.T) {
	svc := NewProfileService(&fakeRepo{}, nil, time.Minute, nil)

	_, err := svc.CreateProfile(context.Background(), &profile.UpsertRequest{Name: "Ada"})

	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, 400, appErr.Status)
	assert.ElementsMatch(t, []string{"title", "bio", "email", "location"}, appErr.Fields)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/pkg/cache"
)

type fakeRepo struct {
	projects []*project.Project
	calls    int
}

func (f *fakeRepo) List(ctx context.Context, filter project.Filter) ([]*project.Project, error) {
	f.calls++
	return f.projects, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	for _, existing := range f.projects {
		if existing.Slug == p.Slug {
			return nil, project.ErrSlugTaken
		}
	}
	stored := *p
	stored.ID = uuid.New()
	f.projects = append(f.projects, &stored)
	return &stored, nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, p *project.Project) (*project.Project, error) {
	for i, existing := range f.projects {
		if existing.ID == id {
			stored := *p
			stored.ID = id
			f.projects[i] = &stored
			return &stored, nil
		}
	}
	return nil, project.ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return project.ErrNotFound
}

func validRequest(title string) *project.UpsertRequest {
	return &project.UpsertRequest{
		Title:       title,
		Description: "A thing that does things",
		Category:    project.CategoryWeb,
		Status:      project.StatusCompleted,
	}
}

func TestCreateProjectDerivesSlug(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewProjectService(repo, nil, nil, time.Minute)

	resp, err := svc.CreateProject(context.Background(), validRequest("My Chat Server"))
	require.NoError(t, err)
	assert.Equal(t, "my-chat-server", resp.Slug)
}

func TestCreateProjectDuplicateTitleConflicts(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewProjectService(repo, nil, nil, time.Minute)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, validRequest("Portfolio Site"))
	require.NoError(t, err)

	_, err = svc.CreateProject(ctx, validRequest("Portfolio Site"))
	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "PROJECT_SLUG_TAKEN", appErr.Code)
	assert.Len(t, repo.projects, 1)
}

func TestUpdateProjectKeepsSlugOnRetitle(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewProjectService(repo, nil, nil, time.Minute)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, validRequest("My First Project"))
	require.NoError(t, err)
	require.Equal(t, "my-first-project", created.Slug)

	updated, err := svc.UpdateProject(ctx, created.ID, validRequest("My Renamed Project"))
	require.NoError(t, err)
	assert.Equal(t, "My Renamed Project", updated.Title)
	assert.Equal(t, "my-first-project", updated.Slug, "published URLs must keep working after a retitle")
}

func TestUpdateProjectUnknownIDReturns404(t *testing.T) {
	svc := NewProjectService(&fakeRepo{}, nil, nil, time.Minute)

	_, err := svc.UpdateProject(context.Background(), uuid.New(), validRequest("Ghost"))
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
}

func TestCreateProjectRejectsInvalid(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewProjectService(repo, nil, nil, time.Minute)

	_, err := svc.CreateProject(context.Background(), &project.UpsertRequest{
		Category: "game",
		Status:   "abandoned",
	})

	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, 400, appErr.Status)
	assert.ElementsMatch(t,
		[]string{"title", "description", "category", "status"},
		appErr.Fields)
	assert.Empty(t, repo.projects)
}

func TestListProjectsCachesPerFilter(t *testing.T) {
	repo := &fakeRepo{projects: []*project.Project{
		{ID: uuid.New(), Title: "X", Slug: "x", Category: project.CategoryAPI, Status: project.StatusCompleted},
	}}
	svc := NewProjectService(repo, cache.NewMemoryCache(time.Minute), nil, time.Minute)
	ctx := context.Background()

	_, err := svc.ListProjects(ctx, project.Filter{})
	require.NoError(t, err)

	// Same filter hits the cache.
	_, err = svc.ListProjects(ctx, project.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	// A different filter identity misses it.
	_, err = svc.ListProjects(ctx, project.Filter{Status: project.StatusArchived})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestGetProjectBySlugNotFound(t *testing.T) {
	svc := NewProjectService(&fakeRepo{}, nil, nil, time.Minute)

	_, err := svc.GetProjectBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
}

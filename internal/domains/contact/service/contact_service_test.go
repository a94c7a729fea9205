package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/apperror"
)

type fakeRepo struct {
	messages []*contact.Message
	failWith error
}

func (f *fakeRepo) Create(ctx context.Context, m *contact.Message) (*contact.Message, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	stored := *m
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	f.messages = append(f.messages, &stored)
	return &stored, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*contact.Message, error) {
	return f.messages, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			m.IsRead = true
			return m, nil
		}
	}
	return nil, contact.ErrNotFound
}

func (f *fakeRepo) MarkReplied(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			m.IsRead = true
			m.IsReplied = true
			return m, nil
		}
	}
	return nil, contact.ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return contact.ErrNotFound
}

func (f *fakeRepo) CountUnread(ctx context.Context) (int, error) {
	n := 0
	for _, m := range f.messages {
		if !m.IsRead {
			n++
		}
	}
	return n, nil
}

type fakeNotifier struct {
	payloads []shared.ContactNotifyPayload
	failWith error
}

func (f *fakeNotifier) NotifyContactMessage(ctx context.Context, p shared.ContactNotifyPayload) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.payloads = append(f.payloads, p)
	return nil
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := NewContactService(repo, notifier)

	resp, err := svc.Submit(context.Background(), &contact.SubmitRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.Len(t, repo.messages, 1)
	assert.Equal(t, contact.DefaultSubject, repo.messages[0].Subject)
	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, resp.ID.String(), notifier.payloads[0].MessageID)
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{failWith: errors.New("redis down")}
	svc := NewContactService(repo, notifier)

	resp, err := svc.Submit(context.Background(), &contact.SubmitRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Len(t, repo.messages, 1)
}

func TestSubmitCollectsAllMissingFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContactService(repo, &fakeNotifier{})

	_, err := svc.Submit(context.Background(), &contact.SubmitRequest{Subject: "Hi"})

	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, 400, appErr.Status)
	assert.ElementsMatch(t, []string{"name", "email", "message"}, appErr.Fields)
	assert.Empty(t, repo.messages, "invalid submission must not be stored")
}

func TestSubmitValidatesBeforePersisting(t *testing.T) {
	repo := &fakeRepo{failWith: errors.New("should not be called")}
	svc := NewContactService(repo, &fakeNotifier{})

	_, err := svc.Submit(context.Background(), &contact.SubmitRequest{Email: "ada@example.com"})

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"name", "message"}, apperror.From(err).Fields)
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContactService(repo, &fakeNotifier{})

	_, err := svc.Submit(context.Background(), &contact.SubmitRequest{
		Name:    "Ada",
		Email:   "not-an-email",
		Message: "Hello",
	})

	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, []string{"email"}, appErr.Fields)
	assert.Empty(t, repo.messages)
}

func TestMarkRepliedImpliesRead(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContactService(repo, &fakeNotifier{})

	resp, err := svc.Submit(context.Background(), &contact.SubmitRequest{
		Name: "Ada", Email: "ada@example.com", Message: "Hi",
	})
	require.NoError(t, err)

	updated, err := svc.MarkReplied(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsReplied)
	assert.True(t, updated.IsRead)
}

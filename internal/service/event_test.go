package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"afisha/internal/domain"
	"afisha/internal/service/ports/mocks"
)

type eventServiceMocks struct {
	repo        *mocks.MockEventRepo
	requestRepo *mocks.MockRequestRepo
	userRepo    *mocks.MockUserRepo
	views       *mocks.MockViewCounter
}

func newEventService(t *testing.T) (*EventService, eventServiceMocks) {
	t.Helper()
	m := eventServiceMocks{
		repo:        mocks.NewMockEventRepo(t),
		requestRepo: mocks.NewMockRequestRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		views:       mocks.NewMockViewCounter(t),
	}
	svc := NewEventService(m.repo, m.requestRepo, m.userRepo, m.views, newTestLogger(t))
	return svc, m
}

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		InitiatorID:      "org",
		Title:            "Concert",
		Description:      "Live show",
		EventDate:        time.Now().Add(24 * time.Hour),
		ParticipantLimit: 100,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, m := newEventService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePending, event.State)
	assert.True(t, event.RequestModeration) // модерация включена по умолчанию
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_ModerationDisabled(t *testing.T) {
	svc, m := newEventService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	moderation := false
	input := validEventInput()
	input.RequestModeration = &moderation

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.False(t, event.RequestModeration)
}

func TestEventService_Create_Validation(t *testing.T) {
	svc, _ := newEventService(t)

	tests := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"empty title", func(in *domain.CreateEventInput) { in.Title = "" }},
		{"negative limit", func(in *domain.CreateEventInput) { in.ParticipantLimit = -1 }},
		{"past date", func(in *domain.CreateEventInput) { in.EventDate = time.Now().Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validEventInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_InitiatorNotFound(t *testing.T) {
	svc, m := newEventService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), validEventInput())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEventService_Publish_Success(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: "e1", InitiatorID: "org", State: domain.EventStatePending}

	m.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.repo.EXPECT().UpdateState(mock.Anything, "e1", domain.EventStatePublished).Return(nil)

	published, err := svc.Publish(context.Background(), "org", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatePublished, published.State)
}

func TestEventService_Publish_NotInitiator(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: "e1", InitiatorID: "org", State: domain.EventStatePending}

	m.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Publish(context.Background(), "intruder", "e1")

	assert.ErrorIs(t, err, domain.ErrNotEventInitiator)
}

func TestEventService_Publish_AlreadyPublished(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: "e1", InitiatorID: "org", State: domain.EventStatePublished}

	m.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Publish(context.Background(), "org", "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotPending)
}

func TestEventService_GetDetails_Success(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: "e1", InitiatorID: "org", State: domain.EventStatePublished, ParticipantLimit: 10}

	m.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(3, nil)
	m.views.EXPECT().Hit(mock.Anything, "e1", "1.2.3.4").Return(nil)
	m.views.EXPECT().Views(mock.Anything, "e1").Return(42, nil)

	details, err := svc.GetDetails(context.Background(), "e1", "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, 3, details.ConfirmedCount)
	assert.Equal(t, 7, details.AvailableSpots)
	assert.Equal(t, int64(42), details.Views)
}

func TestEventService_GetDetails_UnlimitedSpots(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: "e1", InitiatorID: "org", State: domain.EventStatePublished, ParticipantLimit: 0}

	m.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(100, nil)
	m.views.EXPECT().Hit(mock.Anything, "e1", "1.2.3.4").Return(nil)
	m.views.EXPECT().Views(mock.Anything, "e1").Return(0, nil)

	details, err := svc.GetDetails(context.Background(), "e1", "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, -1, details.AvailableSpots)
}

func TestEventService_GetDetails_StatsFailureNotFatal(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: "e1", InitiatorID: "org", State: domain.EventStatePublished, ParticipantLimit: 10}

	m.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(0, nil)
	m.views.EXPECT().Hit(mock.Anything, "e1", "1.2.3.4").Return(errors.New("stats down"))
	m.views.EXPECT().Views(mock.Anything, "e1").Return(0, errors.New("stats down"))

	details, err := svc.GetDetails(context.Background(), "e1", "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, int64(0), details.Views)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	svc, m := newEventService(t)

	m.repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing", "1.2.3.4")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

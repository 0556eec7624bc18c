package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"afisha/internal/domain"
	"afisha/internal/service/ports"
)

type EventService struct {
	repo        ports.EventRepo
	requestRepo ports.RequestRepo
	userRepo    ports.UserRepo
	views       ports.ViewCounter
	logger      logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	requestRepo ports.RequestRepo,
	userRepo ports.UserRepo,
	views ports.ViewCounter,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:        repo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		views:       views,
		logger:      logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.ParticipantLimit < 0 {
		return nil, fmt.Errorf("%w: participant_limit must be non-negative", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, input.InitiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	moderation := true
	if input.RequestModeration != nil {
		moderation = *input.RequestModeration
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                uuid.New().String(),
		InitiatorID:       input.InitiatorID,
		Title:             input.Title,
		Description:       input.Description,
		EventDate:         input.EventDate,
		State:             domain.EventStatePending,
		ParticipantLimit:  input.ParticipantLimit,
		RequestModeration: moderation,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// Publish открывает событие для заявок. Доступно только инициатору и
// только из состояния pending.
func (s *EventService) Publish(ctx context.Context, initiatorID, eventID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.InitiatorID != initiatorID {
		return nil, domain.ErrNotEventInitiator
	}
	if event.State != domain.EventStatePending {
		return nil, domain.ErrEventNotPending
	}

	if err = s.repo.UpdateState(ctx, eventID, domain.EventStatePublished); err != nil {
		return nil, fmt.Errorf("publish event: %w", err)
	}
	event.State = domain.EventStatePublished

	s.logger.Info("event published",
		logger.String("event_id", eventID),
		logger.String("initiator_id", initiatorID),
	)

	return event, nil
}

// GetDetails возвращает событие с числом подтверждённых заявок и просмотрами.
// Просмотр фиксируется хитом; ошибки статистики не фатальны.
func (s *EventService) GetDetails(ctx context.Context, eventID, ip string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	confirmed, err := s.requestRepo.CountByEventAndStatus(ctx, eventID, domain.RequestStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}

	if err = s.views.Hit(ctx, eventID, ip); err != nil {
		s.logger.Warn("failed to record view hit",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}

	views, err := s.views.Views(ctx, eventID)
	if err != nil {
		s.logger.Warn("failed to get views",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		views = 0
	}

	available := -1
	if !event.Unlimited() {
		available = event.ParticipantLimit - confirmed
	}

	return &domain.EventDetails{
		Event:          *event,
		ConfirmedCount: confirmed,
		AvailableSpots: available,
		Views:          views,
	}, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

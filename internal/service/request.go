package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"afisha/internal/domain"
	"afisha/internal/service/ports"
)

type RequestService struct {
	requestRepo ports.RequestRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	notifier    ports.RequestNotifier
	logger      logger.Logger

	// eventLocks сериализует последовательность "прочитать счётчик — записать
	// переход" в рамках одного события. Разные события не блокируют друг друга.
	eventLocks sync.Map // eventID -> *sync.Mutex
}

func NewRequestService(
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.RequestNotifier,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *RequestService) lockEvent(eventID string) func() {
	v, _ := s.eventLocks.LoadOrStore(eventID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Submit создаёт заявку на участие. При нулевом лимите заявка подтверждается
// сразу, иначе создаётся в статусе pending.
func (s *RequestService) Submit(ctx context.Context, requesterID, eventID string) (*domain.Request, error) {
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if event.InitiatorID == requesterID {
		return nil, domain.ErrOwnEvent
	}
	if event.State != domain.EventStatePublished {
		return nil, domain.ErrEventNotPublished
	}

	unlock := s.lockEvent(eventID)
	defer unlock()

	exists, err := s.requestRepo.HasNonCanceled(ctx, requesterID, eventID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateRequest
	}

	if !event.Unlimited() {
		taken, err := s.activeCount(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if taken >= event.ParticipantLimit {
			return nil, domain.ErrLimitReached
		}
	}

	status := domain.RequestStatusPending
	if event.Unlimited() {
		status = domain.RequestStatusConfirmed
	}

	now := time.Now().UTC()
	request := &domain.Request{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("request created",
		logger.String("request_id", request.ID),
		logger.String("event_id", eventID),
		logger.String("requester_id", requesterID),
		logger.String("status", string(status)),
	)

	if status == domain.RequestStatusConfirmed {
		go s.notifier.NotifyRequestConfirmed(context.WithoutCancel(ctx), user, event)
	} else {
		go s.notifier.NotifyRequestCreated(context.WithoutCancel(ctx), user, event)
	}

	return request, nil
}

// activeCount: занятые места считаются по заявкам pending+confirmed.
func (s *RequestService) activeCount(ctx context.Context, eventID string) (int, error) {
	total := 0
	for _, st := range domain.ActiveStatuses {
		n, err := s.requestRepo.CountByEventAndStatus(ctx, eventID, st)
		if err != nil {
			return 0, fmt.Errorf("count %s requests: %w", st, err)
		}
		total += n
	}
	return total, nil
}

func (s *RequestService) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.requestRepo.ListByRequester(ctx, requesterID)
}

// ListForEvent возвращает заявки на событие; доступно только инициатору.
func (s *RequestService) ListForEvent(ctx context.Context, initiatorID, eventID string) ([]*domain.Request, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.InitiatorID != initiatorID {
		return nil, domain.ErrNotEventInitiator
	}

	return s.requestRepo.ListByEvent(ctx, eventID)
}

// Resolve обрабатывает решение организатора по pending-заявкам события.
//
// Без списка ids целью становятся все pending-заявки события в порядке подачи.
// Явные ids перечитываются по одному; уже обработанные или несуществующие
// молча пропускаются. Подтверждение останавливается, как только лимит
// исчерпан: оставшиеся заявки не трогаются, возвращается частичный результат.
func (s *RequestService) Resolve(
	ctx context.Context,
	initiatorID, eventID string,
	target domain.RequestStatus,
	requestIDs []string,
) ([]*domain.Request, error) {
	if !target.ResolveTarget() {
		return nil, fmt.Errorf("%w: target status must be confirmed or rejected", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.InitiatorID != initiatorID {
		return nil, domain.ErrNotEventInitiator
	}
	if !event.Moderated() {
		return nil, domain.ErrModerationNotNeeded
	}

	unlock := s.lockEvent(eventID)
	defer unlock()

	confirmed, err := s.requestRepo.CountByEventAndStatus(ctx, eventID, domain.RequestStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}

	// Лимит уже исчерпан до начала обработки — отказ всему батчу.
	if target == domain.RequestStatusConfirmed && confirmed >= event.ParticipantLimit {
		return nil, domain.ErrLimitReached
	}

	targets, err := s.resolveTargets(ctx, eventID, requestIDs)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		if target == domain.RequestStatusConfirmed {
			return nil, domain.ErrNothingToConfirm
		}
		return nil, domain.ErrNothingToReject
	}

	now := time.Now().UTC()
	changed := make([]*domain.Request, 0, len(targets))
	for _, r := range targets {
		if target == domain.RequestStatusConfirmed {
			if confirmed >= event.ParticipantLimit {
				break // soft-stop: остальные заявки остаются pending
			}
			confirmed++
		}
		r.Status = target
		r.UpdatedAt = now
		changed = append(changed, r)
	}

	if err = s.requestRepo.SaveAll(ctx, changed); err != nil {
		return nil, fmt.Errorf("save requests: %w", err)
	}

	s.logger.Info("requests resolved",
		logger.String("event_id", eventID),
		logger.String("target", string(target)),
		logger.Int("requested", len(targets)),
		logger.Int("changed", len(changed)),
	)

	go s.notifyResolved(context.WithoutCancel(ctx), event, changed)

	return changed, nil
}

func (s *RequestService) resolveTargets(ctx context.Context, eventID string, requestIDs []string) ([]*domain.Request, error) {
	if len(requestIDs) == 0 {
		targets, err := s.requestRepo.ListPendingByEvent(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("list pending requests: %w", err)
		}
		return targets, nil
	}

	targets := make([]*domain.Request, 0, len(requestIDs))
	for _, id := range requestIDs {
		r, err := s.requestRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrRequestNotFound) {
				continue
			}
			return nil, fmt.Errorf("get request: %w", err)
		}
		if r.Status != domain.RequestStatusPending || r.EventID != eventID {
			continue
		}
		targets = append(targets, r)
	}
	return targets, nil
}

func (s *RequestService) notifyResolved(ctx context.Context, event *domain.Event, requests []*domain.Request) {
	for _, r := range requests {
		user, err := s.userRepo.GetByID(ctx, r.RequesterID)
		if err != nil {
			s.logger.Error("failed to get user for resolve notification",
				logger.String("user_id", r.RequesterID),
			)
			continue
		}
		if r.Status == domain.RequestStatusConfirmed {
			s.notifier.NotifyRequestConfirmed(ctx, user, event)
		} else {
			s.notifier.NotifyRequestRejected(ctx, user, event)
		}
	}
}

// Cancel переводит собственную заявку пользователя в статус canceled.
func (s *RequestService) Cancel(ctx context.Context, requesterID, requestID string) (*domain.Request, error) {
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	if err = request.Cancelable(requesterID); err != nil {
		return nil, err
	}

	request.Status = domain.RequestStatusCanceled
	request.UpdatedAt = time.Now().UTC()
	if err = s.requestRepo.Save(ctx, request); err != nil {
		return nil, fmt.Errorf("save request: %w", err)
	}

	s.logger.Info("request canceled",
		logger.String("request_id", request.ID),
		logger.String("event_id", request.EventID),
		logger.String("requester_id", requesterID),
	)

	if event, err := s.eventRepo.GetByID(ctx, request.EventID); err == nil {
		go s.notifier.NotifyRequestCanceled(context.WithoutCancel(ctx), user, event)
	}

	return request, nil
}

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

type CompilationService struct {
	repo        ports.CompilationRepo
	eventRepo   ports.EventRepo
	requestRepo ports.RequestRepo
	views       ports.ViewCounter
	logger      logger.Logger
}

func NewCompilationService(
	repo ports.CompilationRepo,
	eventRepo ports.EventRepo,
	requestRepo ports.RequestRepo,
	views ports.ViewCounter,
	logger logger.Logger,
) *CompilationService {
	return &CompilationService{
		repo:        repo,
		eventRepo:   eventRepo,
		requestRepo: requestRepo,
		views:       views,
		logger:      logger,
	}
}

func (s *CompilationService) Create(ctx context.Context, input domain.NewCompilationInput) (*domain.CompilationDetails, error) {
	if err := validateCompilationTitle(input.Title); err != nil {
		return nil, err
	}

	if err := s.checkEventsExist(ctx, input.EventIDs); err != nil {
		return nil, err
	}

	pinned := false
	if input.Pinned != nil {
		pinned = *input.Pinned
	}

	now := time.Now().UTC()
	compilation := &domain.Compilation{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Pinned:    pinned,
		EventIDs:  input.EventIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, compilation); err != nil {
		return nil, fmt.Errorf("create compilation: %w", err)
	}

	return s.withStats(ctx, compilation)
}

func (s *CompilationService) Update(ctx context.Context, id string, input domain.UpdateCompilationInput) (*domain.CompilationDetails, error) {
	compilation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get compilation: %w", err)
	}

	if input.Title != nil {
		if err = validateCompilationTitle(*input.Title); err != nil {
			return nil, err
		}
		compilation.Title = *input.Title
	}
	if input.Pinned != nil {
		compilation.Pinned = *input.Pinned
	}
	if input.EventIDs != nil {
		if err = s.checkEventsExist(ctx, *input.EventIDs); err != nil {
			return nil, err
		}
		compilation.EventIDs = *input.EventIDs
	}
	compilation.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, compilation); err != nil {
		return nil, fmt.Errorf("update compilation: %w", err)
	}

	return s.withStats(ctx, compilation)
}

func (s *CompilationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get compilation: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete compilation: %w", err)
	}

	s.logger.Info("compilation deleted", logger.String("compilation_id", id))
	return nil
}

func (s *CompilationService) GetByID(ctx context.Context, id string) (*domain.CompilationDetails, error) {
	compilation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get compilation: %w", err)
	}
	return s.withStats(ctx, compilation)
}

func (s *CompilationService) List(ctx context.Context, pinned *bool, from, size int) ([]*domain.CompilationDetails, error) {
	if from < 0 || size <= 0 {
		return nil, fmt.Errorf("%w: invalid pagination parameters", domain.ErrValidation)
	}

	compilations, err := s.repo.List(ctx, pinned, from, size)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}

	res := make([]*domain.CompilationDetails, 0, len(compilations))
	for _, c := range compilations {
		details, err := s.withStats(ctx, c)
		if err != nil {
			return nil, err
		}
		res = append(res, details)
	}
	return res, nil
}

// withStats дополняет события подборки числом подтверждённых заявок и просмотрами.
func (s *CompilationService) withStats(ctx context.Context, c *domain.Compilation) (*domain.CompilationDetails, error) {
	details := &domain.CompilationDetails{
		Compilation: *c,
		Events:      []domain.EventWithStats{},
	}
	if len(c.EventIDs) == 0 {
		return details, nil
	}

	events, err := s.eventRepo.GetByIDs(ctx, c.EventIDs)
	if err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}

	for _, e := range events {
		confirmed, err := s.requestRepo.CountByEventAndStatus(ctx, e.ID, domain.RequestStatusConfirmed)
		if err != nil {
			return nil, fmt.Errorf("count confirmed: %w", err)
		}

		views, err := s.views.Views(ctx, e.ID)
		if err != nil {
			s.logger.Warn("failed to get views",
				logger.String("event_id", e.ID),
				logger.String("error", err.Error()),
			)
			views = 0
		}

		details.Events = append(details.Events, domain.EventWithStats{
			Event:          *e,
			ConfirmedCount: confirmed,
			Views:          views,
		})
	}

	return details, nil
}

func (s *CompilationService) checkEventsExist(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	events, err := s.eventRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get events: %w", err)
	}
	if len(events) != len(ids) {
		return domain.ErrEventNotFound
	}
	return nil
}

func validateCompilationTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if len([]rune(title)) > domain.CompilationTitleMaxLen {
		return fmt.Errorf("%w: title is too long", domain.ErrValidation)
	}
	return nil
}

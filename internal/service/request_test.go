package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"afisha/internal/domain"
	"afisha/internal/service/ports"
	"afisha/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type requestServiceMocks struct {
	requestRepo *mocks.MockRequestRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockRequestNotifier
}

func newRequestService(t *testing.T) (*RequestService, requestServiceMocks) {
	t.Helper()
	m := requestServiceMocks{
		requestRepo: mocks.NewMockRequestRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockRequestNotifier(t),
	}
	svc := NewRequestService(m.requestRepo, m.eventRepo, m.userRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func publishedEvent(id, initiatorID string, limit int, moderation bool) *domain.Event {
	return &domain.Event{
		ID:                id,
		InitiatorID:       initiatorID,
		Title:             "Concert",
		State:             domain.EventStatePublished,
		ParticipantLimit:  limit,
		RequestModeration: moderation,
	}
}

// --- Submit ---

func TestRequestService_Submit_Unlimited_AutoConfirm(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "owner", 0, true)
	user := &domain.User{ID: "u1", Username: "alice"}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().HasNonCanceled(mock.Anything, "u1", "e1").Return(false, nil)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, user, event).Return()

	request, err := svc.Submit(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusConfirmed, request.Status)
	assert.Equal(t, "e1", request.EventID)
	assert.Equal(t, "u1", request.RequesterID)
	assert.NotEmpty(t, request.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRequestService_Submit_Limited_CreatesPending(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "owner", 10, true)
	user := &domain.User{ID: "u1", Username: "alice"}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().HasNonCanceled(mock.Anything, "u1", "e1").Return(false, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusPending).Return(3, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(4, nil)
	m.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRequestCreated(mock.Anything, user, event).Return()

	request, err := svc.Submit(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, request.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_Submit_UserNotFound(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Submit(context.Background(), "missing", "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRequestService_Submit_EventNotFound(t *testing.T) {
	svc, m := newRequestService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Submit(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRequestService_Submit_OwnEvent(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "u1", 10, true)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Submit(context.Background(), "u1", "e1")

	assert.ErrorIs(t, err, domain.ErrOwnEvent)
}

func TestRequestService_Submit_EventNotPublished(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "owner", 10, true)
	event.State = domain.EventStatePending

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Submit(context.Background(), "u1", "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotPublished)
}

func TestRequestService_Submit_Duplicate(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "owner", 10, true)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().HasNonCanceled(mock.Anything, "u1", "e1").Return(true, nil)

	_, err := svc.Submit(context.Background(), "u1", "e1")

	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

func TestRequestService_Submit_LimitReached(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "owner", 5, true)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().HasNonCanceled(mock.Anything, "u1", "e1").Return(false, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusPending).Return(2, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(3, nil)

	_, err := svc.Submit(context.Background(), "u1", "e1")

	assert.ErrorIs(t, err, domain.ErrLimitReached)
}

// --- Resolve ---

func pendingRequest(id, eventID, userID string, createdAt time.Time) *domain.Request {
	return &domain.Request{
		ID:          id,
		EventID:     eventID,
		RequesterID: userID,
		Status:      domain.RequestStatusPending,
		CreatedAt:   createdAt,
	}
}

func TestRequestService_Resolve_ConfirmAll_SoftStopOnLimit(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)
	base := time.Now().UTC()
	r1 := pendingRequest("r1", "e1", "u1", base)
	r2 := pendingRequest("r2", "e1", "u2", base.Add(time.Second))
	r3 := pendingRequest("r3", "e1", "u3", base.Add(2*time.Second))

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(0, nil)
	m.requestRepo.EXPECT().ListPendingByEvent(mock.Anything, "e1").Return([]*domain.Request{r1, r2, r3}, nil)
	m.requestRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, mock.Anything, event).Return()

	resolved, err := svc.Resolve(context.Background(), "org", "e1", domain.RequestStatusConfirmed, nil)

	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "r1", resolved[0].ID)
	assert.Equal(t, "r2", resolved[1].ID)
	assert.Equal(t, domain.RequestStatusConfirmed, r1.Status)
	assert.Equal(t, domain.RequestStatusConfirmed, r2.Status)
	// третья заявка остаётся нетронутой
	assert.Equal(t, domain.RequestStatusPending, r3.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_Resolve_ExplicitIDs_IndependentOfOrder(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)
	r3 := pendingRequest("r3", "e1", "u3", time.Now().UTC())

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(1, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, "r3").Return(r3, nil)
	m.requestRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u3").Return(&domain.User{ID: "u3"}, nil)
	m.notifier.EXPECT().NotifyRequestConfirmed(mock.Anything, mock.Anything, event).Return()

	resolved, err := svc.Resolve(context.Background(), "org", "e1", domain.RequestStatusConfirmed, []string{"r3"})

	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "r3", resolved[0].ID)
	assert.Equal(t, domain.RequestStatusConfirmed, r3.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_Resolve_StaleIDsSkipped(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)
	rejected := &domain.Request{ID: "r9", EventID: "e1", RequesterID: "u9", Status: domain.RequestStatusRejected}

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(0, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, "r9").Return(rejected, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRequestNotFound)

	_, err := svc.Resolve(context.Background(), "org", "e1", domain.RequestStatusRejected, []string{"r9", "missing"})

	assert.ErrorIs(t, err, domain.ErrNothingToReject)
}

func TestRequestService_Resolve_NothingToConfirm(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(0, nil)
	m.requestRepo.EXPECT().ListPendingByEvent(mock.Anything, "e1").Return(nil, nil)

	_, err := svc.Resolve(context.Background(), "org", "e1", domain.RequestStatusConfirmed, nil)

	assert.ErrorIs(t, err, domain.ErrNothingToConfirm)
}

func TestRequestService_Resolve_LimitAlreadyReached(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(2, nil)

	_, err := svc.Resolve(context.Background(), "org", "e1", domain.RequestStatusConfirmed, nil)

	assert.ErrorIs(t, err, domain.ErrLimitReached)
}

func TestRequestService_Resolve_RejectIgnoresLimit(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)
	r1 := pendingRequest("r1", "e1", "u1", time.Now().UTC())

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	// лимит уже достигнут, но отклонение не зависит от него
	m.requestRepo.EXPECT().CountByEventAndStatus(mock.Anything, "e1", domain.RequestStatusConfirmed).Return(2, nil)
	m.requestRepo.EXPECT().ListPendingByEvent(mock.Anything, "e1").Return([]*domain.Request{r1}, nil)
	m.requestRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyRequestRejected(mock.Anything, mock.Anything, event).Return()

	resolved, err := svc.Resolve(context.Background(), "org", "e1", domain.RequestStatusRejected, nil)

	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, domain.RequestStatusRejected, r1.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_Resolve_NotInitiator(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)

	m.userRepo.EXPECT().GetByID(mock.Anything, "intruder").Return(&domain.User{ID: "intruder"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Resolve(context.Background(), "intruder", "e1", domain.RequestStatusConfirmed, nil)

	assert.ErrorIs(t, err, domain.ErrNotEventInitiator)
}

func TestRequestService_Resolve_ModerationNotRequired(t *testing.T) {
	svc, m := newRequestService(t)

	// безлимитное событие: подтверждение заявок не требуется
	event := publishedEvent("e1", "org", 0, true)

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Resolve(context.Background(), "org", "e1", domain.RequestStatusConfirmed, nil)

	assert.ErrorIs(t, err, domain.ErrModerationNotNeeded)
}

func TestRequestService_Resolve_InvalidTarget(t *testing.T) {
	svc, _ := newRequestService(t)

	_, err := svc.Resolve(context.Background(), "org", "e1", domain.RequestStatusCanceled, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- Cancel ---

func TestRequestService_Cancel_OwnPending(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)
	user := &domain.User{ID: "u1"}
	r1 := pendingRequest("r1", "e1", "u1", time.Now().UTC())

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r1, nil)
	m.requestRepo.EXPECT().Save(mock.Anything, r1).Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyRequestCanceled(mock.Anything, user, event).Return()

	canceled, err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, canceled.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_Cancel_OwnConfirmed(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)
	user := &domain.User{ID: "u1"}
	r1 := &domain.Request{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusConfirmed}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r1, nil)
	m.requestRepo.EXPECT().Save(mock.Anything, r1).Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyRequestCanceled(mock.Anything, user, event).Return()

	canceled, err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, canceled.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_Cancel_NotOwner(t *testing.T) {
	svc, m := newRequestService(t)

	r1 := pendingRequest("r1", "e1", "u1", time.Now().UTC())

	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r1, nil)

	_, err := svc.Cancel(context.Background(), "u2", "r1")

	assert.ErrorIs(t, err, domain.ErrNotRequestOwner)
}

func TestRequestService_Cancel_AlreadyFinalized(t *testing.T) {
	svc, m := newRequestService(t)

	r1 := &domain.Request{ID: "r1", EventID: "e1", RequesterID: "u1", Status: domain.RequestStatusRejected}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(r1, nil)

	_, err := svc.Cancel(context.Background(), "u1", "r1")

	assert.ErrorIs(t, err, domain.ErrRequestFinalized)
}

// --- ListForEvent ---

func TestRequestService_ListForEvent_NotInitiator(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.ListForEvent(context.Background(), "u1", "e1")

	assert.ErrorIs(t, err, domain.ErrNotEventInitiator)
}

func TestRequestService_ListForEvent_Success(t *testing.T) {
	svc, m := newRequestService(t)

	event := publishedEvent("e1", "org", 2, true)
	requests := []*domain.Request{pendingRequest("r1", "e1", "u1", time.Now().UTC())}

	m.userRepo.EXPECT().GetByID(mock.Anything, "org").Return(&domain.User{ID: "org"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.requestRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(requests, nil)

	res, err := svc.ListForEvent(context.Background(), "org", "e1")

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

// --- Concurrency ---

// memRequestRepo — потокобезопасное in-memory хранилище для проверки
// лимита под конкурентной нагрузкой.
type memRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*domain.Request
}

var _ ports.RequestRepo = (*memRequestRepo)(nil)

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[string]*domain.Request)}
}

func (r *memRequestRepo) Create(_ context.Context, req *domain.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *memRequestRepo) GetByID(_ context.Context, id string) (*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *memRequestRepo) ListByRequester(_ context.Context, userID string) ([]*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*domain.Request
	for _, req := range r.requests {
		if req.RequesterID == userID {
			cp := *req
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *memRequestRepo) ListByEvent(_ context.Context, eventID string) ([]*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*domain.Request
	for _, req := range r.requests {
		if req.EventID == eventID {
			cp := *req
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *memRequestRepo) ListPendingByEvent(_ context.Context, eventID string) ([]*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []*domain.Request
	for _, req := range r.requests {
		if req.EventID == eventID && req.Status == domain.RequestStatusPending {
			cp := *req
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *memRequestRepo) CountByEventAndStatus(_ context.Context, eventID string, status domain.RequestStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, req := range r.requests {
		if req.EventID == eventID && req.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *memRequestRepo) HasNonCanceled(_ context.Context, requesterID, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.RequesterID == requesterID && req.EventID == eventID && req.Status != domain.RequestStatusCanceled {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRequestRepo) Save(_ context.Context, req *domain.Request) error {
	return r.Create(context.Background(), req)
}

func (r *memRequestRepo) SaveAll(_ context.Context, requests []*domain.Request) error {
	for _, req := range requests {
		if err := r.Create(context.Background(), req); err != nil {
			return err
		}
	}
	return nil
}

// Подтверждённых и ожидающих заявок никогда не становится больше лимита,
// как бы ни переплетались конкурентные Submit.
func TestRequestService_Submit_ConcurrentNeverExceedsLimit(t *testing.T) {
	const (
		userCount = 20
		limit     = 5
	)

	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockRequestNotifier(t)
	requestRepo := newMemRequestRepo()

	event := publishedEvent("e1", "owner", limit, true)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		})
	notifier.EXPECT().NotifyRequestCreated(mock.Anything, mock.Anything, event).Return()

	svc := NewRequestService(requestRepo, eventRepo, userRepo, notifier, newTestLogger(t))

	var wg sync.WaitGroup
	wg.Add(userCount)

	errs := make(chan error, userCount)
	for i := 0; i < userCount; i++ {
		userID := "user-" + string(rune('a'+i))
		go func() {
			defer wg.Done()
			_, err := svc.Submit(context.Background(), userID, "e1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, limited := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrLimitReached):
			limited++
		}
	}

	assert.Equal(t, limit, succeeded)
	assert.Equal(t, userCount-limit, limited)

	active := 0
	for _, st := range domain.ActiveStatuses {
		n, err := requestRepo.CountByEventAndStatus(context.Background(), "e1", st)
		require.NoError(t, err)
		active += n
	}
	assert.Equal(t, limit, active)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

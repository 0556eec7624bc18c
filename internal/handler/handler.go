package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"afisha/internal/domain"
	"afisha/internal/handler/dto"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Publish(ctx context.Context, initiatorID, eventID string) (*domain.Event, error)
	GetDetails(ctx context.Context, eventID, ip string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type RequestSvc interface {
	Submit(ctx context.Context, requesterID, eventID string) (*domain.Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Request, error)
	ListForEvent(ctx context.Context, initiatorID, eventID string) ([]*domain.Request, error)
	Resolve(ctx context.Context, initiatorID, eventID string, target domain.RequestStatus, requestIDs []string) ([]*domain.Request, error)
	Cancel(ctx context.Context, requesterID, requestID string) (*domain.Request, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type CompilationSvc interface {
	Create(ctx context.Context, input domain.NewCompilationInput) (*domain.CompilationDetails, error)
	Update(ctx context.Context, id string, input domain.UpdateCompilationInput) (*domain.CompilationDetails, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CompilationDetails, error)
	List(ctx context.Context, pinned *bool, from, size int) ([]*domain.CompilationDetails, error)
}

type Handler struct {
	eventService       EventSvc
	requestService     RequestSvc
	userService        UserSvc
	compilationService CompilationSvc
}

func NewHandler(
	eventService EventSvc,
	requestService RequestSvc,
	userService UserSvc,
	compilationService CompilationSvc,
) *Handler {
	return &Handler{
		eventService:       eventService,
		requestService:     requestService,
		userService:        userService,
		compilationService: compilationService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		InitiatorID:       req.InitiatorID,
		Title:             req.Title,
		Description:       req.Description,
		EventDate:         eventDate,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) PublishEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.PublishEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Publish(c.Request.Context(), req.InitiatorID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Requests

func (h *Handler) SubmitRequest(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.requestService.Submit(c.Request.Context(), req.UserID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

func (h *Handler) ListEventRequests(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	initiatorID := c.Query("initiator_id")
	if _, err := uuid.Parse(initiatorID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid initiator_id"})
		return
	}

	requests, err := h.requestService.ListForEvent(c.Request.Context(), initiatorID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) ResolveRequests(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ResolveRequests
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resolved, err := h.requestService.Resolve(
		c.Request.Context(),
		req.InitiatorID, eventID,
		domain.RequestStatus(req.Status),
		req.RequestIDs,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(resolved))
}

func (h *Handler) ListUserRequests(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	requests, err := h.requestService.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) CancelRequest(c *ginext.Context) {
	requestID := c.Param("id")
	if _, err := uuid.Parse(requestID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.requestService.Cancel(c.Request.Context(), req.UserID, requestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Compilations

func (h *Handler) CreateCompilation(c *ginext.Context) {
	var req dto.NewCompilationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.NewCompilationInput{
		Title:    req.Title,
		Pinned:   req.Pinned,
		EventIDs: req.EventIDs,
	}

	compilation, err := h.compilationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompilationResponse(compilation))
}

func (h *Handler) UpdateCompilation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid compilation id"})
		return
	}

	var req dto.UpdateCompilationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateCompilationInput{
		Title:    req.Title,
		Pinned:   req.Pinned,
		EventIDs: req.EventIDs,
	}

	compilation, err := h.compilationService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompilationResponse(compilation))
}

func (h *Handler) DeleteCompilation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid compilation id"})
		return
	}

	if err := h.compilationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *Handler) GetCompilation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid compilation id"})
		return
	}

	compilation, err := h.compilationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompilationResponse(compilation))
}

func (h *Handler) ListCompilations(c *ginext.Context) {
	var pinned *bool
	if raw := c.Query("pinned"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pinned value"})
			return
		}
		pinned = &v
	}

	from, err := queryInt(c, "from", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from value"})
		return
	}
	size, err := queryInt(c, "size", 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid size value"})
		return
	}

	compilations, err := h.compilationService.List(c.Request.Context(), pinned, from, size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CompilationResponse, 0, len(compilations))
	for _, comp := range compilations {
		resp = append(resp, dto.ToCompilationResponse(comp))
	}

	c.JSON(http.StatusOK, resp)
}

func queryInt(c *ginext.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrCompilationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrOwnEvent),
		errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrEventNotPending),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrLimitReached),
		errors.Is(err, domain.ErrModerationNotNeeded),
		errors.Is(err, domain.ErrNothingToConfirm),
		errors.Is(err, domain.ErrNothingToReject),
		errors.Is(err, domain.ErrRequestFinalized):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotRequestOwner),
		errors.Is(err, domain.ErrNotEventInitiator):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

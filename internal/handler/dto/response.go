package dto

import (
	"time"

	"afisha/internal/domain"
)

type EventResponse struct {
	ID                string `json:"id"`
	InitiatorID       string `json:"initiator_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	EventDate         string `json:"event_date"`
	State             string `json:"state"`
	ParticipantLimit  int    `json:"participant_limit"`
	RequestModeration bool   `json:"request_moderation"`
	CreatedAt         string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse `json:"event"`
	ConfirmedCount int           `json:"confirmed_count"`
	AvailableSpots int           `json:"available_spots"`
	Views          int64         `json:"views"`
}

type RequestResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	RequesterID string `json:"requester_id"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type EventWithStatsResponse struct {
	Event          EventResponse `json:"event"`
	ConfirmedCount int           `json:"confirmed_count"`
	Views          int64         `json:"views"`
}

type CompilationResponse struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	Pinned    bool                     `json:"pinned"`
	Events    []EventWithStatsResponse `json:"events"`
	CreatedAt string                   `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		InitiatorID:       e.InitiatorID,
		Title:             e.Title,
		Description:       e.Description,
		EventDate:         e.EventDate.Format(time.RFC3339),
		State:             string(e.State),
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		ConfirmedCount: d.ConfirmedCount,
		AvailableSpots: d.AvailableSpots,
		Views:          d.Views,
	}
}

func ToRequestResponse(r *domain.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		EventID:     r.EventID,
		RequesterID: r.RequesterID,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ToRequestResponses(requests []*domain.Request) []RequestResponse {
	res := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, ToRequestResponse(r))
	}
	return res
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCompilationResponse(d *domain.CompilationDetails) CompilationResponse {
	events := make([]EventWithStatsResponse, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, EventWithStatsResponse{
			Event:          ToEventResponse(&e.Event),
			ConfirmedCount: e.ConfirmedCount,
			Views:          e.Views,
		})
	}

	return CompilationResponse{
		ID:        d.Compilation.ID,
		Title:     d.Compilation.Title,
		Pinned:    d.Compilation.Pinned,
		Events:    events,
		CreatedAt: d.Compilation.CreatedAt.Format(time.RFC3339),
	}
}

package domain

import "time"

type EventState string

const (
	EventStatePending   EventState = "pending"
	EventStatePublished EventState = "published"
	EventStateCanceled  EventState = "canceled"
)

type Event struct {
	ID                string     `json:"id"`
	InitiatorID       string     `json:"initiator_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	EventDate         time.Time  `json:"event_date"`
	State             EventState `json:"state"`
	ParticipantLimit  int        `json:"participant_limit"` // 0 — без ограничения
	RequestModeration bool       `json:"request_moderation"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Unlimited: лимит 0 означает, что заявки подтверждаются автоматически.
func (e *Event) Unlimited() bool {
	return e.ParticipantLimit == 0
}

// Moderated: ручное подтверждение заявок применимо только при ненулевом лимите.
func (e *Event) Moderated() bool {
	return e.RequestModeration && e.ParticipantLimit > 0
}

type EventDetails struct {
	Event          Event `json:"event"`
	ConfirmedCount int   `json:"confirmed_count"`
	AvailableSpots int   `json:"available_spots"` // -1 для событий без лимита
	Views          int64 `json:"views"`
}

type CreateEventInput struct {
	InitiatorID       string
	Title             string
	Description       string
	EventDate         time.Time
	ParticipantLimit  int
	RequestModeration *bool
}

package domain

import "time"

const CompilationTitleMaxLen = 50

type Compilation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Pinned    bool      `json:"pinned"`
	EventIDs  []string  `json:"event_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewCompilationInput struct {
	Title    string
	Pinned   *bool
	EventIDs []string
}

type UpdateCompilationInput struct {
	Title    *string
	Pinned   *bool
	EventIDs *[]string
}

// CompilationDetails: подборка с агрегатами по каждому событию.
type CompilationDetails struct {
	Compilation `json:"compilation"`
	Events      []EventWithStats `json:"events"`
}

type EventWithStats struct {
	Event          Event `json:"event"`
	ConfirmedCount int   `json:"confirmed_count"`
	Views          int64 `json:"views"`
}

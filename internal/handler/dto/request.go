package dto

type CreateEventRequest struct {
	InitiatorID       string `json:"initiator_id" binding:"required,uuid"`
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	EventDate         string `json:"event_date" binding:"required"`
	ParticipantLimit  int    `json:"participant_limit" binding:"gte=0"`
	RequestModeration *bool  `json:"request_moderation"`
}

type PublishEventRequest struct {
	InitiatorID string `json:"initiator_id" binding:"required,uuid"`
}

type SubmitRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type ResolveRequests struct {
	InitiatorID string   `json:"initiator_id" binding:"required,uuid"`
	Status      string   `json:"status" binding:"required,oneof=confirmed rejected"`
	RequestIDs  []string `json:"request_ids"`
}

type CancelRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type NewCompilationRequest struct {
	Title    string   `json:"title" binding:"required,max=50"`
	Pinned   *bool    `json:"pinned"`
	EventIDs []string `json:"event_ids"`
}

type UpdateCompilationRequest struct {
	Title    *string   `json:"title"`
	Pinned   *bool     `json:"pinned"`
	EventIDs *[]string `json:"event_ids"`
}

package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCanceled  RequestStatus = "canceled"
)

// ActiveStatuses занимают место в лимите события.
var ActiveStatuses = []RequestStatus{RequestStatusPending, RequestStatusConfirmed}

// Terminal сообщает, возможны ли дальнейшие переходы статуса.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusConfirmed || s == RequestStatusRejected || s == RequestStatusCanceled
}

// ResolveTarget проверяет, что статус допустим как цель решения организатора.
func (s RequestStatus) ResolveTarget() bool {
	return s == RequestStatusConfirmed || s == RequestStatusRejected
}

type Request struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	RequesterID string        `json:"requester_id"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Cancelable: заявку может отменить только её владелец, пока она pending или confirmed.
func (r *Request) Cancelable(userID string) error {
	if r.RequesterID != userID {
		return ErrNotRequestOwner
	}
	if r.Status != RequestStatusPending && r.Status != RequestStatusConfirmed {
		return ErrRequestFinalized
	}
	return nil
}

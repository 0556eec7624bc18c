package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrRequestNotFound     = errors.New("request not found")
	ErrCompilationNotFound = errors.New("compilation not found")
)

var (
	ErrOwnEvent            = errors.New("initiator cannot request own event")
	ErrEventNotPublished   = errors.New("event not open for requests")
	ErrEventNotPending     = errors.New("event is not in pending state")
	ErrDuplicateRequest    = errors.New("user already has a request for this event")
	ErrLimitReached        = errors.New("participant limit reached")
	ErrModerationNotNeeded = errors.New("moderation not required for this event")
	ErrNothingToConfirm    = errors.New("no pending requests to confirm")
	ErrNothingToReject     = errors.New("no pending requests to reject")
	ErrRequestFinalized    = errors.New("request already finalized")
)

var (
	ErrNotRequestOwner   = errors.New("user is not the request owner")
	ErrNotEventInitiator = errors.New("user is not the event initiator")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

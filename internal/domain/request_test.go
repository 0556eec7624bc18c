package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_Terminal(t *testing.T) {
	assert.False(t, RequestStatusPending.Terminal())
	assert.True(t, RequestStatusConfirmed.Terminal())
	assert.True(t, RequestStatusRejected.Terminal())
	assert.True(t, RequestStatusCanceled.Terminal())
}

func TestRequestStatus_ResolveTarget(t *testing.T) {
	assert.True(t, RequestStatusConfirmed.ResolveTarget())
	assert.True(t, RequestStatusRejected.ResolveTarget())
	assert.False(t, RequestStatusPending.ResolveTarget())
	assert.False(t, RequestStatusCanceled.ResolveTarget())
}

func TestRequest_Cancelable(t *testing.T) {
	tests := []struct {
		name    string
		status  RequestStatus
		userID  string
		wantErr error
	}{
		{"owner pending", RequestStatusPending, "u1", nil},
		{"owner confirmed", RequestStatusConfirmed, "u1", nil},
		{"not owner", RequestStatusPending, "u2", ErrNotRequestOwner},
		{"already rejected", RequestStatusRejected, "u1", ErrRequestFinalized},
		{"already canceled", RequestStatusCanceled, "u1", ErrRequestFinalized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Request{RequesterID: "u1", Status: tt.status}

			err := r.Cancelable(tt.userID)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestEvent_Moderated(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		moderation bool
		want       bool
	}{
		{"limited with moderation", 10, true, true},
		{"limited without moderation", 10, false, false},
		{"unlimited with moderation", 0, true, false},
		{"unlimited without moderation", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{ParticipantLimit: tt.limit, RequestModeration: tt.moderation}
			assert.Equal(t, tt.want, e.Moderated())
		})
	}
}

package shared

import (
	"context"

	"github.com/google/uuid"
)

const (
	EventRequestOpened    = "request.opened"
	EventRequestApproved  = "request.approved"
	EventRequestRejected  = "request.rejected"
	EventRequestCancelled = "request.cancelled"
	EventShiftAssigned    = "shift.assigned"
	EventShiftUnassigned  = "shift.unassigned"
)

// Event is the outbound notice fired after a committed state transition.
type Event struct {
	Kind         string         `json:"kind"`
	CompanyID    uuid.UUID      `json:"company_id"`
	TargetUserID uuid.UUID      `json:"target_user_id"`
	Payload      map[string]any `json:"payload,omitempty"`
}

// Notifier is the gateway to the external notification system. Delivery is
// best-effort: callers log failures and never roll back the transition that
// produced the event.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

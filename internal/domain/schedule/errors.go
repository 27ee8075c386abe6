package schedule

import (
	"fmt"

	"github.com/google/uuid"
)

// CapacityError reports a batch assignment that would exceed shift
// capacity. Available counts confirmed slots left; Requested counts only
// net-new users (already-assigned users never consume a second slot).
type CapacityError struct {
	ShiftID   uuid.UUID
	Available int
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("shift %s capacity exceeded: %d requested, %d available", e.ShiftID, e.Requested, e.Available)
}

// ShrinkError rejects a capacity edit that would drop below the number of
// confirmed assignees. Assignments are never cascade-invalidated by an
// edit; the caller unassigns first.
type ShrinkError struct {
	ShiftID   uuid.UUID
	Capacity  int
	Confirmed int
}

func (e *ShrinkError) Error() string {
	return fmt.Sprintf("shift %s capacity %d is below %d confirmed assignment(s)", e.ShiftID, e.Capacity, e.Confirmed)
}

// ShiftRef identifies a committed shift that blocks a candidate assignment.
type ShiftRef struct {
	ShiftID uuid.UUID
	Title   string
	Window  TimeWindow
}

// UserConflict lists the overlapping commitments of one candidate user.
type UserConflict struct {
	UserID            uuid.UUID
	ConflictingShifts []ShiftRef
}

// ConflictError reports every candidate whose existing confirmed
// assignments overlap the target window. The whole batch is rejected; the
// caller gets the full report to render.
type ConflictError struct {
	ShiftID   uuid.UUID
	Conflicts []UserConflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shift %s: %d user(s) have overlapping commitments", e.ShiftID, len(e.Conflicts))
}

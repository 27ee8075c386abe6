package response

import (
	"time"

	"rosterd/internal/domain/schedule"

	"github.com/google/uuid"
)

// Structured 409 payloads. Clients resolve capacity and overlap rejections
// programmatically, so the detail carries the exact numbers and shifts.

type CapacityDetail struct {
	ShiftID   uuid.UUID `json:"shiftId"`
	Available int       `json:"available"`
	Requested int       `json:"requested"`
}

func FromCapacityError(e *schedule.CapacityError) CapacityDetail {
	return CapacityDetail{
		ShiftID:   e.ShiftID,
		Available: e.Available,
		Requested: e.Requested,
	}
}

type ShrinkDetail struct {
	ShiftID   uuid.UUID `json:"shiftId"`
	Capacity  int       `json:"capacity"`
	Confirmed int       `json:"confirmed"`
}

func FromShrinkError(e *schedule.ShrinkError) ShrinkDetail {
	return ShrinkDetail{
		ShiftID:   e.ShiftID,
		Capacity:  e.Capacity,
		Confirmed: e.Confirmed,
	}
}

type ConflictingShift struct {
	ShiftID  uuid.UUID `json:"shiftId"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

type UserConflictDetail struct {
	UserID            uuid.UUID          `json:"userId"`
	ConflictingShifts []ConflictingShift `json:"conflictingShifts"`
}

type ConflictDetail struct {
	ShiftID   uuid.UUID            `json:"shiftId"`
	Conflicts []UserConflictDetail `json:"conflicts"`
}

func FromConflictError(e *schedule.ConflictError) ConflictDetail {
	detail := ConflictDetail{
		ShiftID:   e.ShiftID,
		Conflicts: make([]UserConflictDetail, 0, len(e.Conflicts)),
	}
	for _, uc := range e.Conflicts {
		shifts := make([]ConflictingShift, 0, len(uc.ConflictingShifts))
		for _, ref := range uc.ConflictingShifts {
			shifts = append(shifts, ConflictingShift{
				ShiftID:  ref.ShiftID,
				Title:    ref.Title,
				StartsAt: ref.Window.Start(),
				EndsAt:   ref.Window.End(),
			})
		}
		detail.Conflicts = append(detail.Conflicts, UserConflictDetail{
			UserID:            uc.UserID,
			ConflictingShifts: shifts,
		})
	}
	return detail
}

package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ShiftView struct {
	ID             uuid.UUID  `json:"id"`
	CompanyID      uuid.UUID  `json:"company_id"`
	Title          string     `json:"title"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         time.Time  `json:"ends_at"`
	Capacity       int32      `json:"capacity"`
	PrimaryOwnerID *uuid.UUID `json:"primary_owner_id,omitempty"`
	ConfirmedCount int32      `json:"confirmed_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type AssignmentView struct {
	ID        uuid.UUID `json:"id"`
	ShiftID   uuid.UUID `json:"shift_id"`
	UserID    uuid.UUID `json:"user_id"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RequestView struct {
	ID              uuid.UUID  `json:"id"`
	CompanyID       uuid.UUID  `json:"company_id"`
	RequesterID     uuid.UUID  `json:"requester_id"`
	Kind            string     `json:"kind"`
	Status          string     `json:"status"`
	OriginalShiftID *uuid.UUID `json:"original_shift_id,omitempty"`
	TargetUserID    *uuid.UUID `json:"target_user_id,omitempty"`
	OfferedShiftID  *uuid.UUID `json:"offered_shift_id,omitempty"`
	TimeOffType     *string    `json:"time_off_type,omitempty"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	Reason          *string    `json:"reason,omitempty"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ResponseMessage *string    `json:"response_message,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

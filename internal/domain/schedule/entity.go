package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeWindow = errors.New("invalid time window")
	ErrInvalidCapacity   = errors.New("capacity must be at least 1")
	ErrEmptyTitle        = errors.New("shift title cannot be empty")
	ErrInvalidStatus     = errors.New("invalid assignment status")
)

type Shift struct {
	id             uuid.UUID
	companyID      uuid.UUID
	title          string
	window         TimeWindow
	capacity       int
	primaryOwnerID *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewShift(companyID uuid.UUID, title string, window TimeWindow, capacity int, ownerID uuid.UUID, now time.Time) (*Shift, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if window.IsZero() {
		return nil, ErrInvalidTimeWindow
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	var owner *uuid.UUID
	if ownerID != uuid.Nil {
		owner = &ownerID
	}

	return &Shift{
		id:             uuid.New(),
		companyID:      companyID,
		title:          title,
		window:         window,
		capacity:       capacity,
		primaryOwnerID: owner,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructShift(
	id, companyID uuid.UUID,
	title string,
	window TimeWindow,
	capacity int,
	primaryOwnerID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Shift {
	return &Shift{
		id:             id,
		companyID:      companyID,
		title:          title,
		window:         window,
		capacity:       capacity,
		primaryOwnerID: primaryOwnerID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (s *Shift) ID() uuid.UUID              { return s.id }
func (s *Shift) CompanyID() uuid.UUID       { return s.companyID }
func (s *Shift) Title() string              { return s.title }
func (s *Shift) Window() TimeWindow         { return s.window }
func (s *Shift) Capacity() int              { return s.capacity }
func (s *Shift) PrimaryOwnerID() *uuid.UUID { return s.primaryOwnerID }
func (s *Shift) CreatedAt() time.Time       { return s.createdAt }
func (s *Shift) UpdatedAt() time.Time       { return s.updatedAt }

// Available reports how many confirmed slots remain given the current
// confirmed assignment count.
func (s *Shift) Available(confirmedCount int) int {
	remaining := s.capacity - confirmedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *Shift) Rename(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	s.title = title
	return nil
}

func (s *Shift) Reschedule(window TimeWindow) error {
	if window.IsZero() {
		return ErrInvalidTimeWindow
	}
	s.window = window
	return nil
}

func (s *Shift) Resize(capacity int) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	s.capacity = capacity
	return nil
}

// SetPrimaryOwner keeps the legacy single-assignee pointer in sync with the
// assignment set. Nil clears it.
func (s *Shift) SetPrimaryOwner(userID *uuid.UUID) {
	s.primaryOwnerID = userID
}

func (s *Shift) Touch(now time.Time) {
	s.updatedAt = now
}

type Assignment struct {
	id        uuid.UUID
	shiftID   uuid.UUID
	companyID uuid.UUID
	userID    uuid.UUID
	status    AssignmentStatus
	notes     Notes
	createdAt time.Time
}

func NewAssignment(shiftID, companyID, userID uuid.UUID, notes Notes, now time.Time) *Assignment {
	return &Assignment{
		id:        uuid.New(),
		shiftID:   shiftID,
		companyID: companyID,
		userID:    userID,
		status:    AssignmentConfirmed,
		notes:     notes,
		createdAt: now,
	}
}

func ReconstructAssignment(
	id, shiftID, companyID, userID uuid.UUID,
	status AssignmentStatus,
	notes Notes,
	createdAt time.Time,
) (*Assignment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Assignment{
		id:        id,
		shiftID:   shiftID,
		companyID: companyID,
		userID:    userID,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
	}, nil
}

func (a *Assignment) ID() uuid.UUID            { return a.id }
func (a *Assignment) ShiftID() uuid.UUID       { return a.shiftID }
func (a *Assignment) CompanyID() uuid.UUID     { return a.companyID }
func (a *Assignment) UserID() uuid.UUID        { return a.userID }
func (a *Assignment) Status() AssignmentStatus { return a.status }
func (a *Assignment) Notes() Notes             { return a.notes }
func (a *Assignment) CreatedAt() time.Time     { return a.createdAt }

func (a *Assignment) IsConfirmed() bool {
	return a.status == AssignmentConfirmed
}

package shared

import (
	"context"
	"time"

	"rosterd/internal/domain/request"
	"rosterd/internal/domain/schedule"

	"github.com/google/uuid"
)

// UnitOfWork runs command-side work in one storage transaction. Within
// retries on serialization failures and deadlocks with fresh snapshots, so
// callbacks must be safe to re-run.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Shifts() ShiftRepository
	Assignments() AssignmentRepository
	Requests() RequestRepository
}

type ShiftRepository interface {
	Create(ctx context.Context, shift *schedule.Shift) error
	Update(ctx context.Context, shift *schedule.Shift) error
	// Delete cascades the shift's assignments.
	Delete(ctx context.Context, shiftID, companyID uuid.UUID) error
	Find(ctx context.Context, shiftID, companyID uuid.UUID) (*schedule.Shift, error)
	// FindForUpdate locks the shift row, serializing all assignment
	// mutations for this shift until the transaction ends.
	FindForUpdate(ctx context.Context, shiftID, companyID uuid.UUID) (*schedule.Shift, error)
}

// OverlappingAssignment is one confirmed commitment of a candidate user
// that overlaps a target window, joined with its shift for reporting.
type OverlappingAssignment struct {
	UserID  uuid.UUID
	ShiftID uuid.UUID
	Title   string
	Start   time.Time
	End     time.Time
}

type AssignmentRepository interface {
	Insert(ctx context.Context, assignment *schedule.Assignment) error
	// Delete reports KindNotFound when no matching assignment exists so
	// callers can surface the no-op.
	Delete(ctx context.Context, shiftID, companyID, userID uuid.UUID) error
	ListByShift(ctx context.Context, shiftID, companyID uuid.UUID) ([]*schedule.Assignment, error)
	// FindOverlapping returns every confirmed assignment of the given users
	// (company-wide, excluding excludeShiftID) whose shift window overlaps
	// the target window.
	FindOverlapping(ctx context.Context, companyID uuid.UUID, userIDs []uuid.UUID, window schedule.TimeWindow, excludeShiftID uuid.UUID) ([]OverlappingAssignment, error)
	// LockUsers serializes concurrent assignment checks per (company, user)
	// across different shifts. IDs must be passed sorted to keep the lock
	// order deadlock-free; implementations hold the locks until the
	// transaction ends.
	LockUsers(ctx context.Context, companyID uuid.UUID, userIDs []uuid.UUID) error
}

type RequestRepository interface {
	Create(ctx context.Context, req *request.Request) error
	Update(ctx context.Context, req *request.Request) error
	Find(ctx context.Context, requestID, companyID uuid.UUID) (*request.Request, error)
}

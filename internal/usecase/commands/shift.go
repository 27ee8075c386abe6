package commands

import (
	"context"
	"time"

	"rosterd/internal/domain/identity"
	"rosterd/internal/domain/schedule"
	"rosterd/internal/infra"
	"rosterd/internal/pkg/clock"
	"rosterd/internal/pkg/errs"
	"rosterd/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDomainValidation = errs.New("domain validation error")

type CreateShiftParams struct {
	Title    string
	Start    time.Time
	End      time.Time
	Capacity int
	OwnerID  uuid.UUID
}

// UpdateShiftParams carries optional edits. Start and End travel together;
// a window change re-validates every confirmed assignee against their
// other commitments, and a capacity shrink below the confirmed count is
// rejected rather than cascade-invalidating assignments.
type UpdateShiftParams struct {
	Title    *string
	Start    *time.Time
	End      *time.Time
	Capacity *int
}

type ShiftCommands interface {
	CreateShift(ctx context.Context, actor identity.Actor, params CreateShiftParams) (*schedule.Shift, error)
	UpdateShift(ctx context.Context, actor identity.Actor, shiftID uuid.UUID, params UpdateShiftParams) (*schedule.Shift, error)
	DeleteShift(ctx context.Context, actor identity.Actor, shiftID uuid.UUID) error
}

type shiftUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewShiftUseCase(uow shared.UnitOfWork, clk clock.Clock) ShiftCommands {
	return &shiftUseCaseImpl{uow: uow, clock: clk}
}

func (uc *shiftUseCaseImpl) CreateShift(ctx context.Context, actor identity.Actor, params CreateShiftParams) (*schedule.Shift, error) {
	window, err := schedule.NewTimeWindow(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	shift, err := schedule.NewShift(actor.CompanyID, params.Title, window, params.Capacity, params.OwnerID, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Shifts().Create(ctx, shift)
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

func (uc *shiftUseCaseImpl) UpdateShift(ctx context.Context, actor identity.Actor, shiftID uuid.UUID, params UpdateShiftParams) (*schedule.Shift, error) {
	var shift *schedule.Shift

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		shift, derr = tx.Shifts().FindForUpdate(ctx, shiftID, actor.CompanyID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return derr
		}

		windowChanged := false
		if params.Title != nil {
			if derr = shift.Rename(*params.Title); derr != nil {
				return errs.Mark(derr, ErrDomainValidation)
			}
		}
		if params.Start != nil || params.End != nil {
			start := shift.Window().Start()
			end := shift.Window().End()
			if params.Start != nil {
				start = *params.Start
			}
			if params.End != nil {
				end = *params.End
			}
			window, werr := schedule.NewTimeWindow(start, end)
			if werr != nil {
				return errs.Mark(werr, ErrDomainValidation)
			}
			if derr = shift.Reschedule(window); derr != nil {
				return errs.Mark(derr, ErrDomainValidation)
			}
			windowChanged = true
		}
		if params.Capacity != nil {
			if derr = shift.Resize(*params.Capacity); derr != nil {
				return errs.Mark(derr, ErrDomainValidation)
			}
		}

		assignments, derr := tx.Assignments().ListByShift(ctx, shiftID, actor.CompanyID)
		if derr != nil {
			return derr
		}
		confirmed := make([]uuid.UUID, 0, len(assignments))
		for _, a := range assignments {
			if a.IsConfirmed() {
				confirmed = append(confirmed, a.UserID())
			}
		}

		if len(confirmed) > shift.Capacity() {
			return &schedule.ShrinkError{
				ShiftID:   shiftID,
				Capacity:  shift.Capacity(),
				Confirmed: len(confirmed),
			}
		}

		if windowChanged && len(confirmed) > 0 {
			if derr = tx.Assignments().LockUsers(ctx, actor.CompanyID, sortedUUIDs(confirmed)); derr != nil {
				return derr
			}
			overlapping, oerr := tx.Assignments().FindOverlapping(ctx, actor.CompanyID, confirmed, shift.Window(), shiftID)
			if oerr != nil {
				return oerr
			}
			if conflicts := groupConflicts(overlapping); len(conflicts) > 0 {
				return &schedule.ConflictError{ShiftID: shiftID, Conflicts: conflicts}
			}
		}

		shift.Touch(uc.clock.Now())
		return tx.Shifts().Update(ctx, shift)
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

func (uc *shiftUseCaseImpl) DeleteShift(ctx context.Context, actor identity.Actor, shiftID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Shifts().Delete(ctx, shiftID, actor.CompanyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return err
		}
		return nil
	})
}

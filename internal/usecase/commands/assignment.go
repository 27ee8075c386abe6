package commands

import (
	"bytes"
	"context"
	"log/slog"
	"slices"

	"rosterd/internal/domain/identity"
	"rosterd/internal/domain/schedule"
	"rosterd/internal/infra"
	"rosterd/internal/pkg/clock"
	"rosterd/internal/pkg/errs"
	"rosterd/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrShiftNotFound      = errs.New("shift not found")
	ErrAssignmentNotFound = errs.New("assignment not found")
	ErrNoUsersRequested   = errs.New("no users requested")
)

// AssignmentCommands is the assignment engine: the only writer of
// assignment state. Capacity and overlap checks are batch preconditions —
// either every requested user is committed or none is.
type AssignmentCommands interface {
	Assign(ctx context.Context, actor identity.Actor, shiftID uuid.UUID, userIDs []uuid.UUID, notes string) ([]*schedule.Assignment, error)
	Unassign(ctx context.Context, actor identity.Actor, shiftID, userID uuid.UUID) error
}

type assignmentUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewAssignmentUseCase(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) AssignmentCommands {
	return &assignmentUseCaseImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *assignmentUseCaseImpl) Assign(
	ctx context.Context,
	actor identity.Actor,
	shiftID uuid.UUID,
	userIDs []uuid.UUID,
	notes string,
) ([]*schedule.Assignment, error) {
	requested := dedupeUUIDs(userIDs)
	if len(requested) == 0 {
		return nil, ErrNoUsersRequested
	}

	var result []*schedule.Assignment
	var created []*schedule.Assignment

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = result[:0]
		created = created[:0]

		shift, derr := tx.Shifts().FindForUpdate(ctx, shiftID, actor.CompanyID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return derr
		}

		// Sorted lock order keeps concurrent batches deadlock-free.
		if derr = tx.Assignments().LockUsers(ctx, actor.CompanyID, sortedUUIDs(requested)); derr != nil {
			return derr
		}

		existing, derr := tx.Assignments().ListByShift(ctx, shiftID, actor.CompanyID)
		if derr != nil {
			return derr
		}

		existingByUser := make(map[uuid.UUID]*schedule.Assignment, len(existing))
		confirmedCount := 0
		for _, a := range existing {
			existingByUser[a.UserID()] = a
			if a.IsConfirmed() {
				confirmedCount++
			}
		}

		// Idempotent re-add: users already on this shift are returned as-is
		// and never consume a second capacity slot.
		netNew := make([]uuid.UUID, 0, len(requested))
		for _, userID := range requested {
			if _, ok := existingByUser[userID]; !ok {
				netNew = append(netNew, userID)
			}
		}

		available := shift.Available(confirmedCount)
		if len(netNew) > available {
			return &schedule.CapacityError{
				ShiftID:   shiftID,
				Available: available,
				Requested: len(netNew),
			}
		}

		if len(netNew) > 0 {
			overlapping, oerr := tx.Assignments().FindOverlapping(ctx, actor.CompanyID, netNew, shift.Window(), shiftID)
			if oerr != nil {
				return oerr
			}
			if conflicts := groupConflicts(overlapping); len(conflicts) > 0 {
				return &schedule.ConflictError{ShiftID: shiftID, Conflicts: conflicts}
			}
		}

		now := uc.clock.Now()
		for _, userID := range netNew {
			assignment := schedule.NewAssignment(shiftID, actor.CompanyID, userID, schedule.NewNotes(notes), now)
			if derr = tx.Assignments().Insert(ctx, assignment); derr != nil {
				if infra.IsKind(derr, infra.KindDuplicateKey) {
					// Raced past the row lock somehow; let the uow retry
					// with a fresh snapshot.
					return infra.WrapRepoErr("concurrent assignment detected", derr, infra.KindConflict)
				}
				return derr
			}
			created = append(created, assignment)
		}

		if shift.PrimaryOwnerID() == nil && len(created) > 0 {
			ownerID := created[0].UserID()
			shift.SetPrimaryOwner(&ownerID)
			shift.Touch(now)
			if derr = tx.Shifts().Update(ctx, shift); derr != nil {
				return derr
			}
		}

		for _, userID := range requested {
			if a, ok := existingByUser[userID]; ok {
				result = append(result, a)
			}
		}
		result = append(result, created...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, assignment := range created {
		uc.notify(ctx, shared.Event{
			Kind:         shared.EventShiftAssigned,
			CompanyID:    actor.CompanyID,
			TargetUserID: assignment.UserID(),
			Payload: map[string]any{
				"shift_id":      shiftID,
				"assignment_id": assignment.ID(),
			},
		})
	}

	return result, nil
}

func (uc *assignmentUseCaseImpl) Unassign(ctx context.Context, actor identity.Actor, shiftID, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		shift, derr := tx.Shifts().FindForUpdate(ctx, shiftID, actor.CompanyID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return derr
		}

		if derr = tx.Assignments().Delete(ctx, shiftID, actor.CompanyID, userID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrAssignmentNotFound
			}
			return derr
		}

		owner := shift.PrimaryOwnerID()
		if owner == nil || *owner != userID {
			return nil
		}

		// Legacy pointer follows the assignment set: repoint to the earliest
		// remaining confirmed assignee, or clear when the shift empties.
		remaining, derr := tx.Assignments().ListByShift(ctx, shiftID, actor.CompanyID)
		if derr != nil {
			return derr
		}
		var next *uuid.UUID
		for _, a := range remaining {
			if !a.IsConfirmed() {
				continue
			}
			if next == nil {
				id := a.UserID()
				next = &id
			}
		}
		shift.SetPrimaryOwner(next)
		shift.Touch(uc.clock.Now())
		return tx.Shifts().Update(ctx, shift)
	})
	if err != nil {
		return err
	}

	uc.notify(ctx, shared.Event{
		Kind:         shared.EventShiftUnassigned,
		CompanyID:    actor.CompanyID,
		TargetUserID: userID,
		Payload:      map[string]any{"shift_id": shiftID},
	})
	return nil
}

func (uc *assignmentUseCaseImpl) notify(ctx context.Context, event shared.Event) {
	if err := uc.notifier.Notify(ctx, event); err != nil {
		slog.Warn("notifier gateway failure", "kind", event.Kind, "error", err.Error())
	}
}

func groupConflicts(rows []shared.OverlappingAssignment) []schedule.UserConflict {
	if len(rows) == 0 {
		return nil
	}

	byUser := make(map[uuid.UUID][]schedule.ShiftRef)
	order := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if _, ok := byUser[row.UserID]; !ok {
			order = append(order, row.UserID)
		}
		byUser[row.UserID] = append(byUser[row.UserID], schedule.ShiftRef{
			ShiftID: row.ShiftID,
			Title:   row.Title,
			Window:  schedule.ReconstructTimeWindow(row.Start, row.End),
		})
	}

	conflicts := make([]schedule.UserConflict, 0, len(order))
	for _, userID := range order {
		conflicts = append(conflicts, schedule.UserConflict{
			UserID:            userID,
			ConflictingShifts: byUser[userID],
		})
	}
	return conflicts
}

func dedupeUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func sortedUUIDs(ids []uuid.UUID) []uuid.UUID {
	out := slices.Clone(ids)
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return out
}

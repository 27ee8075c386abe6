package commands

import (
	"context"
	"log/slog"
	"time"

	"rosterd/internal/domain/identity"
	"rosterd/internal/domain/request"
	"rosterd/internal/infra"
	"rosterd/internal/pkg/clock"
	"rosterd/internal/pkg/errs"
	"rosterd/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound      = errs.New("request not found")
	ErrOfferedShiftNotFound = errs.New("offered shift not found")
)

type OpenSwapParams struct {
	OriginalShiftID uuid.UUID
	TargetUserID    *uuid.UUID
	OfferedShiftID  *uuid.UUID
	Reason          string
}

type OpenTimeOffParams struct {
	Type   request.TimeOffType
	Start  time.Time
	End    time.Time
	Reason string
}

// RequestCommands drives the approval workflow. Approving a swap records
// the decision only — the caller realizes the schedule change through the
// assignment engine, keeping "was this approved" and "is the schedule
// consistent" independently testable.
type RequestCommands interface {
	OpenSwap(ctx context.Context, actor identity.Actor, params OpenSwapParams) (*request.Request, error)
	OpenTimeOff(ctx context.Context, actor identity.Actor, params OpenTimeOffParams) (*request.Request, error)
	Review(ctx context.Context, actor identity.Actor, requestID uuid.UUID, decision request.Decision, message string) (*request.Request, error)
	Cancel(ctx context.Context, actor identity.Actor, requestID uuid.UUID) (*request.Request, error)
}

type requestUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *requestUseCaseImpl) OpenSwap(ctx context.Context, actor identity.Actor, params OpenSwapParams) (*request.Request, error) {
	var req *request.Request

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Shifts().Find(ctx, params.OriginalShiftID, actor.CompanyID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrShiftNotFound
			}
			return derr
		}
		if params.OfferedShiftID != nil {
			if _, derr := tx.Shifts().Find(ctx, *params.OfferedShiftID, actor.CompanyID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrOfferedShiftNotFound
				}
				return derr
			}
		}

		var derr error
		req, derr = request.NewSwapRequest(actor.CompanyID, actor.UserID, request.SwapDetails{
			OriginalShiftID: params.OriginalShiftID,
			TargetUserID:    params.TargetUserID,
			OfferedShiftID:  params.OfferedShiftID,
			Reason:          params.Reason,
		}, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		return tx.Requests().Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyTransition(ctx, req, shared.EventRequestOpened)
	return req, nil
}

func (uc *requestUseCaseImpl) OpenTimeOff(ctx context.Context, actor identity.Actor, params OpenTimeOffParams) (*request.Request, error) {
	req, err := request.NewTimeOffRequest(actor.CompanyID, actor.UserID, request.TimeOffDetails{
		Type:   params.Type,
		Start:  params.Start,
		End:    params.End,
		Reason: params.Reason,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Requests().Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyTransition(ctx, req, shared.EventRequestOpened)
	return req, nil
}

func (uc *requestUseCaseImpl) Review(ctx context.Context, actor identity.Actor, requestID uuid.UUID, decision request.Decision, message string) (*request.Request, error) {
	var req *request.Request

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		req, derr = tx.Requests().Find(ctx, requestID, actor.CompanyID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return derr
		}

		if derr = req.Review(actor.UserID, decision, message, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Requests().Update(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	kind := shared.EventRequestApproved
	if req.Status() == request.StatusRejected {
		kind = shared.EventRequestRejected
	}
	uc.notifyTransition(ctx, req, kind)
	return req, nil
}

func (uc *requestUseCaseImpl) Cancel(ctx context.Context, actor identity.Actor, requestID uuid.UUID) (*request.Request, error) {
	var req *request.Request

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		req, derr = tx.Requests().Find(ctx, requestID, actor.CompanyID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return derr
		}

		if derr = req.Cancel(actor.UserID, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Requests().Update(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyTransition(ctx, req, shared.EventRequestCancelled)
	return req, nil
}

// notifyTransition fires the post-commit event. Gateway failures are
// logged and swallowed: the committed state change is the source of truth
// and is never undone by a notification outage.
func (uc *requestUseCaseImpl) notifyTransition(ctx context.Context, req *request.Request, kind string) {
	event := shared.Event{
		Kind:         kind,
		CompanyID:    req.CompanyID(),
		TargetUserID: req.Counterparty(),
		Payload: map[string]any{
			"request_id": req.ID(),
			"new_status": req.Status().String(),
		},
	}
	if err := uc.notifier.Notify(ctx, event); err != nil {
		slog.Warn("notifier gateway failure", "kind", kind, "request_id", req.ID().String(), "error", err.Error())
	}
}

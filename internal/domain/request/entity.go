package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid request state transition")
	ErrNotRequester      = errors.New("only the requester may cancel")
	ErrInvalidWindow     = errors.New("invalid time-off window")
	ErrInvalidKind       = errors.New("invalid request kind")
	ErrInvalidDecision   = errors.New("invalid review decision")
	ErrMissingShift      = errors.New("swap request requires an original shift")
)

// SwapDetails is the payload of a shift-swap request. TargetUserID and
// OfferedShiftID are optional: an open swap just asks a manager to find
// cover.
type SwapDetails struct {
	OriginalShiftID uuid.UUID
	TargetUserID    *uuid.UUID
	OfferedShiftID  *uuid.UUID
	Reason          string
}

// TimeOffDetails is the payload of a time-off request. The window is
// inclusive of single-instant requests: only start > end is rejected.
type TimeOffDetails struct {
	Type   TimeOffType
	Start  time.Time
	End    time.Time
	Reason string
}

type Request struct {
	id              uuid.UUID
	companyID       uuid.UUID
	requesterID     uuid.UUID
	kind            Kind
	status          Status
	swap            *SwapDetails
	timeOff         *TimeOffDetails
	reviewedBy      *uuid.UUID
	reviewedAt      *time.Time
	responseMessage string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewSwapRequest(companyID, requesterID uuid.UUID, details SwapDetails, now time.Time) (*Request, error) {
	if details.OriginalShiftID == uuid.Nil {
		return nil, ErrMissingShift
	}

	return &Request{
		id:          uuid.New(),
		companyID:   companyID,
		requesterID: requesterID,
		kind:        KindSwap,
		status:      StatusPending,
		swap:        &details,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func NewTimeOffRequest(companyID, requesterID uuid.UUID, details TimeOffDetails, now time.Time) (*Request, error) {
	if !details.Type.IsValid() {
		return nil, ErrInvalidKind
	}
	if details.Start.After(details.End) {
		return nil, ErrInvalidWindow
	}

	return &Request{
		id:          uuid.New(),
		companyID:   companyID,
		requesterID: requesterID,
		kind:        KindTimeOff,
		status:      StatusPending,
		timeOff:     &details,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, companyID, requesterID uuid.UUID,
	kind Kind,
	status Status,
	swap *SwapDetails,
	timeOff *TimeOffDetails,
	reviewedBy *uuid.UUID,
	reviewedAt *time.Time,
	responseMessage string,
	createdAt, updatedAt time.Time,
) (*Request, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !status.IsValid() {
		return nil, ErrInvalidTransition
	}
	return &Request{
		id:              id,
		companyID:       companyID,
		requesterID:     requesterID,
		kind:            kind,
		status:          status,
		swap:            swap,
		timeOff:         timeOff,
		reviewedBy:      reviewedBy,
		reviewedAt:      reviewedAt,
		responseMessage: responseMessage,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (r *Request) ID() uuid.UUID            { return r.id }
func (r *Request) CompanyID() uuid.UUID     { return r.companyID }
func (r *Request) RequesterID() uuid.UUID   { return r.requesterID }
func (r *Request) Kind() Kind               { return r.kind }
func (r *Request) Status() Status           { return r.status }
func (r *Request) Swap() *SwapDetails       { return r.swap }
func (r *Request) TimeOff() *TimeOffDetails { return r.timeOff }
func (r *Request) ReviewedBy() *uuid.UUID   { return r.reviewedBy }
func (r *Request) ReviewedAt() *time.Time   { return r.reviewedAt }
func (r *Request) ResponseMessage() string  { return r.responseMessage }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }
func (r *Request) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

// Review moves a pending request to approved or rejected and records the
// reviewer. Terminal states are immutable.
func (r *Request) Review(reviewerID uuid.UUID, decision Decision, message string, now time.Time) error {
	if !decision.IsValid() {
		return ErrInvalidDecision
	}
	if r.status != StatusPending {
		return ErrInvalidTransition
	}

	if decision == DecisionApproved {
		r.status = StatusApproved
	} else {
		r.status = StatusRejected
	}
	reviewer := reviewerID
	reviewedAt := now
	r.reviewedBy = &reviewer
	r.reviewedAt = &reviewedAt
	r.responseMessage = message
	r.updatedAt = now
	return nil
}

// Cancel moves a pending request to cancelled. Only the original requester
// may cancel.
func (r *Request) Cancel(actorID uuid.UUID, now time.Time) error {
	if actorID != r.requesterID {
		return ErrNotRequester
	}
	if r.status != StatusPending {
		return ErrInvalidTransition
	}

	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// Counterparty is the user to notify after a transition: the swap target
// when one exists, otherwise the requester.
func (r *Request) Counterparty() uuid.UUID {
	if r.kind == KindSwap && r.swap != nil && r.swap.TargetUserID != nil {
		return *r.swap.TargetUserID
	}
	return r.requesterID
}

package queries

import (
	"context"

	"rosterd/internal/domain/identity"
	"rosterd/internal/infra"
	"rosterd/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrShiftNotFound = errs.New("shift not found")

type shiftScopeKind int

const (
	scopeStaff shiftScopeKind = iota
	scopeManager
)

// ShiftListScope is a closed set of statically-typed list filters, one per
// caller role, selected by tag instead of a dynamically built where clause.
type ShiftListScope struct {
	kind        shiftScopeKind
	staffUserID uuid.UUID
}

// ScopeForStaff limits the listing to shifts the user is assigned to.
func ScopeForStaff(userID uuid.UUID) ShiftListScope {
	return ShiftListScope{kind: scopeStaff, staffUserID: userID}
}

// ScopeForManager lists every shift in the company.
func ScopeForManager() ShiftListScope {
	return ShiftListScope{kind: scopeManager}
}

// ScopeForActor picks the widest scope the actor's role allows.
func ScopeForActor(actor identity.Actor) ShiftListScope {
	if actor.Role.CanManageSchedule() {
		return ScopeForManager()
	}
	return ScopeForStaff(actor.UserID)
}

func (s ShiftListScope) IsStaff() bool {
	return s.kind == scopeStaff
}

func (s ShiftListScope) StaffUserID() uuid.UUID {
	return s.staffUserID
}

type ShiftQueries interface {
	GetByID(ctx context.Context, companyID, shiftID uuid.UUID) (*ShiftView, error)
	List(ctx context.Context, companyID uuid.UUID, scope ShiftListScope) ([]*ShiftView, error)
	ListAssignments(ctx context.Context, companyID, shiftID uuid.UUID) ([]*AssignmentView, error)
}

type ShiftReadStore interface {
	FindByID(ctx context.Context, companyID, shiftID uuid.UUID) (*ShiftView, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*ShiftView, error)
	FindByAssignedUser(ctx context.Context, companyID, userID uuid.UUID) ([]*ShiftView, error)
	FindAssignmentsByShift(ctx context.Context, companyID, shiftID uuid.UUID) ([]*AssignmentView, error)
}

type shiftQueriesImpl struct {
	store ShiftReadStore
}

func NewShiftQueries(store ShiftReadStore) ShiftQueries {
	return &shiftQueriesImpl{store: store}
}

func (q *shiftQueriesImpl) GetByID(ctx context.Context, companyID, shiftID uuid.UUID) (*ShiftView, error) {
	view, err := q.store.FindByID(ctx, companyID, shiftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *shiftQueriesImpl) List(ctx context.Context, companyID uuid.UUID, scope ShiftListScope) ([]*ShiftView, error) {
	if scope.IsStaff() {
		return q.store.FindByAssignedUser(ctx, companyID, scope.StaffUserID())
	}
	return q.store.FindByCompany(ctx, companyID)
}

func (q *shiftQueriesImpl) ListAssignments(ctx context.Context, companyID, shiftID uuid.UUID) ([]*AssignmentView, error) {
	// Surface missing/foreign shifts as not-found rather than an empty list.
	if _, err := q.GetByID(ctx, companyID, shiftID); err != nil {
		return nil, err
	}
	return q.store.FindAssignmentsByShift(ctx, companyID, shiftID)
}

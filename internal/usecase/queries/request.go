package queries

import (
	"context"

	"rosterd/internal/domain/identity"
	"rosterd/internal/infra"
	"rosterd/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("request not found")

type RequestQueries interface {
	// GetByID hides other users' requests from non-managers behind
	// not-found, so visibility cannot be probed.
	GetByID(ctx context.Context, actor identity.Actor, requestID uuid.UUID) (*RequestView, error)
	List(ctx context.Context, actor identity.Actor) ([]*RequestView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, companyID, requestID uuid.UUID) (*RequestView, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*RequestView, error)
	FindByRequester(ctx context.Context, companyID, requesterID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, actor identity.Actor, requestID uuid.UUID) (*RequestView, error) {
	view, err := q.store.FindByID(ctx, actor.CompanyID, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if !actor.Role.CanManageSchedule() && view.RequesterID != actor.UserID {
		isCounterparty := view.TargetUserID != nil && *view.TargetUserID == actor.UserID
		if !isCounterparty {
			return nil, ErrRequestNotFound
		}
	}
	return view, nil
}

func (q *requestQueriesImpl) List(ctx context.Context, actor identity.Actor) ([]*RequestView, error) {
	if actor.Role.CanManageSchedule() {
		return q.store.FindByCompany(ctx, actor.CompanyID)
	}
	return q.store.FindByRequester(ctx, actor.CompanyID, actor.UserID)
}

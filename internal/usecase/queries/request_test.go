//go:build unit

package queries_test

import (
	"context"
	"testing"

	"rosterd/internal/domain/identity"
	"rosterd/internal/infra"
	"rosterd/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestStore struct {
	views map[uuid.UUID]*queries.RequestView
}

func (s *fakeRequestStore) FindByID(_ context.Context, companyID, requestID uuid.UUID) (*queries.RequestView, error) {
	view, ok := s.views[requestID]
	if !ok || view.CompanyID != companyID {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return view, nil
}

func (s *fakeRequestStore) FindByCompany(_ context.Context, companyID uuid.UUID) ([]*queries.RequestView, error) {
	var out []*queries.RequestView
	for _, view := range s.views {
		if view.CompanyID == companyID {
			out = append(out, view)
		}
	}
	return out, nil
}

func (s *fakeRequestStore) FindByRequester(_ context.Context, companyID, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	var out []*queries.RequestView
	for _, view := range s.views {
		if view.CompanyID != companyID {
			continue
		}
		if view.RequesterID == requesterID || (view.TargetUserID != nil && *view.TargetUserID == requesterID) {
			out = append(out, view)
		}
	}
	return out, nil
}

func TestRequestQueriesGetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	requesterID := uuid.New()
	targetID := uuid.New()

	view := &queries.RequestView{
		ID:           uuid.New(),
		CompanyID:    companyID,
		RequesterID:  requesterID,
		Kind:         "swap",
		Status:       "pending",
		TargetUserID: &targetID,
	}
	q := queries.NewRequestQueries(&fakeRequestStore{
		views: map[uuid.UUID]*queries.RequestView{view.ID: view},
	})

	t.Run("requester sees own request", func(t *testing.T) {
		actor := identity.Actor{UserID: requesterID, CompanyID: companyID, Role: identity.RoleStaff}
		got, err := q.GetByID(ctx, actor, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("swap target sees the request", func(t *testing.T) {
		actor := identity.Actor{UserID: targetID, CompanyID: companyID, Role: identity.RoleStaff}
		_, err := q.GetByID(ctx, actor, view.ID)
		require.NoError(t, err)
	})

	t.Run("unrelated staff gets not-found", func(t *testing.T) {
		actor := identity.Actor{UserID: uuid.New(), CompanyID: companyID, Role: identity.RoleStaff}
		_, err := q.GetByID(ctx, actor, view.ID)
		assert.ErrorIs(t, err, queries.ErrRequestNotFound)
	})

	t.Run("manager sees everything in the company", func(t *testing.T) {
		actor := identity.Actor{UserID: uuid.New(), CompanyID: companyID, Role: identity.RoleManager}
		_, err := q.GetByID(ctx, actor, view.ID)
		require.NoError(t, err)
	})

	t.Run("foreign tenant manager gets not-found", func(t *testing.T) {
		actor := identity.Actor{UserID: uuid.New(), CompanyID: uuid.New(), Role: identity.RoleManager}
		_, err := q.GetByID(ctx, actor, view.ID)
		assert.ErrorIs(t, err, queries.ErrRequestNotFound)
	})
}

func TestRequestQueriesList(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	requesterID := uuid.New()

	mine := &queries.RequestView{ID: uuid.New(), CompanyID: companyID, RequesterID: requesterID, Kind: "time_off", Status: "pending"}
	theirs := &queries.RequestView{ID: uuid.New(), CompanyID: companyID, RequesterID: uuid.New(), Kind: "time_off", Status: "pending"}
	q := queries.NewRequestQueries(&fakeRequestStore{
		views: map[uuid.UUID]*queries.RequestView{mine.ID: mine, theirs.ID: theirs},
	})

	t.Run("staff list is scoped to their own requests", func(t *testing.T) {
		actor := identity.Actor{UserID: requesterID, CompanyID: companyID, Role: identity.RoleStaff}
		views, err := q.List(ctx, actor)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, mine.ID, views[0].ID)
	})

	t.Run("manager list covers the company", func(t *testing.T) {
		actor := identity.Actor{UserID: uuid.New(), CompanyID: companyID, Role: identity.RoleManager}
		views, err := q.List(ctx, actor)
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})
}

package readstore

import (
	"context"
	"errors"

	"rosterd/internal/infra"
	"rosterd/internal/infra/db"
	"rosterd/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestViewColumns = `
	r.id, r.company_id, r.requester_id, r.kind, r.status,
	r.original_shift_id, r.target_user_id, r.offered_shift_id,
	r.time_off_type, r.starts_at, r.ends_at, r.reason,
	r.reviewed_by, r.reviewed_at, NULLIF(r.response_message, ''),
	r.created_at, r.updated_at`

const findRequestViewSQL = `
SELECT` + requestViewColumns + `
FROM schedule_requests r
WHERE r.id = $1 AND r.company_id = $2`

func (s *RequestReadStore) FindByID(ctx context.Context, companyID, requestID uuid.UUID) (*queries.RequestView, error) {
	view, err := scanRequestView(s.db.QueryRow(ctx, findRequestViewSQL, requestID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	return view, nil
}

const listRequestViewsSQL = `
SELECT` + requestViewColumns + `
FROM schedule_requests r
WHERE r.company_id = $1
ORDER BY r.created_at DESC, r.id`

func (s *RequestReadStore) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := s.db.Query(ctx, listRequestViewsSQL, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	return collectRequestViews(rows)
}

// FindByRequester also returns swap requests that name the user as the
// target, so staff can see offers made to them.
const listRequestViewsByUserSQL = `
SELECT` + requestViewColumns + `
FROM schedule_requests r
WHERE r.company_id = $1
  AND (r.requester_id = $2 OR r.target_user_id = $2)
ORDER BY r.created_at DESC, r.id`

func (s *RequestReadStore) FindByRequester(ctx context.Context, companyID, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := s.db.Query(ctx, listRequestViewsByUserSQL, companyID, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests for user", err)
	}
	return collectRequestViews(rows)
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var v queries.RequestView
	err := row.Scan(
		&v.ID, &v.CompanyID, &v.RequesterID, &v.Kind, &v.Status,
		&v.OriginalShiftID, &v.TargetUserID, &v.OfferedShiftID,
		&v.TimeOffType, &v.StartsAt, &v.EndsAt, &v.Reason,
		&v.ReviewedBy, &v.ReviewedAt, &v.ResponseMessage,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectRequestViews(rows pgx.Rows) ([]*queries.RequestView, error) {
	defer rows.Close()

	var views []*queries.RequestView
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request views", err)
	}
	return views, nil
}

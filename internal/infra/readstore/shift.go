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

type ShiftReadStore struct {
	db db.DBTX
}

func NewShiftReadStore(dbtx db.DBTX) *ShiftReadStore {
	return &ShiftReadStore{db: dbtx}
}

const shiftViewColumns = `
	s.id, s.company_id, s.title, s.starts_at, s.ends_at, s.capacity, s.primary_owner_id,
	(SELECT count(*) FROM shift_assignments a
	 WHERE a.shift_id = s.id AND a.status = 'confirmed') AS confirmed_count,
	s.created_at, s.updated_at`

const findShiftViewSQL = `
SELECT` + shiftViewColumns + `
FROM shifts s
WHERE s.id = $1 AND s.company_id = $2`

func (s *ShiftReadStore) FindByID(ctx context.Context, companyID, shiftID uuid.UUID) (*queries.ShiftView, error) {
	view, err := scanShiftView(s.db.QueryRow(ctx, findShiftViewSQL, shiftID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("shift not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shift", err)
	}
	return view, nil
}

const listShiftViewsSQL = `
SELECT` + shiftViewColumns + `
FROM shifts s
WHERE s.company_id = $1
ORDER BY s.starts_at, s.id`

func (s *ShiftReadStore) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*queries.ShiftView, error) {
	rows, err := s.db.Query(ctx, listShiftViewsSQL, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shifts", err)
	}
	return collectShiftViews(rows)
}

const listShiftViewsByUserSQL = `
SELECT` + shiftViewColumns + `
FROM shifts s
JOIN shift_assignments m ON m.shift_id = s.id AND m.user_id = $2
WHERE s.company_id = $1
ORDER BY s.starts_at, s.id`

func (s *ShiftReadStore) FindByAssignedUser(ctx context.Context, companyID, userID uuid.UUID) ([]*queries.ShiftView, error) {
	rows, err := s.db.Query(ctx, listShiftViewsByUserSQL, companyID, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shifts for user", err)
	}
	return collectShiftViews(rows)
}

const listAssignmentViewsSQL = `
SELECT a.id, a.shift_id, a.user_id, a.status, NULLIF(a.notes, ''), a.created_at
FROM shift_assignments a
WHERE a.shift_id = $1 AND a.company_id = $2
ORDER BY a.created_at, a.id`

func (s *ShiftReadStore) FindAssignmentsByShift(ctx context.Context, companyID, shiftID uuid.UUID) ([]*queries.AssignmentView, error) {
	rows, err := s.db.Query(ctx, listAssignmentViewsSQL, shiftID, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments", err)
	}
	defer rows.Close()

	var views []*queries.AssignmentView
	for rows.Next() {
		var v queries.AssignmentView
		if err := rows.Scan(&v.ID, &v.ShiftID, &v.UserID, &v.Status, &v.Notes, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read assignment views", err)
	}
	return views, nil
}

func scanShiftView(row pgx.Row) (*queries.ShiftView, error) {
	var v queries.ShiftView
	err := row.Scan(
		&v.ID, &v.CompanyID, &v.Title, &v.StartsAt, &v.EndsAt,
		&v.Capacity, &v.PrimaryOwnerID, &v.ConfirmedCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectShiftViews(rows pgx.Rows) ([]*queries.ShiftView, error) {
	defer rows.Close()

	var views []*queries.ShiftView
	for rows.Next() {
		view, err := scanShiftView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan shift view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read shift views", err)
	}
	return views, nil
}

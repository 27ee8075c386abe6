package repository

import (
	"context"
	"errors"
	"time"

	"rosterd/internal/domain/schedule"
	"rosterd/internal/infra"
	"rosterd/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ShiftRepository struct {
	db db.DBTX
}

func NewShiftRepository(dbtx db.DBTX) *ShiftRepository {
	return &ShiftRepository{db: dbtx}
}

const insertShiftSQL = `
INSERT INTO shifts (id, company_id, title, starts_at, ends_at, capacity, primary_owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *ShiftRepository) Create(ctx context.Context, shift *schedule.Shift) error {
	_, err := r.db.Exec(ctx, insertShiftSQL,
		shift.ID(),
		shift.CompanyID(),
		shift.Title(),
		shift.Window().Start(),
		shift.Window().End(),
		shift.Capacity(),
		shift.PrimaryOwnerID(),
		shift.CreatedAt(),
		shift.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create shift", err)
	}
	return nil
}

const updateShiftSQL = `
UPDATE shifts
SET title = $3, starts_at = $4, ends_at = $5, capacity = $6, primary_owner_id = $7, updated_at = $8
WHERE id = $1 AND company_id = $2`

func (r *ShiftRepository) Update(ctx context.Context, shift *schedule.Shift) error {
	tag, err := r.db.Exec(ctx, updateShiftSQL,
		shift.ID(),
		shift.CompanyID(),
		shift.Title(),
		shift.Window().Start(),
		shift.Window().End(),
		shift.Capacity(),
		shift.PrimaryOwnerID(),
		shift.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update shift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete cascades to shift_assignments through the FK.
func (r *ShiftRepository) Delete(ctx context.Context, shiftID, companyID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shifts WHERE id = $1 AND company_id = $2`, shiftID, companyID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete shift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shift not found", nil, infra.KindNotFound)
	}
	return nil
}

const findShiftSQL = `
SELECT id, company_id, title, starts_at, ends_at, capacity, primary_owner_id, created_at, updated_at
FROM shifts
WHERE id = $1 AND company_id = $2`

func (r *ShiftRepository) Find(ctx context.Context, shiftID, companyID uuid.UUID) (*schedule.Shift, error) {
	return r.scanShift(r.db.QueryRow(ctx, findShiftSQL, shiftID, companyID))
}

func (r *ShiftRepository) FindForUpdate(ctx context.Context, shiftID, companyID uuid.UUID) (*schedule.Shift, error) {
	return r.scanShift(r.db.QueryRow(ctx, findShiftSQL+` FOR UPDATE`, shiftID, companyID))
}

func (r *ShiftRepository) scanShift(row pgx.Row) (*schedule.Shift, error) {
	var (
		id             uuid.UUID
		companyID      uuid.UUID
		title          string
		startsAt       time.Time
		endsAt         time.Time
		capacity       int
		primaryOwnerID *uuid.UUID
		createdAt      time.Time
		updatedAt      time.Time
	)

	err := row.Scan(&id, &companyID, &title, &startsAt, &endsAt, &capacity, &primaryOwnerID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("shift not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shift", err)
	}

	return schedule.ReconstructShift(
		id, companyID, title,
		schedule.ReconstructTimeWindow(startsAt, endsAt),
		capacity, primaryOwnerID, createdAt, updatedAt,
	), nil
}

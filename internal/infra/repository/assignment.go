package repository

import (
	"context"
	"time"

	"rosterd/internal/domain/schedule"
	"rosterd/internal/infra"
	"rosterd/internal/infra/db"
	"rosterd/internal/usecase/shared"

	"github.com/google/uuid"
)

type AssignmentRepository struct {
	db db.DBTX
}

func NewAssignmentRepository(dbtx db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: dbtx}
}

const insertAssignmentSQL = `
INSERT INTO shift_assignments (id, shift_id, company_id, user_id, status, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *AssignmentRepository) Insert(ctx context.Context, assignment *schedule.Assignment) error {
	_, err := r.db.Exec(ctx, insertAssignmentSQL,
		assignment.ID(),
		assignment.ShiftID(),
		assignment.CompanyID(),
		assignment.UserID(),
		assignment.Status().String(),
		assignment.Notes().String(),
		assignment.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert assignment", err)
	}
	return nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, shiftID, companyID, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM shift_assignments WHERE shift_id = $1 AND company_id = $2 AND user_id = $3`,
		shiftID, companyID, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete assignment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("assignment not found", nil, infra.KindNotFound)
	}
	return nil
}

const listAssignmentsSQL = `
SELECT id, shift_id, company_id, user_id, status, notes, created_at
FROM shift_assignments
WHERE shift_id = $1 AND company_id = $2
ORDER BY created_at, id`

func (r *AssignmentRepository) ListByShift(ctx context.Context, shiftID, companyID uuid.UUID) ([]*schedule.Assignment, error) {
	rows, err := r.db.Query(ctx, listAssignmentsSQL, shiftID, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments", err)
	}
	defer rows.Close()

	var assignments []*schedule.Assignment
	for rows.Next() {
		var (
			id        uuid.UUID
			sID       uuid.UUID
			cID       uuid.UUID
			userID    uuid.UUID
			status    string
			notes     string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &sID, &cID, &userID, &status, &notes, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment", err)
		}
		assignment, err := schedule.ReconstructAssignment(
			id, sID, cID, userID,
			schedule.AssignmentStatus(status),
			schedule.NewNotes(notes),
			createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt assignment row", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read assignments", err)
	}
	return assignments, nil
}

const findOverlappingSQL = `
SELECT a.user_id, s.id, s.title, s.starts_at, s.ends_at
FROM shift_assignments a
JOIN shifts s ON s.id = a.shift_id
WHERE a.company_id = $1
  AND a.user_id = ANY($2)
  AND a.status = 'confirmed'
  AND a.shift_id <> $3
  AND s.starts_at < $4
  AND s.ends_at > $5
ORDER BY a.user_id, s.starts_at`

func (r *AssignmentRepository) FindOverlapping(
	ctx context.Context,
	companyID uuid.UUID,
	userIDs []uuid.UUID,
	window schedule.TimeWindow,
	excludeShiftID uuid.UUID,
) ([]shared.OverlappingAssignment, error) {
	rows, err := r.db.Query(ctx, findOverlappingSQL,
		companyID, userIDs, excludeShiftID, window.End(), window.Start(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping assignments", err)
	}
	defer rows.Close()

	var overlaps []shared.OverlappingAssignment
	for rows.Next() {
		var o shared.OverlappingAssignment
		if err := rows.Scan(&o.UserID, &o.ShiftID, &o.Title, &o.Start, &o.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping assignment", err)
		}
		overlaps = append(overlaps, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overlapping assignments", err)
	}
	return overlaps, nil
}

// LockUsers takes transaction-scoped advisory locks keyed on
// (company, user). Callers pass IDs sorted; unnest preserves array order,
// so every concurrent batch acquires locks in the same order.
const lockUsersSQL = `
SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || k, 0))
FROM unnest($2::text[]) AS k`

func (r *AssignmentRepository) LockUsers(ctx context.Context, companyID uuid.UUID, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = id.String()
	}
	if _, err := r.db.Exec(ctx, lockUsersSQL, companyID.String(), keys); err != nil {
		return infra.WrapRepoErr("failed to lock users", err)
	}
	return nil
}

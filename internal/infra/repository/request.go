package repository

import (
	"context"
	"errors"
	"time"

	"rosterd/internal/domain/request"
	"rosterd/internal/infra"
	"rosterd/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

const insertRequestSQL = `
INSERT INTO schedule_requests (
	id, company_id, requester_id, kind, status,
	original_shift_id, target_user_id, offered_shift_id,
	time_off_type, starts_at, ends_at, reason,
	reviewed_by, reviewed_at, response_message, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	row := flattenRequest(req)
	_, err := r.db.Exec(ctx, insertRequestSQL,
		row.id, row.companyID, row.requesterID, row.kind, row.status,
		row.originalShiftID, row.targetUserID, row.offeredShiftID,
		row.timeOffType, row.startsAt, row.endsAt, row.reason,
		row.reviewedBy, row.reviewedAt, row.responseMessage, row.createdAt, row.updatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create request", err)
	}
	return nil
}

const updateRequestSQL = `
UPDATE schedule_requests
SET status = $3, reviewed_by = $4, reviewed_at = $5, response_message = $6, updated_at = $7
WHERE id = $1 AND company_id = $2`

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	tag, err := r.db.Exec(ctx, updateRequestSQL,
		req.ID(), req.CompanyID(),
		req.Status().String(), req.ReviewedBy(), req.ReviewedAt(), req.ResponseMessage(), req.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

const findRequestSQL = `
SELECT id, company_id, requester_id, kind, status,
	original_shift_id, target_user_id, offered_shift_id,
	time_off_type, starts_at, ends_at, reason,
	reviewed_by, reviewed_at, response_message, created_at, updated_at
FROM schedule_requests
WHERE id = $1 AND company_id = $2
FOR UPDATE`

func (r *RequestRepository) Find(ctx context.Context, requestID, companyID uuid.UUID) (*request.Request, error) {
	var row requestRow
	err := r.db.QueryRow(ctx, findRequestSQL, requestID, companyID).Scan(
		&row.id, &row.companyID, &row.requesterID, &row.kind, &row.status,
		&row.originalShiftID, &row.targetUserID, &row.offeredShiftID,
		&row.timeOffType, &row.startsAt, &row.endsAt, &row.reason,
		&row.reviewedBy, &row.reviewedAt, &row.responseMessage, &row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	return row.toDomain()
}

type requestRow struct {
	id              uuid.UUID
	companyID       uuid.UUID
	requesterID     uuid.UUID
	kind            string
	status          string
	originalShiftID *uuid.UUID
	targetUserID    *uuid.UUID
	offeredShiftID  *uuid.UUID
	timeOffType     *string
	startsAt        *time.Time
	endsAt          *time.Time
	reason          *string
	reviewedBy      *uuid.UUID
	reviewedAt      *time.Time
	responseMessage string
	createdAt       time.Time
	updatedAt       time.Time
}

func flattenRequest(req *request.Request) requestRow {
	row := requestRow{
		id:              req.ID(),
		companyID:       req.CompanyID(),
		requesterID:     req.RequesterID(),
		kind:            req.Kind().String(),
		status:          req.Status().String(),
		reviewedBy:      req.ReviewedBy(),
		reviewedAt:      req.ReviewedAt(),
		responseMessage: req.ResponseMessage(),
		createdAt:       req.CreatedAt(),
		updatedAt:       req.UpdatedAt(),
	}

	if swap := req.Swap(); swap != nil {
		originalShiftID := swap.OriginalShiftID
		row.originalShiftID = &originalShiftID
		row.targetUserID = swap.TargetUserID
		row.offeredShiftID = swap.OfferedShiftID
		if swap.Reason != "" {
			reason := swap.Reason
			row.reason = &reason
		}
	}
	if timeOff := req.TimeOff(); timeOff != nil {
		timeOffType := string(timeOff.Type)
		start := timeOff.Start
		end := timeOff.End
		row.timeOffType = &timeOffType
		row.startsAt = &start
		row.endsAt = &end
		if timeOff.Reason != "" {
			reason := timeOff.Reason
			row.reason = &reason
		}
	}
	return row
}

func (row requestRow) toDomain() (*request.Request, error) {
	var swap *request.SwapDetails
	var timeOff *request.TimeOffDetails

	reason := ""
	if row.reason != nil {
		reason = *row.reason
	}

	switch request.Kind(row.kind) {
	case request.KindSwap:
		if row.originalShiftID == nil {
			return nil, infra.WrapRepoErr("corrupt swap request row", nil)
		}
		swap = &request.SwapDetails{
			OriginalShiftID: *row.originalShiftID,
			TargetUserID:    row.targetUserID,
			OfferedShiftID:  row.offeredShiftID,
			Reason:          reason,
		}
	case request.KindTimeOff:
		if row.timeOffType == nil || row.startsAt == nil || row.endsAt == nil {
			return nil, infra.WrapRepoErr("corrupt time-off request row", nil)
		}
		timeOff = &request.TimeOffDetails{
			Type:   request.TimeOffType(*row.timeOffType),
			Start:  *row.startsAt,
			End:    *row.endsAt,
			Reason: reason,
		}
	}

	req, err := request.Reconstruct(
		row.id, row.companyID, row.requesterID,
		request.Kind(row.kind), request.Status(row.status),
		swap, timeOff,
		row.reviewedBy, row.reviewedAt, row.responseMessage,
		row.createdAt, row.updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt request row", err)
	}
	return req, nil
}

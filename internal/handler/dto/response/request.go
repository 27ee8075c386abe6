package response

import (
	"log/slog"
	"time"

	reqdomain "rosterd/internal/domain/request"
	"rosterd/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RequestResponse struct {
	ID              uuid.UUID  `json:"id"`
	CompanyID       uuid.UUID  `json:"companyId"`
	RequesterID     uuid.UUID  `json:"requesterId"`
	Kind            string     `json:"kind"`
	Status          string     `json:"status"`
	OriginalShiftID *uuid.UUID `json:"originalShiftId,omitempty"`
	TargetUserID    *uuid.UUID `json:"targetUserId,omitempty"`
	OfferedShiftID  *uuid.UUID `json:"offeredShiftId,omitempty"`
	TimeOffType     *string    `json:"timeOffType,omitempty"`
	StartsAt        *time.Time `json:"startsAt,omitempty"`
	EndsAt          *time.Time `json:"endsAt,omitempty"`
	Reason          *string    `json:"reason,omitempty"`
	ReviewedBy      *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	ResponseMessage *string    `json:"responseMessage,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromRequestView(view *queries.RequestView) *RequestResponse {
	var resp RequestResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map request view", "error", err.Error())
	}
	return &resp
}

func FromRequestViews(views []*queries.RequestView) []*RequestResponse {
	resp := make([]*RequestResponse, len(views))
	for i, view := range views {
		resp[i] = FromRequestView(view)
	}
	return resp
}

// FromRequest renders the aggregate a workflow command just committed.
func FromRequest(req *reqdomain.Request) *RequestResponse {
	resp := &RequestResponse{
		ID:          req.ID(),
		CompanyID:   req.CompanyID(),
		RequesterID: req.RequesterID(),
		Kind:        req.Kind().String(),
		Status:      req.Status().String(),
		ReviewedBy:  req.ReviewedBy(),
		ReviewedAt:  req.ReviewedAt(),
		CreatedAt:   req.CreatedAt(),
		UpdatedAt:   req.UpdatedAt(),
	}
	if msg := req.ResponseMessage(); msg != "" {
		resp.ResponseMessage = &msg
	}
	if swap := req.Swap(); swap != nil {
		id := swap.OriginalShiftID
		resp.OriginalShiftID = &id
		resp.TargetUserID = swap.TargetUserID
		resp.OfferedShiftID = swap.OfferedShiftID
		if swap.Reason != "" {
			reason := swap.Reason
			resp.Reason = &reason
		}
	}
	if timeOff := req.TimeOff(); timeOff != nil {
		timeOffType := string(timeOff.Type)
		start := timeOff.Start
		end := timeOff.End
		resp.TimeOffType = &timeOffType
		resp.StartsAt = &start
		resp.EndsAt = &end
		if timeOff.Reason != "" {
			reason := timeOff.Reason
			resp.Reason = &reason
		}
	}
	return resp
}

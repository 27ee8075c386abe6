package response

import (
	"log/slog"
	"time"

	"rosterd/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ShiftResponse struct {
	ID             uuid.UUID  `json:"id"`
	CompanyID      uuid.UUID  `json:"companyId"`
	Title          string     `json:"title"`
	StartsAt       time.Time  `json:"startsAt"`
	EndsAt         time.Time  `json:"endsAt"`
	Capacity       int32      `json:"capacity"`
	PrimaryOwnerID *uuid.UUID `json:"primaryOwnerId,omitempty"`
	ConfirmedCount int32      `json:"confirmedCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromShiftView(view *queries.ShiftView) *ShiftResponse {
	var resp ShiftResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map shift view", "error", err.Error())
	}
	return &resp
}

func FromShiftViews(views []*queries.ShiftView) []*ShiftResponse {
	resp := make([]*ShiftResponse, len(views))
	for i, view := range views {
		resp[i] = FromShiftView(view)
	}
	return resp
}

package request

import (
	"strings"
	"time"

	reqdomain "rosterd/internal/domain/request"
	"rosterd/internal/usecase/commands"

	"github.com/google/uuid"
)

type OpenSwapRequest struct {
	OriginalShiftID uuid.UUID  `json:"original_shift_id" binding:"required"`
	TargetUserID    *uuid.UUID `json:"target_user_id,omitempty"`
	OfferedShiftID  *uuid.UUID `json:"offered_shift_id,omitempty"`
	Reason          string     `json:"reason"`
}

func (r OpenSwapRequest) ToParams() commands.OpenSwapParams {
	return commands.OpenSwapParams{
		OriginalShiftID: r.OriginalShiftID,
		TargetUserID:    r.TargetUserID,
		OfferedShiftID:  r.OfferedShiftID,
		Reason:          strings.TrimSpace(r.Reason),
	}
}

type OpenTimeOffRequest struct {
	Type     string    `json:"type" binding:"required,timeofftype"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
	Reason   string    `json:"reason"`
}

func (r OpenTimeOffRequest) ToParams() commands.OpenTimeOffParams {
	return commands.OpenTimeOffParams{
		Type:   reqdomain.TimeOffType(r.Type),
		Start:  r.StartsAt,
		End:    r.EndsAt,
		Reason: strings.TrimSpace(r.Reason),
	}
}

type ReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Message  string `json:"message"`
}

func (r ReviewRequest) ToDecision() reqdomain.Decision {
	return reqdomain.Decision(r.Decision)
}

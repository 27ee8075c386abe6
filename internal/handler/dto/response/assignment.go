package response

import (
	"log/slog"
	"time"

	"rosterd/internal/domain/schedule"
	"rosterd/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AssignmentResponse struct {
	ID        uuid.UUID `json:"id"`
	ShiftID   uuid.UUID `json:"shiftId"`
	UserID    uuid.UUID `json:"userId"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAssignmentView(view *queries.AssignmentView) *AssignmentResponse {
	var resp AssignmentResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map assignment view", "error", err.Error())
	}
	return &resp
}

func FromAssignmentViews(views []*queries.AssignmentView) []*AssignmentResponse {
	resp := make([]*AssignmentResponse, len(views))
	for i, view := range views {
		resp[i] = FromAssignmentView(view)
	}
	return resp
}

// FromAssignment renders an aggregate returned by the assignment engine,
// covering rows committed in the same call.
func FromAssignment(a *schedule.Assignment) *AssignmentResponse {
	var notes *string
	if s := a.Notes().String(); s != "" {
		notes = &s
	}
	return &AssignmentResponse{
		ID:        a.ID(),
		ShiftID:   a.ShiftID(),
		UserID:    a.UserID(),
		Status:    a.Status().String(),
		Notes:     notes,
		CreatedAt: a.CreatedAt(),
	}
}

func FromAssignments(as []*schedule.Assignment) []*AssignmentResponse {
	resp := make([]*AssignmentResponse, len(as))
	for i, a := range as {
		resp[i] = FromAssignment(a)
	}
	return resp
}

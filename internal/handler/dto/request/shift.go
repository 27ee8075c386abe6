package request

import (
	"time"

	"rosterd/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateShiftRequest struct {
	Title    string    `json:"title" binding:"required"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required,gtfield=StartsAt"`
	Capacity int       `json:"capacity" binding:"required,min=1"`
	OwnerID  uuid.UUID `json:"owner_id"`
}

func (r CreateShiftRequest) ToParams() commands.CreateShiftParams {
	return commands.CreateShiftParams{
		Title:    r.Title,
		Start:    r.StartsAt,
		End:      r.EndsAt,
		Capacity: r.Capacity,
		OwnerID:  r.OwnerID,
	}
}

// UpdateShiftRequest is a patch: absent fields keep their stored value.
type UpdateShiftRequest struct {
	Title    *string    `json:"title,omitempty"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Capacity *int       `json:"capacity,omitempty" binding:"omitempty,min=1"`
}

func (r UpdateShiftRequest) ToParams() commands.UpdateShiftParams {
	return commands.UpdateShiftParams{
		Title:    r.Title,
		Start:    r.StartsAt,
		End:      r.EndsAt,
		Capacity: r.Capacity,
	}
}

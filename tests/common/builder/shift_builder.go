//go:build unit || e2e

package builder

import (
	"time"

	"rosterd/internal/domain/schedule"
	reqdto "rosterd/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ShiftBuilder struct {
	CompanyID uuid.UUID
	Title     string
	StartsAt  time.Time
	EndsAt    time.Time
	Capacity  int
	OwnerID   uuid.UUID
	Now       time.Time
}

func NewShiftBuilder() *ShiftBuilder {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &ShiftBuilder{
		CompanyID: uuid.New(),
		Title:     "Morning shift",
		StartsAt:  day.Add(9 * time.Hour),
		EndsAt:    day.Add(17 * time.Hour),
		Capacity:  2,
		OwnerID:   uuid.Nil,
		Now:       day,
	}
}

func (b *ShiftBuilder) With(mutate func(*ShiftBuilder)) *ShiftBuilder {
	mutate(b)
	return b
}

func (b *ShiftBuilder) WithTitle(title string) *ShiftBuilder {
	b.Title = title
	return b
}

func (b *ShiftBuilder) WithWindow(start, end time.Time) *ShiftBuilder {
	b.StartsAt = start
	b.EndsAt = end
	return b
}

func (b *ShiftBuilder) WithCapacity(capacity int) *ShiftBuilder {
	b.Capacity = capacity
	return b
}

// BuildDomain bypasses window-order validation so entity checks can be
// exercised in isolation; window ordering itself is NewTimeWindow's job.
func (b *ShiftBuilder) BuildDomain() (*schedule.Shift, error) {
	window := schedule.ReconstructTimeWindow(b.StartsAt, b.EndsAt)
	return schedule.NewShift(b.CompanyID, b.Title, window, b.Capacity, b.OwnerID, b.Now)
}

func (b *ShiftBuilder) BuildCreateRequestDTO() reqdto.CreateShiftRequest {
	return reqdto.CreateShiftRequest{
		Title:    b.Title,
		StartsAt: b.StartsAt,
		EndsAt:   b.EndsAt,
		Capacity: b.Capacity,
		OwnerID:  b.OwnerID,
	}
}

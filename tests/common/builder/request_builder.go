//go:build unit || e2e

package builder

import (
	"time"

	"rosterd/internal/domain/request"

	"github.com/google/uuid"
)

type TimeOffBuilder struct {
	CompanyID   uuid.UUID
	RequesterID uuid.UUID
	Type        request.TimeOffType
	StartsAt    time.Time
	EndsAt      time.Time
	Reason      string
	Now         time.Time
}

func NewTimeOffBuilder() *TimeOffBuilder {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	return &TimeOffBuilder{
		CompanyID:   uuid.New(),
		RequesterID: uuid.New(),
		Type:        request.TimeOffVacation,
		StartsAt:    day,
		EndsAt:      day.Add(5 * 24 * time.Hour),
		Reason:      "Spring vacation",
		Now:         day.Add(-14 * 24 * time.Hour),
	}
}

func (b *TimeOffBuilder) With(mutate func(*TimeOffBuilder)) *TimeOffBuilder {
	mutate(b)
	return b
}

func (b *TimeOffBuilder) BuildDomain() (*request.Request, error) {
	return request.NewTimeOffRequest(b.CompanyID, b.RequesterID, request.TimeOffDetails{
		Type:   b.Type,
		Start:  b.StartsAt,
		End:    b.EndsAt,
		Reason: b.Reason,
	}, b.Now)
}

type SwapBuilder struct {
	CompanyID       uuid.UUID
	RequesterID     uuid.UUID
	OriginalShiftID uuid.UUID
	TargetUserID    *uuid.UUID
	OfferedShiftID  *uuid.UUID
	Reason          string
	Now             time.Time
}

func NewSwapBuilder() *SwapBuilder {
	return &SwapBuilder{
		CompanyID:       uuid.New(),
		RequesterID:     uuid.New(),
		OriginalShiftID: uuid.New(),
		Reason:          "Family appointment",
		Now:             time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}
}

func (b *SwapBuilder) With(mutate func(*SwapBuilder)) *SwapBuilder {
	mutate(b)
	return b
}

func (b *SwapBuilder) BuildDomain() (*request.Request, error) {
	return request.NewSwapRequest(b.CompanyID, b.RequesterID, request.SwapDetails{
		OriginalShiftID: b.OriginalShiftID,
		TargetUserID:    b.TargetUserID,
		OfferedShiftID:  b.OfferedShiftID,
		Reason:          b.Reason,
	}, b.Now)
}

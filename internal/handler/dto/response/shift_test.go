//go:build unit

package response_test

import (
	"testing"
	"time"

	"rosterd/internal/handler/dto/response"
	"rosterd/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestFromShiftView(t *testing.T) {
	ownerID := uuid.New()
	view := &queries.ShiftView{
		ID:             uuid.New(),
		CompanyID:      uuid.New(),
		Title:          "Morning shift",
		StartsAt:       time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
		Capacity:       3,
		PrimaryOwnerID: &ownerID,
		ConfirmedCount: 2,
		CreatedAt:      time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	expected := &response.ShiftResponse{
		ID:             view.ID,
		CompanyID:      view.CompanyID,
		Title:          view.Title,
		StartsAt:       view.StartsAt,
		EndsAt:         view.EndsAt,
		Capacity:       view.Capacity,
		PrimaryOwnerID: &ownerID,
		ConfirmedCount: view.ConfirmedCount,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}

	if diff := cmp.Diff(expected, response.FromShiftView(view)); diff != "" {
		t.Errorf("FromShiftView() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromShiftViews(t *testing.T) {
	views := []*queries.ShiftView{
		{ID: uuid.New(), Title: "Morning shift"},
		{ID: uuid.New(), Title: "Evening shift"},
	}

	resp := response.FromShiftViews(views)
	if len(resp) != len(views) {
		t.Fatalf("expected %d responses, got %d", len(views), len(resp))
	}
	for i := range views {
		if resp[i].ID != views[i].ID {
			t.Errorf("response %d: expected ID %s, got %s", i, views[i].ID, resp[i].ID)
		}
	}
}

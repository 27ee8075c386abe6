//go:build unit

package request_test

import (
	"testing"
	"time"

	"rosterd/internal/domain/request"
	"rosterd/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewTime = time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)

func TestNewSwapRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		req, err := builder.NewSwapBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, req)

		assert.Equal(t, request.KindSwap, req.Kind())
		assert.Equal(t, request.StatusPending, req.Status())
		assert.True(t, req.IsPending())
		assert.Nil(t, req.ReviewedBy())
		assert.Nil(t, req.ReviewedAt())
		assert.NotNil(t, req.Swap())
		assert.Nil(t, req.TimeOff())
	})

	t.Run("missing original shift", func(t *testing.T) {
		_, err := builder.NewSwapBuilder().With(func(b *builder.SwapBuilder) {
			b.OriginalShiftID = uuid.Nil
		}).BuildDomain()
		assert.ErrorIs(t, err, request.ErrMissingShift)
	})
}

func TestNewTimeOffRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		req, err := builder.NewTimeOffBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, request.KindTimeOff, req.Kind())
		assert.Equal(t, request.StatusPending, req.Status())
	})

	t.Run("unknown time-off type", func(t *testing.T) {
		_, err := builder.NewTimeOffBuilder().With(func(b *builder.TimeOffBuilder) {
			b.Type = "sabbatical"
		}).BuildDomain()
		assert.ErrorIs(t, err, request.ErrInvalidKind)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := builder.NewTimeOffBuilder().With(func(b *builder.TimeOffBuilder) {
			b.EndsAt = b.StartsAt.Add(-time.Hour)
		}).BuildDomain()
		assert.ErrorIs(t, err, request.ErrInvalidWindow)
	})

	t.Run("single-day window is allowed", func(t *testing.T) {
		req, err := builder.NewTimeOffBuilder().With(func(b *builder.TimeOffBuilder) {
			b.EndsAt = b.StartsAt
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, req.TimeOff().Start, req.TimeOff().End)
	})
}

func TestRequestReview(t *testing.T) {
	newPending := func(t *testing.T) *request.Request {
		t.Helper()
		req, err := builder.NewTimeOffBuilder().BuildDomain()
		require.NoError(t, err)
		return req
	}

	t.Run("approve", func(t *testing.T) {
		req := newPending(t)
		reviewerID := uuid.New()

		require.NoError(t, req.Review(reviewerID, request.DecisionApproved, "enjoy", reviewTime))
		assert.Equal(t, request.StatusApproved, req.Status())
		require.NotNil(t, req.ReviewedBy())
		assert.Equal(t, reviewerID, *req.ReviewedBy())
		require.NotNil(t, req.ReviewedAt())
		assert.Equal(t, reviewTime, *req.ReviewedAt())
		assert.Equal(t, "enjoy", req.ResponseMessage())
	})

	t.Run("reject", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Review(uuid.New(), request.DecisionRejected, "short staffed", reviewTime))
		assert.Equal(t, request.StatusRejected, req.Status())
	})

	t.Run("invalid decision", func(t *testing.T) {
		req := newPending(t)
		err := req.Review(uuid.New(), request.Decision("maybe"), "", reviewTime)
		assert.ErrorIs(t, err, request.ErrInvalidDecision)
		assert.Equal(t, request.StatusPending, req.Status())
	})

	t.Run("terminal states are immutable", func(t *testing.T) {
		for _, decision := range []request.Decision{request.DecisionApproved, request.DecisionRejected} {
			req := newPending(t)
			require.NoError(t, req.Review(uuid.New(), decision, "", reviewTime))

			err := req.Review(uuid.New(), request.DecisionApproved, "again", reviewTime.Add(time.Hour))
			assert.ErrorIs(t, err, request.ErrInvalidTransition)

			err = req.Cancel(req.RequesterID(), reviewTime.Add(time.Hour))
			assert.ErrorIs(t, err, request.ErrInvalidTransition)
		}
	})
}

func TestRequestCancel(t *testing.T) {
	t.Run("requester cancels own pending request", func(t *testing.T) {
		req, err := builder.NewTimeOffBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Cancel(req.RequesterID(), reviewTime))
		assert.Equal(t, request.StatusCancelled, req.Status())
	})

	t.Run("someone else cannot cancel", func(t *testing.T) {
		req, err := builder.NewTimeOffBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, req.Cancel(uuid.New(), reviewTime), request.ErrNotRequester)
		assert.Equal(t, request.StatusPending, req.Status())
	})

	t.Run("cancelled request cannot be reviewed", func(t *testing.T) {
		req, err := builder.NewTimeOffBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Cancel(req.RequesterID(), reviewTime))

		err = req.Review(uuid.New(), request.DecisionApproved, "", reviewTime.Add(time.Hour))
		assert.ErrorIs(t, err, request.ErrInvalidTransition)
	})
}

func TestRequestCounterparty(t *testing.T) {
	t.Run("swap with target notifies the target", func(t *testing.T) {
		targetID := uuid.New()
		req, err := builder.NewSwapBuilder().With(func(b *builder.SwapBuilder) {
			b.TargetUserID = &targetID
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, targetID, req.Counterparty())
	})

	t.Run("open swap falls back to the requester", func(t *testing.T) {
		req, err := builder.NewSwapBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, req.RequesterID(), req.Counterparty())
	})

	t.Run("time off notifies the requester", func(t *testing.T) {
		req, err := builder.NewTimeOffBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, req.RequesterID(), req.Counterparty())
	})
}

func TestStatusTransitions(t *testing.T) {
	assert.False(t, request.StatusPending.IsTerminal())
	assert.True(t, request.StatusApproved.IsTerminal())
	assert.True(t, request.StatusRejected.IsTerminal())
	assert.True(t, request.StatusCancelled.IsTerminal())
}

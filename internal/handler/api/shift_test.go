//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"rosterd/internal/domain/identity"
	"rosterd/internal/domain/schedule"
	"rosterd/internal/handler/api"
	resdto "rosterd/internal/handler/dto/response"
	"rosterd/internal/infra"
	"rosterd/internal/usecase/commands"
	"rosterd/internal/usecase/queries"
	"rosterd/tests/common/builder"
	"rosterd/tests/common/httptest"
	"rosterd/tests/common/testutil"
	commandsmock "rosterd/tests/mock/commands"
	queriesmock "rosterd/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShiftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockShiftCommands
	mockQueries  *queriesmock.MockShiftQueries
	handler      *api.ShiftHandler
	actor        identity.Actor
}

func (s *ShiftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShiftCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockShiftQueries(s.mockCtrl)
	s.handler = api.NewShiftHandler(s.mockCommands, s.mockQueries)

	s.actor = identity.Actor{UserID: uuid.New(), CompanyID: uuid.New(), Role: identity.RoleManager}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", s.actor)
		c.Next()
	}

	s.router.POST("/shifts", authMiddleware, s.handler.Create)
	s.router.GET("/shifts", authMiddleware, s.handler.List)
	s.router.GET("/shifts/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/shifts/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/shifts/:id", authMiddleware, s.handler.Delete)
}

func (s *ShiftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShiftHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}

func (s *ShiftHandlerTestSuite) buildShift() *schedule.Shift {
	shift, err := builder.NewShiftBuilder().With(func(b *builder.ShiftBuilder) {
		b.CompanyID = s.actor.CompanyID
	}).BuildDomain()
	s.Require().NoError(err)
	return shift
}

func (s *ShiftHandlerTestSuite) buildView(shift *schedule.Shift) *queries.ShiftView {
	return &queries.ShiftView{
		ID:        shift.ID(),
		CompanyID: shift.CompanyID(),
		Title:     shift.Title(),
		StartsAt:  shift.Window().Start(),
		EndsAt:    shift.Window().End(),
		Capacity:  int32(shift.Capacity()),
		CreatedAt: shift.CreatedAt(),
		UpdatedAt: shift.UpdatedAt(),
	}
}

type testCaseShift struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ShiftHandlerTestSuite) TestCreate() {
	url := "/shifts"

	reqBody := builder.NewShiftBuilder().BuildCreateRequestDTO()
	returnShift := s.buildShift()
	returnView := s.buildView(returnShift)

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateShift(gomock.Any(), s.actor, gomock.Any()).
			Return(returnShift, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor.CompanyID, returnShift.ID()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Title, response.Title)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseShift{
			{name: "missing field: title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: starts_at", mutate: testutil.Field("starts_at", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: capacity", mutate: testutil.Field("capacity", nil), expectCode: http.StatusBadRequest},
			{name: "capacity below minimum", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
			{name: "window end before start", mutate: testutil.Field("ends_at", "2026-03-02T08:00:00Z"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateShift(gomock.Any(), s.actor, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ShiftHandlerTestSuite) TestUpdate() {
	returnShift := s.buildShift()
	returnView := s.buildView(returnShift)
	url := "/shifts/" + returnShift.ID().String()

	newCap := 5
	reqBody := map[string]any{"capacity": newCap}

	s.Run("success: returns 200 OK with updated shift", func() {
		s.mockCommands.EXPECT().UpdateShift(gomock.Any(), s.actor, returnShift.ID(), gomock.Any()).
			Return(returnShift, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor.CompanyID, returnShift.ID()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/shifts/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid shift ID format")
	})

	s.Run("error: 409 Conflict with shrink detail", func() {
		s.mockCommands.EXPECT().UpdateShift(gomock.Any(), s.actor, returnShift.ID(), gomock.Any()).
			Return(nil, &schedule.ShrinkError{ShiftID: returnShift.ID(), Capacity: 1, Confirmed: 2}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Capacity below confirmed assignments")

		var body struct {
			Detail resdto.ShrinkDetail `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(returnShift.ID(), body.Detail.ShiftID)
		s.Equal(1, body.Detail.Capacity)
		s.Equal(2, body.Detail.Confirmed)
	})

	s.Run("error: 409 Conflict with overlap detail", func() {
		otherShiftID := uuid.New()
		conflictingUser := uuid.New()
		conflictErr := &schedule.ConflictError{
			ShiftID: returnShift.ID(),
			Conflicts: []schedule.UserConflict{{
				UserID: conflictingUser,
				ConflictingShifts: []schedule.ShiftRef{{
					ShiftID: otherShiftID,
					Title:   "Evening shift",
					Window: schedule.ReconstructTimeWindow(
						time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
						time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC),
					),
				}},
			}},
		}
		s.mockCommands.EXPECT().UpdateShift(gomock.Any(), s.actor, returnShift.ID(), gomock.Any()).
			Return(nil, conflictErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Scheduling conflict")

		var body struct {
			Detail resdto.ConflictDetail `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Require().Len(body.Detail.Conflicts, 1)
		s.Equal(conflictingUser, body.Detail.Conflicts[0].UserID)
		s.Require().Len(body.Detail.Conflicts[0].ConflictingShifts, 1)
		s.Equal(otherShiftID, body.Detail.Conflicts[0].ConflictingShifts[0].ShiftID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "shift not found",
				commandsError:  commands.ErrShiftNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Shift not found",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "write conflict after retries",
				commandsError:  infra.WrapRepoErr("transaction failed after max retries", nil, infra.KindConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Write conflict",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateShift(gomock.Any(), s.actor, returnShift.ID(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ShiftHandlerTestSuite) TestDelete() {
	shiftID := uuid.New()
	url := "/shifts/" + shiftID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteShift(gomock.Any(), s.actor, shiftID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing shift", func() {
		s.mockCommands.EXPECT().DeleteShift(gomock.Any(), s.actor, shiftID).
			Return(commands.ErrShiftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shift not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/shifts/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid shift ID format")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ShiftHandlerTestSuite) TestGet() {
	returnShift := s.buildShift()
	returnView := s.buildView(returnShift)
	url := "/shifts/" + returnShift.ID().String()

	s.Run("success: returns 200 OK with ShiftResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor.CompanyID, returnShift.ID()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Capacity, response.Capacity)
	})

	s.Run("error: 404 Not Found for missing shift", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor.CompanyID, returnShift.ID()).
			Return(nil, queries.ErrShiftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shift not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ShiftHandlerTestSuite) TestList() {
	url := "/shifts"

	views := []*queries.ShiftView{
		s.buildView(s.buildShift()),
		s.buildView(s.buildShift()),
	}

	s.Run("success: manager gets the company-wide scope", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor.CompanyID, queries.ScopeForManager()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: staff gets the assigned-only scope", func() {
		s.actor = identity.Actor{UserID: uuid.New(), CompanyID: s.actor.CompanyID, Role: identity.RoleStaff}

		s.mockQueries.EXPECT().List(gomock.Any(), s.actor.CompanyID, queries.ScopeForStaff(s.actor.UserID)).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ShiftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor.CompanyID, gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

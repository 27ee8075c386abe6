package api

import (
	"errors"
	"net/http"

	"rosterd/internal/domain/schedule"
	reqdto "rosterd/internal/handler/dto/request"
	resdto "rosterd/internal/handler/dto/response"
	"rosterd/internal/handler/httperr"
	"rosterd/internal/handler/middleware"
	"rosterd/internal/infra"
	"rosterd/internal/usecase/commands"
	"rosterd/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	cmds commands.AssignmentCommands
	q    queries.ShiftQueries
}

func NewAssignmentHandler(cmds commands.AssignmentCommands, q queries.ShiftQueries) *AssignmentHandler {
	return &AssignmentHandler{cmds: cmds, q: q}
}

// @Summary Assign users to shift
// @Description Commit a batch of users to a shift; all succeed or none do
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Param request body reqdto.AssignUsersRequest true "Assign users request"
// @Success 200 {array} resdto.AssignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /shifts/{id}/assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shift ID format", nil)
		return
	}

	var req reqdto.AssignUsersRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	assignments, err := h.cmds.Assign(c.Request.Context(), actor, shiftID, req.UserIDs, req.Notes)
	if err != nil {
		var capErr *schedule.CapacityError
		var conflictErr *schedule.ConflictError

		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shift not found", nil)
		case errors.Is(err, commands.ErrNoUsersRequested):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No users requested", nil)
		case errors.As(err, &capErr):
			httperr.AbortWithError(c, http.StatusConflict, err, "Capacity exceeded", resdto.FromCapacityError(capErr))
		case errors.As(err, &conflictErr):
			httperr.AbortWithError(c, http.StatusConflict, err, "Scheduling conflict", resdto.FromConflictError(conflictErr))
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Write conflict", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssignments(assignments))
}

// @Summary Unassign user from shift
// @Description Remove one user's assignment from a shift
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Param userId path string true "User ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{id}/assignments/{userId} [delete]
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shift ID format", nil)
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format", nil)
		return
	}

	if err := h.cmds.Unassign(c.Request.Context(), actor, shiftID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shift not found", nil)
		case errors.Is(err, commands.ErrAssignmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Assignment not found", nil)
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Write conflict", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List shift assignments
// @Description List every assignment on a shift
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Success 200 {array} resdto.AssignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{id}/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shift ID format", nil)
		return
	}

	views, err := h.q.ListAssignments(c.Request.Context(), actor.CompanyID, shiftID)
	if err != nil {
		if errors.Is(err, queries.ErrShiftNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shift not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignmentViews(views))
}

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

type ShiftHandler struct {
	cmds commands.ShiftCommands
	q    queries.ShiftQueries
}

func NewShiftHandler(cmds commands.ShiftCommands, q queries.ShiftQueries) *ShiftHandler {
	return &ShiftHandler{cmds: cmds, q: q}
}

// @Summary Create shift
// @Description Create a new shift in the caller's company
// @Tags shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateShiftRequest true "Create shift request"
// @Success 201 {object} resdto.ShiftResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	shift, err := h.cmds.CreateShift(c.Request.Context(), actor, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Write conflict", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor.CompanyID, shift.ID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load shift", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromShiftView(view))
}

// @Summary Update shift
// @Description Patch a shift's title, window, or capacity
// @Tags shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Param request body reqdto.UpdateShiftRequest true "Update shift request"
// @Success 200 {object} resdto.ShiftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /shifts/{id} [patch]
func (h *ShiftHandler) Update(c *gin.Context) {
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

	var req reqdto.UpdateShiftRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	shift, err := h.cmds.UpdateShift(c.Request.Context(), actor, shiftID, req.ToParams())
	if err != nil {
		abortShiftCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor.CompanyID, shift.ID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load shift", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShiftView(view))
}

// @Summary Delete shift
// @Description Delete a shift and its assignments
// @Tags shifts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *gin.Context) {
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

	if err := h.cmds.DeleteShift(c.Request.Context(), actor, shiftID); err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shift not found", nil)
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Write conflict", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get shift
// @Description Get shift by ID
// @Tags shifts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Success 200 {object} resdto.ShiftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{id} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
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

	view, err := h.q.GetByID(c.Request.Context(), actor.CompanyID, shiftID)
	if err != nil {
		if errors.Is(err, queries.ErrShiftNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shift not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShiftView(view))
}

// @Summary List shifts
// @Description List company shifts; staff see only shifts they are assigned to
// @Tags shifts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ShiftResponse
// @Failure 401 {object} map[string]string
// @Router /shifts [get]
func (h *ShiftHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), actor.CompanyID, queries.ScopeForActor(actor))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShiftViews(views))
}

func abortShiftCommandError(c *gin.Context, err error) {
	var shrinkErr *schedule.ShrinkError
	var conflictErr *schedule.ConflictError

	switch {
	case errors.Is(err, commands.ErrShiftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Shift not found", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errors.As(err, &shrinkErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Capacity below confirmed assignments", resdto.FromShrinkError(shrinkErr))
	case errors.As(err, &conflictErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Scheduling conflict", resdto.FromConflictError(conflictErr))
	case infra.IsKind(err, infra.KindConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Write conflict", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

package api

import (
	"errors"
	"net/http"

	reqdomain "rosterd/internal/domain/request"
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

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Open swap request
// @Description Open a shift swap request for review
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenSwapRequest true "Open swap request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/swaps [post]
func (h *RequestHandler) OpenSwap(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	var req reqdto.OpenSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	opened, err := h.cmds.OpenSwap(c.Request.Context(), actor, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrShiftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shift not found", nil)
		case errors.Is(err, commands.ErrOfferedShiftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offered shift not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Write conflict", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequest(opened))
}

// @Summary Open time-off request
// @Description Open a time-off request for review
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenTimeOffRequest true "Open time-off request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/time-off [post]
func (h *RequestHandler) OpenTimeOff(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	var req reqdto.OpenTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	opened, err := h.cmds.OpenTimeOff(c.Request.Context(), actor, req.ToParams())
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
	c.JSON(http.StatusCreated, resdto.FromRequest(opened))
}

// @Summary Review request
// @Description Approve or reject a pending request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.ReviewRequest true "Review decision"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/review [post]
func (h *RequestHandler) Review(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	var req reqdto.ReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	reviewed, err := h.cmds.Review(c.Request.Context(), actor, requestID, req.ToDecision(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		case errors.Is(err, reqdomain.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request already finalized", nil)
		case errors.Is(err, reqdomain.ErrInvalidDecision):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review decision", nil)
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Write conflict", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequest(reviewed))
}

// @Summary Cancel request
// @Description Cancel own pending request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	cancelled, err := h.cmds.Cancel(c.Request.Context(), actor, requestID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		case errors.Is(err, reqdomain.ErrNotRequester):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the requester may cancel", nil)
		case errors.Is(err, reqdomain.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request already finalized", nil)
		case infra.IsKind(err, infra.KindConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Write conflict", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequest(cancelled))
}

// @Summary Get request
// @Description Get request by ID; staff only see their own or requests naming them
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, requestID)
	if err != nil {
		if errors.Is(err, queries.ErrRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List requests
// @Description List requests; managers see all, staff see their own
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing actor"), "Unauthorized", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

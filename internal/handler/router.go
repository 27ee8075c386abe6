package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rosterd/internal/handler/api"
	reqdto "rosterd/internal/handler/dto/request"
	"rosterd/internal/handler/middleware"
	"rosterd/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	shiftHandler *api.ShiftHandler,
	assignmentHandler *api.AssignmentHandler,
	requestHandler *api.RequestHandler,
	authMiddleware *middleware.AuthMiddleware,
) error {
	if err := reqdto.RegisterValidations(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, shiftHandler, assignmentHandler, requestHandler, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	shiftHandler *api.ShiftHandler,
	assignmentHandler *api.AssignmentHandler,
	requestHandler *api.RequestHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		manager := []gin.HandlerFunc{authMiddleware.RequireManager()}

		shifts := apiGroup.Group("/shifts")
		{
			addRoutes(shifts, []route{
				{Method: http.MethodGet, Path: "", Handler: shiftHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: shiftHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: shiftHandler.Create, Mw: manager},
				{Method: http.MethodPatch, Path: "/:id", Handler: shiftHandler.Update, Mw: manager},
				{Method: http.MethodDelete, Path: "/:id", Handler: shiftHandler.Delete, Mw: manager},

				{Method: http.MethodGet, Path: "/:id/assignments", Handler: assignmentHandler.List},
				{Method: http.MethodPost, Path: "/:id/assignments", Handler: assignmentHandler.Assign, Mw: manager},
				{Method: http.MethodDelete, Path: "/:id/assignments/:userId", Handler: assignmentHandler.Unassign, Mw: manager},
			})
		}

		requests := apiGroup.Group("/requests")
		{
			addRoutes(requests, []route{
				{Method: http.MethodGet, Path: "", Handler: requestHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.Get},
				{Method: http.MethodPost, Path: "/swaps", Handler: requestHandler.OpenSwap},
				{Method: http.MethodPost, Path: "/time-off", Handler: requestHandler.OpenTimeOff},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: requestHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/review", Handler: requestHandler.Review, Mw: manager},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/operator"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/api"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/middleware"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	quoteHandler *api.QuoteHandler,
	sheetHandler *api.RuleSheetHandler,
	overrideHandler *api.OverrideHandler,
	defaultsHandler *api.DefaultsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, quoteHandler, sheetHandler, overrideHandler, defaultsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	quoteHandler *api.QuoteHandler,
	sheetHandler *api.RuleSheetHandler,
	overrideHandler *api.OverrideHandler,
	defaultsHandler *api.DefaultsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "/price", Handler: quoteHandler.QuotePrice},
				{Method: http.MethodPost, Path: "/capacity", Handler: quoteHandler.QuoteCapacity},
			})
		}

		sheets := apiGroup.Group("/rulesheets")
		sheets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sheets, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: sheetHandler.Get},
				{Method: http.MethodGet, Path: "/entity/:entityId", Handler: sheetHandler.ListByEntity},
			})

			admin := authMiddleware.RequireRoleAtLeast(operator.RoleAdmin)
			addRoutes(sheets, []route{
				{Method: http.MethodPost, Path: "", Handler: sheetHandler.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPut, Path: "/:id", Handler: sheetHandler.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: sheetHandler.Deactivate, Mw: []gin.HandlerFunc{admin}},
			})
		}

		defaults := apiGroup.Group("/entities/:level/:entityId/defaults")
		defaults.Use(authMiddleware.RequireAuth())
		{
			admin := authMiddleware.RequireRoleAtLeast(operator.RoleAdmin)
			addRoutes(defaults, []route{
				{Method: http.MethodPut, Path: "", Handler: defaultsHandler.Set, Mw: []gin.HandlerFunc{admin}},
			})
		}

		subLocations := apiGroup.Group("/sublocations/:id/overrides")
		subLocations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(subLocations, []route{
				{Method: http.MethodGet, Path: "", Handler: overrideHandler.List},
			})

			operatorMw := authMiddleware.RequireRoleAtLeast(operator.RoleOperator)
			addRoutes(subLocations, []route{
				{Method: http.MethodPut, Path: "/hour", Handler: overrideHandler.UpsertHour, Mw: []gin.HandlerFunc{operatorMw}},
				{Method: http.MethodPut, Path: "/day", Handler: overrideHandler.UpsertDay, Mw: []gin.HandlerFunc{operatorMw}},
				{Method: http.MethodDelete, Path: "/:date/:hour", Handler: overrideHandler.Delete, Mw: []gin.HandlerFunc{operatorMw}},
			})
		}
	}
}

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

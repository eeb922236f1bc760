package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loyalty-coupon-api/internal/handler/api"
	"loyalty-coupon-api/internal/handler/middleware"
	"loyalty-coupon-api/internal/pkg/config"
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
	companyHandler *api.CompanyHandler,
	ruleHandler *api.RuleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, companyHandler, ruleHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	companyHandler *api.CompanyHandler,
	ruleHandler *api.RuleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			{Method: http.MethodPost, Path: "/token", Handler: authHandler.Token},
		})
	}

	companies := engine.Group("/companies")
	companies.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		addRoutes(companies, []route{
			{Method: http.MethodPost, Path: "", Handler: companyHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: companyHandler.List},
			{Method: http.MethodGet, Path: "/:company_id", Handler: companyHandler.Get},
			{Method: http.MethodPut, Path: "/:company_id", Handler: companyHandler.Update},
			{Method: http.MethodDelete, Path: "/:company_id", Handler: companyHandler.Delete},
		})
	}

	rules := engine.Group("/coupon-rules")
	rules.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		addRoutes(rules, []route{
			{Method: http.MethodPost, Path: "", Handler: ruleHandler.Create},
			{Method: http.MethodGet, Path: "/company/:company_id", Handler: ruleHandler.ListByCompany},
			{Method: http.MethodGet, Path: "/:rule_id", Handler: ruleHandler.Get},
			{Method: http.MethodPut, Path: "/:rule_id", Handler: ruleHandler.Update},
			{Method: http.MethodDelete, Path: "/:rule_id", Handler: ruleHandler.Delete},
		})
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-circulation/internal/domain/member"
	"library-circulation/internal/handler/api"
	"library-circulation/internal/handler/middleware"
	"library-circulation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Book        *api.BookHandler
	Member      *api.MemberHandler
	Circulation *api.CirculationHandler
	Reservation *api.ReservationHandler
	Audit       *api.AuditHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMw *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := authMw.RequireRoleAtLeast(member.RoleLibrarian)
	adminOnly := authMw.RequireRoleAtLeast(member.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		books := apiGroup.Group("/books")
		{
			addRoutes(books, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Book.ListBooks},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Book.GetBook},
			})

			staff := books.Group("")
			staff.Use(authMw.RequireAuth(), staffOnly)
			addRoutes(staff, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Book.CreateBook},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Book.UpdateBook},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Book.DeleteBook},
			})

			queue := books.Group("")
			queue.Use(authMw.RequireAuth())
			addRoutes(queue, []route{
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservation.ListBookQueue},
			})
		}

		loans := apiGroup.Group("/loans")
		loans.Use(authMw.RequireAuth())
		{
			addRoutes(loans, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Circulation.Borrow},
				{Method: http.MethodGet, Path: "", Handler: h.Circulation.SearchLoans},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Circulation.GetLoan},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Circulation.Return},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMw.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.CancelReservation},
			})
		}

		members := apiGroup.Group("/members")
		members.Use(authMw.RequireAuth())
		{
			addRoutes(members, []route{
				{Method: http.MethodGet, Path: "/:id/loans", Handler: h.Member.ListMemberLoans},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservation.ListMemberReservations},
			})

			staff := members.Group("")
			staff.Use(staffOnly)
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Member.ListMembers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Member.GetMember},
				{Method: http.MethodPost, Path: "", Handler: h.Member.RegisterMember},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Member.UpdateMember},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Member.DeactivateMember},
			})
		}

		audit := apiGroup.Group("/audit")
		audit.Use(authMw.RequireAuth(), adminOnly)
		{
			addRoutes(audit, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Audit.SearchAuditTrail},
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

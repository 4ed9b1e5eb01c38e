package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kairo-server/internal/handler/api"
	"kairo-server/internal/handler/middleware"
	"kairo-server/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Booking     *api.BookingHandler
	Reservation *api.ReservationHandler
	Settings    *api.SettingsHandler
	Users       *api.UserHandler
	Content     *api.ContentHandler
	Contact     *api.ContactHandler
	Upload      *api.UploadHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, adminAuth *middleware.AdminAuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, adminAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, adminAuth *middleware.AdminAuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.Static(cfg.Upload.PublicPrefix, cfg.Upload.Dir)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/verify", Handler: h.Auth.Verify},
			})
		}

		booking := apiGroup.Group("/booking")
		{
			addRoutes(booking, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.GetAvailability},
				{Method: http.MethodPost, Path: "/reservation", Handler: h.Reservation.Request},
				{Method: http.MethodPost, Path: "/reservation/cancel", Handler: h.Reservation.Cancel},
			})

			adminBooking := booking.Group("")
			adminBooking.Use(adminAuth.RequireAdmin())
			addRoutes(adminBooking, []route{
				{Method: http.MethodPost, Path: "/availability", Handler: h.Booking.CreateAvailability},
				{Method: http.MethodDelete, Path: "/availability", Handler: h.Booking.DeleteAvailability},
				{Method: http.MethodPost, Path: "/exclusions", Handler: h.Booking.CreateExclusion},
				{Method: http.MethodDelete, Path: "/exclusions", Handler: h.Booking.DeleteExclusion},
				{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.Get},
				{Method: http.MethodPut, Path: "/settings", Handler: h.Settings.Update},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
		})

		users := apiGroup.Group("/users")
		users.Use(adminAuth.RequireAdmin())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Users.List},
				{Method: http.MethodPost, Path: "", Handler: h.Users.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Users.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Users.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Users.Delete},
			})
		}

		admin := apiGroup.Group("")
		admin.Use(adminAuth.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/content", Handler: h.Content.GetPage},
				{Method: http.MethodPut, Path: "/content", Handler: h.Content.ReplacePage},
				{Method: http.MethodGet, Path: "/settings", Handler: h.Content.GetSiteSettings},
				{Method: http.MethodPut, Path: "/settings", Handler: h.Content.MergeSiteSettings},
				{Method: http.MethodPost, Path: "/upload", Handler: h.Upload.Upload},
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

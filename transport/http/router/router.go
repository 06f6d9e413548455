package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"frontdesk/config"
	"frontdesk/internal/handlers/audit"
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/user"
	"frontdesk/transport/http/middleware"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
	Audit   audit.Handler
	Report  report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.Recoverer)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
		Config:         cfg,
	}
}

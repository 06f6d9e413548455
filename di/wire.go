//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"

	auditRepository "frontdesk/internal/domains/audit/repository"
	auditService "frontdesk/internal/domains/audit/service"
	authService "frontdesk/internal/domains/auth/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	reportService "frontdesk/internal/domains/report/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	userRepository "frontdesk/internal/domains/user/repository"
	userService "frontdesk/internal/domains/user/service"

	auditHandler "frontdesk/internal/handlers/audit"
	authHandler "frontdesk/internal/handlers/auth"
	bookingHandler "frontdesk/internal/handlers/booking"
	guestHandler "frontdesk/internal/handlers/guest"
	reportHandler "frontdesk/internal/handlers/report"
	roomHandler "frontdesk/internal/handlers/room"
	userHandler "frontdesk/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	kafka.NewPublisher,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	guestDomain,
	bookingDomain,
	auditDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	auditHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

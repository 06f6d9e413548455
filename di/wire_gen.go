// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	repository5 "frontdesk/internal/domains/audit/repository"
	service6 "frontdesk/internal/domains/audit/service"
	"frontdesk/internal/domains/auth/service"
	repository4 "frontdesk/internal/domains/booking/repository"
	service5 "frontdesk/internal/domains/booking/service"
	repository3 "frontdesk/internal/domains/guest/repository"
	service4 "frontdesk/internal/domains/guest/service"
	service7 "frontdesk/internal/domains/report/service"
	repository2 "frontdesk/internal/domains/room/repository"
	service3 "frontdesk/internal/domains/room/service"
	"frontdesk/internal/domains/user/repository"
	service2 "frontdesk/internal/domains/user/service"
	"frontdesk/internal/handlers/audit"
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/user"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryRoom := repository2.New(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceRoom := service3.New(repositoryRoom, configConfig, redisCache, otelOtel, s3S3)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryGuest := repository3.New(connection, otelOtel)
	serviceGuest := service4.New(repositoryGuest, configConfig, redisCache, otelOtel)
	guestHandler := guest.New(serviceGuest, otelOtel)
	repositoryBooking := repository4.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	publisher := kafka.NewPublisher(configConfig, kafkaClient)
	serviceBooking := service5.New(repositoryBooking, repositoryGuest, repositoryRoom, connection, configConfig, redisCache, otelOtel, publisher)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	repositoryAudit := repository5.New(connection, otelOtel)
	serviceAudit := service6.New(repositoryAudit, repositoryBooking, serviceUser, connection, configConfig, redisCache, otelOtel, publisher)
	auditHandler := audit.New(serviceAudit, otelOtel)
	serviceReport := service7.New(repositoryBooking, repositoryRoom, otelOtel)
	reportHandler := report.New(serviceReport, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:    handler,
		User:    userHandler,
		Room:    roomHandler,
		Guest:   guestHandler,
		Booking: bookingHandler,
		Audit:   auditHandler,
		Report:  reportHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, appMiddleware, authRole, configConfig)
	httpHTTP := http.New(configConfig, connection, routerRouter)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, kafka.NewPublisher, s3.New)

var middlewares = wire.NewSet(permissions.Get, middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var userDomain = wire.NewSet(repository.New, service2.New)

var authDomain = wire.NewSet(service.New)

var roomDomain = wire.NewSet(repository2.New, service3.New)

var guestDomain = wire.NewSet(repository3.New, service4.New)

var bookingDomain = wire.NewSet(repository4.New, service5.New)

var auditDomain = wire.NewSet(repository5.New, service6.New)

var reportDomain = wire.NewSet(service7.New)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	guestDomain,
	bookingDomain,
	auditDomain,
	reportDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, room.New, guest.New, booking.New, audit.New, report.New, router.New)

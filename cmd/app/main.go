package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"

	_ "frontdesk/docs"
)

// @title Frontdesk API
// @version 1.0
// @description Hotel front desk management API covering bookings, rooms, guests, the night audit and occupancy reporting.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/scope"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/forecast", handler.GetForecast)
		routerGroup.Get("/dashboard", handler.GetDashboardStats)
		routerGroup.Get("/bookings/daily", handler.GetDailyBookings)
		routerGroup.Get("/bookings/monthly", handler.GetMonthlyBookings)
	})
}

// GetForecast computes the occupancy forecast for a date range.
// @Summary Get the occupancy forecast
// @Description Compute per-day occupancy, arrivals, departures and out-of-service counts over an inclusive date range.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ForecastResponse] "Occupancy forecast"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/forecast [get]
// @Security BearerAuth
func (handler *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForecast")
	defer otelScope.End()

	req := dto.ForecastRequest{
		From: r.URL.Query().Get(constant.RequestParamFrom),
		To:   r.URL.Query().Get(constant.RequestParamTo),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		otelScope.TraceError(err)
		log.Warn().Err(err).Msg("invalid forecast request")

		response.WithError(w, err)

		return
	}

	forecast, err := handler.service.Forecast(ctx, req, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute occupancy forecast")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Occupancy forecast computed successfully")

	response.WithJSON(w, http.StatusOK, forecast)
}

// GetDashboardStats reports the current state of the property.
// @Summary Get dashboard statistics
// @Description Report room counts, in-house guests and today's expected arrivals and departures.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardStatsResponse] "Dashboard statistics"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboardStats")
	defer otelScope.End()

	stats, err := handler.service.DashboardStats(ctx, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute dashboard statistics")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Dashboard statistics computed successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetDailyBookings lists the bookings created since the start of today.
// @Summary Get today's bookings
// @Description Retrieve the bookings created since the start of the current business day.
// @Tags Report
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/bookings/daily [get]
// @Security BearerAuth
func (handler *Handler) GetDailyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailyBookings")
	defer otelScope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	bookings, err := handler.service.DailyBookings(ctx, queryParams, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily bookings")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Daily bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMonthlyBookings lists the bookings created since the start of the month.
// @Summary Get this month's bookings
// @Description Retrieve the bookings created since the start of the current calendar month.
// @Tags Report
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/bookings/monthly [get]
// @Security BearerAuth
func (handler *Handler) GetMonthlyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlyBookings")
	defer otelScope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	bookings, err := handler.service.MonthlyBookings(ctx, queryParams, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly bookings")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Monthly bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

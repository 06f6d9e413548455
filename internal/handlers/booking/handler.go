package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/scope"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/active", handler.GetActiveBookings)
		routerGroup.Get("/arrivals", handler.GetArrivals)
		routerGroup.Get("/departures", handler.GetDepartures)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/checkout", handler.CheckOut)
		routerGroup.Patch("/{id}/payment", handler.SettlePayment)
	})
}

// CreateBooking creates a booking, upserting the guest by email. A booking
// with a room id checks the guest in immediately.
// @Summary Create a new booking
// @Description Create a booking for a guest. Supplying a room id checks the guest in and occupies the room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, otelScope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer otelScope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	otelScope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (CONFIRMED, CHECKED_IN, CHECKED_OUT, NO_SHOW, CANCELLED)"
// @Param room_id query string false "Filter by room ID"
// @Param guest_id query string false "Filter by guest ID"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer otelScope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	status := r.URL.Query().Get(model.FieldStatus)
	roomID := r.URL.Query().Get(model.FieldRoomID)
	guestID := r.URL.Query().Get(model.FieldGuestID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if guestID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestID,
			Operator: gDto.FilterOperatorEq,
			Value:    guestID,
			Table:    model.TableName,
		})
	}

	filterGroup.Merge(scope.FromContext(ctx).Filter(roomModel.TableName))

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetActiveBookings retrieves bookings that are confirmed or in-house.
// @Summary Get active bookings
// @Description Retrieve bookings with status CONFIRMED or CHECKED_IN.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of active bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/active [get]
// @Security BearerAuth
func (handler *Handler) GetActiveBookings(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveBookings")
	defer otelScope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	bookings, err := handler.service.GetActive(ctx, queryParams, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active bookings")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Active bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetArrivals retrieves bookings expected to arrive on a date.
// @Summary Get expected arrivals
// @Description Retrieve CONFIRMED bookings whose check-in falls on the given date (default today).
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Date (YYYY-MM-DD, default today)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of expected arrivals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/arrivals [get]
// @Security BearerAuth
func (handler *Handler) GetArrivals(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArrivals")
	defer otelScope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	date := r.URL.Query().Get(constant.RequestParamDate)

	bookings, err := handler.service.GetArrivals(ctx, queryParams, date, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to get arrivals")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Arrivals retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetDepartures retrieves bookings expected to depart on a date.
// @Summary Get expected departures
// @Description Retrieve CHECKED_IN bookings whose check-out falls on the given date (default today).
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Date (YYYY-MM-DD, default today)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of expected departures"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/departures [get]
// @Security BearerAuth
func (handler *Handler) GetDepartures(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDepartures")
	defer otelScope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	date := r.URL.Query().Get(constant.RequestParamDate)

	bookings, err := handler.service.GetDepartures(ctx, queryParams, date, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to get departures")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Departures retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking with its guest and room details.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier, including guest and room details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer otelScope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	otelScope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CheckOut checks a guest out, marking the booking CHECKED_OUT and the room DIRTY.
// @Summary Check out a booking
// @Description Atomically set the booking to CHECKED_OUT and its room to DIRTY.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.CheckOutResponse] "Check-out result"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer otelScope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.CheckOut(ctx, id, scope.FromContext(ctx))
	if err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	otelScope.AddEvent("Booking checked out successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// SettlePayment marks a booking's payment as PAID.
// @Summary Settle a booking's payment
// @Description Set the booking's payment status to PAID. Settling an already paid booking is a no-op.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Payment settled successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payment [patch]
// @Security BearerAuth
func (handler *Handler) SettlePayment(w http.ResponseWriter, r *http.Request) {
	ctx, otelScope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SettlePayment")
	defer otelScope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.UpdatePaymentStatus(ctx, id, scope.FromContext(ctx)); err != nil {
		otelScope.TraceError(err)
		log.Error().Err(err).Msg("failed to settle booking payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	otelScope.AddEvent("Booking payment settled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Payment settled successfully")
}

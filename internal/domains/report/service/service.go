package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/report/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/scope"
	"frontdesk/shared/timezone"
)

// Report serves the read-side aggregates: the occupancy forecast, the
// dashboard counters, and the recent-booking lists. Everything here is
// computed fresh from the store. Restricted scopes apply through room
// ownership on both booking and room queries, so occupancy numerators and
// the room denominator count the same universe.
type Report interface {
	Forecast(ctx context.Context, req dto.ForecastRequest, sc scope.Scope) (dto.ForecastResponse, error)
	DashboardStats(ctx context.Context, sc scope.Scope) (dto.DashboardStatsResponse, error)
	DailyBookings(ctx context.Context, params gDto.QueryParams, sc scope.Scope) (bookingDto.GetBookingsResponse, error)
	MonthlyBookings(ctx context.Context, params gDto.QueryParams, sc scope.Scope) (bookingDto.GetBookingsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, otel otel.Otel) Report {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		otel:        otel,
	}
}

// Forecast computes per-day occupancy over [from, to] inclusive. Bookings are
// fetched once with a half-open stay intersection (check_in < to AND
// check_out > from) and the per-day figures are derived in memory.
func (s *serviceImpl) Forecast(ctx context.Context, req dto.ForecastRequest, sc scope.Scope) (res dto.ForecastResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Forecast")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	from, err := timezone.Parse(constant.DayFormat, req.From)
	if err != nil {
		return res, failure.BadRequestFromString("invalid from date, expected YYYY-MM-DD")
	}

	to, err := timezone.Parse(constant.DayFormat, req.To)
	if err != nil {
		return res, failure.BadRequestFromString("invalid to date, expected YYYY-MM-DD")
	}

	if to.Before(from) {
		return res, failure.BadRequestFromString("to date must not be before from date")
	}

	res.From = timezone.Format(from, constant.DayFormat)
	res.To = timezone.Format(to, constant.DayFormat)

	totalRooms, err := s.roomRepo.Count(ctx, sc.Filter(roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms for forecast")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	if totalRooms == 0 {
		return res, nil
	}

	res.TotalRooms = totalRooms

	outOfService, err := s.roomRepo.Count(ctx, roomStatusFilter(roomModel.StatusMaintenance, sc))
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance rooms for forecast")

		return res, fmt.Errorf("failed to count maintenance rooms: %w", err)
	}

	stayFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn},
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "stay_before",
				Field:    bookingModel.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    timezone.DayStart(to),
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "stay_after",
				Field:    bookingModel.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    timezone.DayStart(from),
				Table:    bookingModel.TableName,
			},
		},
	}
	stayFilter.Merge(sc.Filter(roomModel.TableName))

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, stayFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for forecast")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.Days = BuildForecastDays(from, to, totalRooms, outOfService, bookings)

	return res, nil
}

// BuildForecastDays derives the per-day forecast rows from a fetched
// snapshot. A stay occupies day d when check_in <= end-of-day(d) and
// check_out > start-of-day(d), so the departure day itself counts as vacant.
func BuildForecastDays(from, to time.Time, totalRooms, outOfService int, bookings []bookingModel.Booking) []dto.ForecastDay {
	var days []dto.ForecastDay

	for day := timezone.DayStart(from); !day.After(timezone.DayStart(to)); day = day.AddDate(0, 0, 1) {
		dayStart := timezone.DayStart(day)
		dayEnd := timezone.DayEnd(day)

		row := dto.ForecastDay{
			Date:         timezone.Format(day, constant.DayFormat),
			Weekday:      day.Weekday().String(),
			OutOfService: outOfService,
		}

		for _, booking := range bookings {
			if timezone.WithinDay(booking.CheckIn, day) {
				row.Arrivals++
			}

			if timezone.WithinDay(booking.CheckOut, day) {
				row.Departures++
			}

			if !booking.CheckIn.After(dayEnd) && booking.CheckOut.After(dayStart) {
				row.Occupied++
			}
		}

		if totalRooms > 0 {
			row.OccupancyPercent = float64(row.Occupied) / float64(totalRooms) * 100
		}

		days = append(days, row)
	}

	return days
}

// DashboardStats aggregates today's front-desk counters.
func (s *serviceImpl) DashboardStats(ctx context.Context, sc scope.Scope) (res dto.DashboardStatsResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardStats")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	if res.TotalRooms, err = s.roomRepo.Count(ctx, sc.Filter(roomModel.TableName)); err != nil {
		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	if res.AvailableRooms, err = s.roomRepo.Count(ctx, roomStatusFilter(roomModel.StatusAvailable, sc)); err != nil {
		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	if res.OccupiedRooms, err = s.roomRepo.Count(ctx, roomStatusFilter(roomModel.StatusOccupied, sc)); err != nil {
		return res, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	if res.OutOfServiceRooms, err = s.roomRepo.Count(ctx, roomStatusFilter(roomModel.StatusMaintenance, sc)); err != nil {
		return res, fmt.Errorf("failed to count maintenance rooms: %w", err)
	}

	inHouseFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingModel.StatusCheckedIn,
				Table:    bookingModel.TableName,
			},
		},
	}
	inHouseFilter.Merge(sc.Filter(roomModel.TableName))

	inHouse, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, inHouseFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get in-house bookings")

		return res, fmt.Errorf("failed to get in-house bookings: %w", err)
	}

	for _, booking := range inHouse {
		res.InHouseGuests += booking.Adults + booking.Kids
	}

	today := timezone.BusinessDate(timezone.Now())

	arrivals := bookingWindowFilter(bookingModel.StatusConfirmed, bookingModel.FieldCheckIn, today, sc)
	if res.TodayArrivals, err = s.bookingRepo.Count(ctx, arrivals); err != nil {
		return res, fmt.Errorf("failed to count today's arrivals: %w", err)
	}

	departures := bookingWindowFilter(bookingModel.StatusCheckedIn, bookingModel.FieldCheckOut, today, sc)
	if res.TodayDepartures, err = s.bookingRepo.Count(ctx, departures); err != nil {
		return res, fmt.Errorf("failed to count today's departures: %w", err)
	}

	if res.TotalRooms > 0 {
		res.OccupancyPercent = float64(res.OccupiedRooms) / float64(res.TotalRooms) * 100
	}

	return res, nil
}

// DailyBookings lists bookings created since the start of today.
func (s *serviceImpl) DailyBookings(ctx context.Context, params gDto.QueryParams, sc scope.Scope) (res bookingDto.GetBookingsResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DailyBookings")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	return s.bookingsSince(ctx, params, timezone.DayStart(timezone.Now()), sc)
}

// MonthlyBookings lists bookings created since the start of the month.
func (s *serviceImpl) MonthlyBookings(ctx context.Context, params gDto.QueryParams, sc scope.Scope) (res bookingDto.GetBookingsResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthlyBookings")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	now := timezone.Now()
	monthStart := timezone.DayStart(now.AddDate(0, 0, 1-now.Day()))

	return s.bookingsSince(ctx, params, monthStart, sc)
}

func (s *serviceImpl) bookingsSince(ctx context.Context, params gDto.QueryParams, since time.Time, sc scope.Scope) (res bookingDto.GetBookingsResponse, err error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "created_since",
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    since,
				Table:    bookingModel.TableName,
			},
		},
	}
	filter.Merge(sc.Filter(roomModel.TableName))

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

func roomStatusFilter(status string, sc scope.Scope) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    roomModel.TableName,
			},
		},
	}
	filter.Merge(sc.Filter(roomModel.TableName))

	return filter
}

func bookingWindowFilter(status, field string, day time.Time, sc scope.Scope) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  field + "_from",
				Field:    field,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.DayStart(day),
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  field + "_to",
				Field:    field,
				Operator: gDto.FilterOperatorLessEq,
				Value:    timezone.DayEnd(day),
				Table:    bookingModel.TableName,
			},
		},
	}
	filter.Merge(sc.Filter(roomModel.TableName))

	return filter
}

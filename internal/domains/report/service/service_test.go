package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/scope"
	"frontdesk/shared/timezone"
)

type reportMockSet struct {
	bookingRepo *bookingMocks.MockBooking
	roomRepo    *roomMocks.MockRoom
}

func newReportService(t *testing.T) (service.Report, reportMockSet) {
	ctrl := gomock.NewController(t)

	mocks := reportMockSet{
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
	}

	svc := service.New(mocks.bookingRepo, mocks.roomRepo, otelMocks.NewOtel())

	return svc, mocks
}

func stay(checkIn, checkOut string) bookingModel.Booking {
	in, _ := timezone.Parse(constant.DayFormat, checkIn)
	out, _ := timezone.Parse(constant.DayFormat, checkOut)

	return bookingModel.Booking{
		ID:       "booking-id",
		GuestID:  "guest-id",
		CheckIn:  in,
		CheckOut: out,
		Status:   bookingModel.StatusConfirmed,
	}
}

// assertRoomScope checks that a filter restricts visibility through the
// owning room rather than the booking's creator.
func assertRoomScope(t *testing.T, filter gDto.FilterGroup, ownerID string) {
	t.Helper()

	for _, raw := range filter.Filters {
		if f, ok := raw.(gDto.Filter); ok && f.ArgName == "scope_owner" {
			assert.Equal(t, roomModel.TableName, f.Table)
			assert.Equal(t, constant.FieldCreatedBy, f.Field)
			assert.Equal(t, ownerID, f.Value)

			return
		}
	}

	t.Error("expected a room-ownership scope filter")
}

func TestReportService_Forecast(t *testing.T) {
	t.Run("returns an empty forecast when no rooms are in scope", func(t *testing.T) {
		svc, mocks := newReportService(t)

		mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		res, err := svc.Forecast(context.Background(), dto.ForecastRequest{From: "2024-01-09", To: "2024-01-13"}, scope.Unrestricted())

		assert.NoError(t, err)
		assert.Zero(t, res.TotalRooms)
		assert.Empty(t, res.Days)
	})

	t.Run("counts a two-night stay on its stay days only", func(t *testing.T) {
		svc, mocks := newReportService(t)

		gomock.InOrder(
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(10, nil),
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil),
		)
		mocks.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{stay("2024-01-10", "2024-01-12")}, nil)

		res, err := svc.Forecast(context.Background(), dto.ForecastRequest{From: "2024-01-09", To: "2024-01-13"}, scope.Unrestricted())

		assert.NoError(t, err)
		assert.Equal(t, 10, res.TotalRooms)
		assert.Len(t, res.Days, 5)

		occupied := make([]int, len(res.Days))
		for i, day := range res.Days {
			occupied[i] = day.Occupied
		}

		assert.Equal(t, []int{0, 1, 1, 0, 0}, occupied)
		assert.Equal(t, 1, res.Days[1].Arrivals)
		assert.Equal(t, 1, res.Days[3].Departures)
		assert.InDelta(t, 10.0, res.Days[1].OccupancyPercent, 0.001)
	})

	t.Run("rejects a reversed date range", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Forecast(context.Background(), dto.ForecastRequest{From: "2024-01-13", To: "2024-01-09"}, scope.Unrestricted())

		assert.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Forecast(context.Background(), dto.ForecastRequest{From: "not-a-date", To: "2024-01-09"}, scope.Unrestricted())

		assert.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("restricted scope filters both rooms and stays through room ownership", func(t *testing.T) {
		svc, mocks := newReportService(t)

		gomock.InOrder(
			mocks.roomRepo.EXPECT().
				Count(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
					assertRoomScope(t, filter, "staff-id")

					return 4, nil
				}),
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil),
		)
		mocks.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
				assertRoomScope(t, filter, "staff-id")

				return []bookingModel.Booking{stay("2024-01-10", "2024-01-12")}, nil
			})

		res, err := svc.Forecast(context.Background(), dto.ForecastRequest{From: "2024-01-10", To: "2024-01-10"}, scope.OwnedBy("staff-id"))

		assert.NoError(t, err)
		assert.Equal(t, 4, res.TotalRooms)
		assert.Len(t, res.Days, 1)
		assert.Equal(t, 1, res.Days[0].Occupied)
		assert.InDelta(t, 25.0, res.Days[0].OccupancyPercent, 0.001)
	})

	t.Run("carries the maintenance count across every day", func(t *testing.T) {
		svc, mocks := newReportService(t)

		gomock.InOrder(
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(10, nil),
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil),
		)
		mocks.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		res, err := svc.Forecast(context.Background(), dto.ForecastRequest{From: "2024-01-09", To: "2024-01-11"}, scope.Unrestricted())

		assert.NoError(t, err)
		for _, day := range res.Days {
			assert.Equal(t, 2, day.OutOfService)
		}
	})
}

func TestBuildForecastDays(t *testing.T) {
	day := func(value string) (from, to string) { return value, value }

	t.Run("arrival day is occupied, departure day is not", func(t *testing.T) {
		booking := stay("2024-01-10", "2024-01-12")

		tests := []struct {
			name     string
			day      string
			occupied int
		}{
			{name: "day before arrival", day: "2024-01-09", occupied: 0},
			{name: "arrival day", day: "2024-01-10", occupied: 1},
			{name: "day before departure", day: "2024-01-11", occupied: 1},
			{name: "departure day", day: "2024-01-12", occupied: 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				from, to := day(tt.day)
				fromDate, _ := timezone.Parse(constant.DayFormat, from)
				toDate, _ := timezone.Parse(constant.DayFormat, to)

				days := service.BuildForecastDays(fromDate, toDate, 5, 0, []bookingModel.Booking{booking})

				assert.Len(t, days, 1)
				assert.Equal(t, tt.occupied, days[0].Occupied)
			})
		}
	})

	t.Run("labels each day with its weekday", func(t *testing.T) {
		fromDate, _ := timezone.Parse(constant.DayFormat, "2024-01-10")

		days := service.BuildForecastDays(fromDate, fromDate, 5, 0, nil)

		assert.Len(t, days, 1)
		assert.Equal(t, "2024-01-10", days[0].Date)
		assert.Equal(t, "Wednesday", days[0].Weekday)
	})

	t.Run("zero total rooms yields zero percent", func(t *testing.T) {
		fromDate, _ := timezone.Parse(constant.DayFormat, "2024-01-10")

		days := service.BuildForecastDays(fromDate, fromDate, 0, 0, []bookingModel.Booking{stay("2024-01-10", "2024-01-12")})

		assert.Len(t, days, 1)
		assert.Zero(t, days[0].OccupancyPercent)
	})
}

func TestReportService_DashboardStats(t *testing.T) {
	t.Run("aggregates counters and in-house guests", func(t *testing.T) {
		svc, mocks := newReportService(t)

		gomock.InOrder(
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(20, nil),
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil),
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(6, nil),
			mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil),
		)

		inHouse := []bookingModel.Booking{
			{ID: "b1", Adults: 2, Kids: 1, Status: bookingModel.StatusCheckedIn},
			{ID: "b2", Adults: 1, Status: bookingModel.StatusCheckedIn},
		}
		mocks.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(inHouse, nil)

		gomock.InOrder(
			mocks.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil),
			mocks.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil),
		)

		res, err := svc.DashboardStats(context.Background(), scope.Unrestricted())

		assert.NoError(t, err)
		assert.Equal(t, 20, res.TotalRooms)
		assert.Equal(t, 12, res.AvailableRooms)
		assert.Equal(t, 6, res.OccupiedRooms)
		assert.Equal(t, 2, res.OutOfServiceRooms)
		assert.Equal(t, 4, res.InHouseGuests)
		assert.Equal(t, 3, res.TodayArrivals)
		assert.Equal(t, 4, res.TodayDepartures)
		assert.InDelta(t, 30.0, res.OccupancyPercent, 0.001)
	})

	t.Run("returns an error when a count fails", func(t *testing.T) {
		svc, mocks := newReportService(t)

		mocks.roomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := svc.DashboardStats(context.Background(), scope.Unrestricted())

		assert.Error(t, err)
	})
}

func TestReportService_DailyBookings(t *testing.T) {
	t.Run("lists bookings created today within scope", func(t *testing.T) {
		svc, mocks := newReportService(t)

		mocks.bookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Len(t, filter.Filters, 2)
				assertRoomScope(t, filter, "user-id")

				return 1, nil
			})
		mocks.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "b1"}}, nil)

		res, err := svc.DailyBookings(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, scope.OwnedBy("user-id"))

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, 1, res.TotalData)
	})
}

func TestReportService_MonthlyBookings(t *testing.T) {
	t.Run("lists bookings created this month", func(t *testing.T) {
		svc, mocks := newReportService(t)

		mocks.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mocks.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "b1"}, {ID: "b2"}}, nil)

		res, err := svc.MonthlyBookings(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, scope.Unrestricted())

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, 2, res.TotalData)
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/scope"
	"frontdesk/shared/timezone"
)

type bookingMockSet struct {
	repo      *bookingMocks.MockBooking
	guestRepo *guestMocks.MockGuest
	roomRepo  *roomMocks.MockRoom
	cache     *cacheMocks.MockRedisCache
	publisher *kafkaMocks.MockPublisher
	sqlMock   sqlmock.Sqlmock
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	ctrl := gomock.NewController(t)

	mocks := bookingMockSet{
		repo:      bookingMocks.NewMockBooking(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: kafkaMocks.NewMockPublisher(ctrl),
	}

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mocks.sqlMock = sqlMock

	conn := &postgres.Connection{Write: sqlx.NewDb(db, "sqlmock")}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mocks.repo, mocks.guestRepo, mocks.roomRepo, conn, cfg, mocks.cache, otelMocks.NewOtel(), mocks.publisher)

	return svc, mocks
}

func queryParams() gDto.QueryParams {
	return gDto.QueryParams{Page: 1, Limit: 10}
}

func createRequest(roomID *string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Guest: guestDto.UpsertGuestRequest{
			FirstName: "John",
			LastName:  "Walker",
			Email:     "john.walker@example.com",
		},
		RoomID:   roomID,
		CheckIn:  "2026-08-29",
		CheckOut: "2026-08-31",
		Adults:   2,
		Kids:     1,
	}
}

// checkedInBooking builds a checked-in stay created by "creator-id". When a
// room is assigned its owner is roomOwner, which is what restricted scopes
// match against.
func checkedInBooking(id, roomOwner string, roomID *string) model.Booking {
	checkIn, _ := timezone.Parse(constant.DayFormat, "2026-08-29")
	checkOut, _ := timezone.Parse(constant.DayFormat, "2026-08-31")

	booking := model.Booking{
		ID:            id,
		GuestID:       "guest-id",
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        2,
		Status:        model.StatusCheckedIn,
		PaymentStatus: model.PaymentStatusPending,
		BookedBy:      "creator-id",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "creator-id",
			ModifiedBy: "creator-id",
		},
	}

	if roomID != nil {
		booking.RoomOwner = &roomOwner
	}

	return booking
}

// assertRoomScope checks that a booking filter restricts visibility through
// the owning room rather than the booking's creator.
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

func TestBookingService_Create(t *testing.T) {
	roomID := "room-id"

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func(m bookingMockSet)
		wantErr    bool
		wantStatus string
	}{
		{
			name: "room assigned, booking starts checked in and room becomes occupied",
			req:  createRequest(&roomID),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectCommit()

				room := roomModel.Room{ID: roomID, Status: roomModel.StatusAvailable}
				m.roomRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.guestRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, nil)

				m.guestRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, model.StatusCheckedIn, booking.Status)
						assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)
						return nil
					})

				m.roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusOccupied, req[roomModel.FieldStatus])
						return nil
					})

				m.publisher.EXPECT().
					Publish(gomock.Any(), constant.EventBookingCreated, gomock.Any())

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantStatus: model.StatusCheckedIn,
		},
		{
			name: "no room assigned, booking starts confirmed",
			req:  createRequest(nil),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectCommit()

				m.guestRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-id", Email: "john.walker@example.com"}, nil)

				m.guestRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.Equal(t, "guest-id", booking.GuestID)
						return nil
					})

				m.publisher.EXPECT().
					Publish(gomock.Any(), constant.EventBookingCreated, gomock.Any())

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantStatus: model.StatusConfirmed,
		},
		{
			name: "invalid dates rejected before any persistence",
			req: dto.CreateBookingRequest{
				Guest:    guestDto.UpsertGuestRequest{FirstName: "John", Email: "j@example.com"},
				CheckIn:  "2026-08-31",
				CheckOut: "2026-08-29",
				Adults:   1,
			},
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "room not available",
			req:  createRequest(&roomID),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectRollback()

				room := roomModel.Room{ID: roomID, Status: roomModel.StatusMaintenance}
				m.roomRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: true,
		},
		{
			name: "insert failure rolls the whole block back, nothing published",
			req:  createRequest(&roomID),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectRollback()

				room := roomModel.Room{ID: roomID, Status: roomModel.StatusAvailable}
				m.roomRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(room, nil)

				m.guestRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, nil)

				m.guestRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newBookingService(t)
			tt.setupMock(mocks)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.NoError(t, mocks.sqlMock.ExpectationsWereMet())
			}
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	roomID := "room-id"

	tests := []struct {
		name         string
		sc           scope.Scope
		setupMock    func(m bookingMockSet)
		wantErr      bool
		wantConflict bool
	}{
		{
			name: "checked-in booking with room, room turns dirty",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectCommit()

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", &roomID), nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ any) error {
						assert.Equal(t, model.StatusCheckedOut, req[model.FieldStatus])
						return nil
					})

				m.roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusDirty, req[roomModel.FieldStatus])
						return nil
					})

				m.publisher.EXPECT().
					Publish(gomock.Any(), constant.EventBookingCheckedOut, gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room-less booking checks out without touching rooms",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectCommit()

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", nil), nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					Publish(gomock.Any(), constant.EventBookingCheckedOut, gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "already checked out",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectRollback()

				booking := checkedInBooking("booking-id", "owner-id", &roomID)
				booking.Status = model.StatusCheckedOut

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "confirmed booking cannot check out",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectRollback()

				booking := checkedInBooking("booking-id", "owner-id", nil)
				booking.Status = model.StatusConfirmed

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "booking not found",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectRollback()

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "booking on another user's room",
			sc:   scope.OwnedBy("someone-else"),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectRollback()

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", &roomID), nil)
			},
			wantErr: true,
		},
		{
			name: "room owner checks out a booking created by another user",
			sc:   scope.OwnedBy("owner-id"),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectCommit()

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", &roomID), nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					Publish(gomock.Any(), constant.EventBookingCheckedOut, gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room-less booking is invisible to a restricted scope",
			sc:   scope.OwnedBy("owner-id"),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectRollback()

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", nil), nil)
			},
			wantErr: true,
		},
		{
			name: "room update failure rolls back, nothing published",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.sqlMock.ExpectBegin()
				m.sqlMock.ExpectRollback()

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", &roomID), nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newBookingService(t)
			tt.setupMock(mocks)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CheckOut(ctx, "booking-id", tt.sc)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantConflict {
					assert.True(t, failure.IsConflict(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCheckedOut, res.Status)
				assert.NoError(t, mocks.sqlMock.ExpectationsWereMet())
			}
		})
	}
}

func TestBookingService_UpdatePaymentStatus(t *testing.T) {
	tests := []struct {
		name      string
		sc        scope.Scope
		setupMock func(m bookingMockSet)
		wantErr   bool
	}{
		{
			name: "pending folio settles",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", nil), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, model.PaymentStatusPaid, req[model.FieldPaymentStatus])
						return nil
					})

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "already paid is a no-op",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				booking := checkedInBooking("booking-id", "owner-id", nil)
				booking.PaymentStatus = model.PaymentStatusPaid

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "booking on another user's room",
			sc:   scope.OwnedBy("someone-else"),
			setupMock: func(m bookingMockSet) {
				roomID := "room-id"
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", &roomID), nil)
			},
			wantErr: true,
		},
		{
			name: "room-less booking is invisible to a restricted scope",
			sc:   scope.OwnedBy("owner-id"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", nil), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newBookingService(t)
			tt.setupMock(mocks)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdatePaymentStatus(ctx, "booking-id", tt.sc)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	roomID := "room-id"

	tests := []struct {
		name      string
		sc        scope.Scope
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantRoom  bool
	}{
		{
			name: "detail includes guest and room",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", &roomID), nil)

				m.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-id", FirstName: "John"}, nil)

				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: roomID, RoomNumber: "101"}, nil)
			},
			wantErr:  false,
			wantRoom: true,
		},
		{
			name: "room-less booking detail",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", nil), nil)

				m.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-id", FirstName: "John"}, nil)
			},
			wantErr:  false,
			wantRoom: false,
		},
		{
			name: "room owner reads a booking created by another user",
			sc:   scope.OwnedBy("owner-id"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", &roomID), nil)

				m.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-id", FirstName: "John"}, nil)

				m.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: roomID, RoomNumber: "101"}, nil)
			},
			wantErr:  false,
			wantRoom: true,
		},
		{
			name: "restricted scope cannot read a booking on another user's room",
			sc:   scope.OwnedBy("someone-else"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", &roomID), nil)
			},
			wantErr: true,
		},
		{
			name: "room-less booking is invisible to a restricted scope",
			sc:   scope.OwnedBy("owner-id"),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking("booking-id", "owner-id", nil), nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			sc:   scope.Unrestricted(),
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newBookingService(t)
			tt.setupMock(mocks)

			res, err := svc.Get(context.Background(), "booking-id", tt.sc)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, res.Guest)
				if tt.wantRoom {
					assert.NotNil(t, res.Room)
				} else {
					assert.Nil(t, res.Room)
				}
			}
		})
	}
}

func TestBookingService_GetActive(t *testing.T) {
	svc, mocks := newBookingService(t)

	mocks.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mocks.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			assertRoomScope(t, filter, "owner-id")

			return 1, nil
		})

	mocks.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{checkedInBooking("booking-id", "owner-id", nil)}, nil)

	mocks.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetActive(context.Background(), queryParams(), scope.OwnedBy("owner-id"))

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
}

func TestBookingService_GetArrivals(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		svc, _ := newBookingService(t)

		_, err := svc.GetArrivals(context.Background(), queryParams(), "29-08-2026", scope.Unrestricted())

		assert.Error(t, err)
	})

	t.Run("valid date", func(t *testing.T) {
		svc, mocks := newBookingService(t)

		mocks.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mocks.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		mocks.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		mocks.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetArrivals(context.Background(), queryParams(), "2026-08-29", scope.Unrestricted())

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalData)
	})
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/scope"
	"frontdesk/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	cachePrefixBooking = "booking"
	cachePrefixGuest   = "guest"
	cachePrefixRoom    = "room"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string, sc scope.Scope) (dto.CheckOutResponse, error)
	UpdatePaymentStatus(ctx context.Context, id string, sc scope.Scope) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetActive(ctx context.Context, req gDto.QueryParams, sc scope.Scope) (dto.GetBookingsResponse, error)
	GetArrivals(ctx context.Context, req gDto.QueryParams, date string, sc scope.Scope) (dto.GetBookingsResponse, error)
	GetDepartures(ctx context.Context, req gDto.QueryParams, date string, sc scope.Scope) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string, sc scope.Scope) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	guestRepo guestRepo.Guest
	roomRepo  roomRepo.Room
	db        *postgres.Connection
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher kafka.Publisher
}

func New(
	repo repository.Booking,
	guestRepo guestRepo.Guest,
	roomRepo roomRepo.Room,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher kafka.Publisher,
) Booking {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		db:        db,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

// Create registers a booking in one transaction: the guest is upserted by
// email, the booking row is inserted, and an assigned room flips to OCCUPIED.
// Any failure rolls the whole block back.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user, constant.Empty)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error())
	}

	err = s.db.Transact(ctx, func(tx *sqlx.Tx) error {
		if booking.RoomID != nil {
			room, err := s.roomRepo.GetTx(ctx, tx, shared.FilterByID(*booking.RoomID, roomModel.FieldID, roomModel.TableName))
			if err != nil {
				return fmt.Errorf("failed to get room: %w", err)
			}

			if room.ID == constant.Empty {
				return failure.BadRequestFromString("room does not exist")
			}

			if room.Status != roomModel.StatusAvailable {
				return failure.Conflict("room is not available")
			}
		}

		guest, err := s.upsertGuestTx(ctx, tx, req.Guest, user)
		if err != nil {
			return err
		}
		booking.GuestID = guest.ID

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		if booking.RoomID != nil {
			occupied := shared.TransformFields(struct {
				Status string `db:"status"`
			}{Status: roomModel.StatusOccupied}, user)

			roomFilter := shared.FilterByID(*booking.RoomID, roomModel.FieldID, roomModel.TableName)
			if err := s.roomRepo.UpdateTx(ctx, tx, occupied, roomFilter); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.publisher.Publish(ctx, constant.EventBookingCreated, res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixBooking, cachePrefixGuest, cachePrefixRoom)
	}()

	return res, nil
}

// upsertGuestTx finds a guest by email inside the transaction, refreshing the
// contact fields when found and inserting a new profile otherwise.
func (s *serviceImpl) upsertGuestTx(ctx context.Context, tx *sqlx.Tx, req guestDto.UpsertGuestRequest, user string) (guestModel.Guest, error) {
	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    guestModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    guestModel.TableName,
			},
		},
	}

	guest, err := s.guestRepo.GetTx(ctx, tx, emailFilter)
	if err != nil {
		return guest, fmt.Errorf("failed to look up guest: %w", err)
	}

	if guest.ID == constant.Empty {
		guest = req.ToModel(user)
		if err := s.guestRepo.InsertTx(ctx, tx, guest); err != nil {
			return guest, err
		}

		return guest, nil
	}

	updatedFields := shared.TransformFields(req.ContactFields(), user)
	if len(updatedFields) > 0 {
		filter := shared.FilterByID(guest.ID, guestModel.FieldID, guestModel.TableName)
		if err := s.guestRepo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return guest, err
		}
	}

	return guest, nil
}

// CheckOut closes a checked-in stay: the booking moves to CHECKED_OUT and the
// assigned room to DIRTY, atomically.
func (s *serviceImpl) CheckOut(ctx context.Context, id string, sc scope.Scope) (res dto.CheckOutResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.db.Transact(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found")
		}

		if !sc.Allows(booking.OwnedBy()) {
			return failure.Forbidden("booking's room belongs to another user")
		}

		if booking.Status == model.StatusCheckedOut {
			return failure.Conflict("booking is already checked out")
		}

		if booking.Status != model.StatusCheckedIn {
			return failure.Conflict("only checked-in bookings can check out")
		}

		checkedOut := shared.TransformFields(struct {
			Status string `db:"status"`
		}{Status: model.StatusCheckedOut}, user)

		if err := s.repo.UpdateTx(ctx, tx, checkedOut, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if booking.RoomID != nil {
			dirty := shared.TransformFields(struct {
				Status string `db:"status"`
			}{Status: roomModel.StatusDirty}, user)

			roomFilter := shared.FilterByID(*booking.RoomID, roomModel.FieldID, roomModel.TableName)
			if err := s.roomRepo.UpdateTx(ctx, tx, dirty, roomFilter); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to check out booking")

		return res, fmt.Errorf("failed to check out booking: %w", err)
	}

	res = dto.CheckOutResponse{
		BookingID:     booking.ID,
		Status:        model.StatusCheckedOut,
		RoomID:        booking.RoomID,
		CheckedOutAt:  timezone.Now(),
		PaymentStatus: booking.PaymentStatus,
	}
	if booking.RoomID != nil {
		res.RoomStatus = roomModel.StatusDirty
	}

	s.publisher.Publish(ctx, constant.EventBookingCheckedOut, res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cachePrefixBooking, cachePrefixRoom)
	}()

	return res, nil
}

// UpdatePaymentStatus settles the folio. No room side effect.
func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, id string, sc scope.Scope) (err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	if !sc.Allows(booking.OwnedBy()) {
		return failure.Forbidden("booking's room belongs to another user")
	}

	if booking.PaymentStatus == model.PaymentStatusPaid {
		return nil
	}

	paid := shared.TransformFields(struct {
		PaymentStatus string `db:"payment_status"`
	}{PaymentStatus: model.PaymentStatusPaid}, user)

	if err := s.repo.Update(ctx, paid, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// GetActive lists in-house and upcoming stays.
func (s *serviceImpl) GetActive(ctx context.Context, req gDto.QueryParams, sc scope.Scope) (res dto.GetBookingsResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusConfirmed, model.StatusCheckedIn},
				Table:    model.TableName,
			},
		},
	}
	filter.Merge(sc.Filter(roomModel.TableName))

	return s.GetAll(ctx, req, filter)
}

// GetArrivals lists CONFIRMED bookings whose check-in falls on the given day.
func (s *serviceImpl) GetArrivals(ctx context.Context, req gDto.QueryParams, date string, sc scope.Scope) (res dto.GetBookingsResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetArrivals")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	day, err := timezone.Parse(constant.DayFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusConfirmed,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "arrival_from",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.DayStart(day),
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "arrival_to",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    timezone.DayEnd(day),
				Table:    model.TableName,
			},
		},
	}
	filter.Merge(sc.Filter(roomModel.TableName))

	return s.GetAll(ctx, req, filter)
}

// GetDepartures lists CHECKED_IN bookings whose check-out falls on the given day.
func (s *serviceImpl) GetDepartures(ctx context.Context, req gDto.QueryParams, date string, sc scope.Scope) (res dto.GetBookingsResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDepartures")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	day, err := timezone.Parse(constant.DayFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format, expected YYYY-MM-DD")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusCheckedIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "departure_from",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.DayStart(day),
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "departure_to",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorLessEq,
				Value:    timezone.DayEnd(day),
				Table:    model.TableName,
			},
		},
	}
	filter.Merge(sc.Filter(roomModel.TableName))

	return s.GetAll(ctx, req, filter)
}

// Get returns the booking with its guest profile and room snapshot.
func (s *serviceImpl) Get(ctx context.Context, id string, sc scope.Scope) (res dto.BookingResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	if !sc.Allows(booking.OwnedBy()) {
		return res, failure.Forbidden("booking's room belongs to another user")
	}

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(booking.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking guest")

		return res, fmt.Errorf("failed to get booking guest: %w", err)
	}

	var room *roomModel.Room
	if booking.RoomID != nil {
		r, err := s.roomRepo.Get(ctx, shared.FilterByID(*booking.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking room")

			return res, fmt.Errorf("failed to get booking room: %w", err)
		}

		if r.ID != constant.Empty {
			room = &r
		}
	}

	res.FromDetail(booking, guest, room)

	return res, nil
}

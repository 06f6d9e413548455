package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/audit/model"
	"frontdesk/internal/domains/audit/model/dto"
	"frontdesk/internal/domains/audit/repository"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	userService "frontdesk/internal/domains/user/service"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

const (
	cacheGetAllAudit = "audit:gets"
	cacheCountAudit  = "audit:count"

	cachePrefixBooking = "booking"
)

type Audit interface {
	Run(ctx context.Context) (dto.RunAuditResponse, error)
	RunScheduled(ctx context.Context) (dto.RunAuditResponse, error)
	PreAudit(ctx context.Context) (dto.PreAuditResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
}

type serviceImpl struct {
	repo        repository.Audit
	bookingRepo bookingRepo.Booking
	userSvc     userService.User
	db          *postgres.Connection
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	publisher   kafka.Publisher
}

func New(
	repo repository.Audit,
	bookingRepo bookingRepo.Booking,
	userSvc userService.User,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher kafka.Publisher,
) Audit {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		userSvc:     userSvc,
		db:          db,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		publisher:   publisher,
	}
}

// Run closes today's business date on behalf of the signed-in administrator.
func (s *serviceImpl) Run(ctx context.Context) (res dto.RunAuditResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Run")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.run(ctx, timezone.Now(), actor)
}

// RunScheduled closes yesterday's business date. The cron caller has no user
// identity, so the run is attributed to the oldest administrator account.
func (s *serviceImpl) RunScheduled(ctx context.Context) (res dto.RunAuditResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RunScheduled")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	admin, err := s.userSvc.GetFirstAdmin(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve actor for scheduled audit")

		return res, err
	}

	return s.run(ctx, timezone.Yesterday(timezone.Now()), admin.ID)
}

func (s *serviceImpl) run(ctx context.Context, date time.Time, actor string) (res dto.RunAuditResponse, err error) {
	businessDate := timezone.BusinessDate(date)

	dateFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBusinessDate,
				Operator: gDto.FilterOperatorEq,
				Value:    businessDate,
				Table:    model.TableName,
			},
		},
	}

	alreadyRun, err := s.repo.Exist(ctx, dateFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check audit log")

		return res, fmt.Errorf("failed to check audit log: %w", err)
	}

	if alreadyRun {
		return res, failure.Conflict("night audit already run for this business date")
	}

	auditLog := model.AuditLog{
		ID:           uuid.NewString(),
		BusinessDate: businessDate,
		RunBy:        actor,
		RunAt:        timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	err = s.db.Transact(ctx, func(tx *sqlx.Tx) error {
		candidates, err := s.bookingRepo.GetAllTx(ctx, tx, noShowCandidateFilter(businessDate))
		if err != nil {
			return fmt.Errorf("failed to select no-show candidates: %w", err)
		}

		if len(candidates) > 0 {
			ids := make([]string, len(candidates))
			for i, booking := range candidates {
				ids[i] = booking.ID
			}

			noShow := shared.TransformFields(struct {
				Status string `db:"status"`
			}{Status: bookingModel.StatusNoShow}, actor)

			bulkFilter := gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{
						Field:    bookingModel.FieldID,
						Operator: gDto.FilterOperatorIn,
						Value:    ids,
						Table:    bookingModel.TableName,
					},
					gDto.Filter{
						Field:    bookingModel.FieldStatus,
						Operator: gDto.FilterOperatorEq,
						Value:    bookingModel.StatusConfirmed,
						Table:    bookingModel.TableName,
					},
				},
			}

			if err := s.bookingRepo.UpdateTx(ctx, tx, noShow, bulkFilter); err != nil {
				return err
			}

			auditLog.ProcessedNoShows = len(ids)
			auditLog.NoShowBookingIDs = ids
		}

		return s.repo.InsertTx(ctx, tx, auditLog)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("night audit already run for this business date")
		}

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to run night audit")

		return res, fmt.Errorf("failed to run night audit: %w", err)
	}

	res.FromModel(auditLog)

	s.publisher.Publish(ctx, constant.EventAuditCompleted, res)
	if auditLog.ProcessedNoShows > 0 {
		s.publisher.Publish(ctx, constant.EventBookingNoShow, res.NoShowBookingIDs)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixBooking, cacheGetAllAudit, cacheCountAudit)
	}()

	return res, nil
}

// noShowCandidateFilter selects CONFIRMED bookings whose check-in falls on or
// before the end of the business date.
func noShowCandidateFilter(businessDate time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingModel.StatusConfirmed,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "no_show_cutoff",
				Field:    bookingModel.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    timezone.DayEnd(businessDate),
				Table:    bookingModel.TableName,
			},
		},
	}
}

// PreAudit reports the front-desk counts for today's business date. Always
// computed fresh.
func (s *serviceImpl) PreAudit(ctx context.Context) (res dto.PreAuditResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PreAudit")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	today := timezone.BusinessDate(timezone.Now())
	res.BusinessDate = timezone.Format(today, constant.DayFormat)

	// Arrival and departure counts go by date alone, whatever state the
	// booking is in.
	arrivals := gDto.FilterGroup{
		Filters: []any{
			rangeFilter("arrival_from", bookingModel.FieldCheckIn, gDto.FilterOperatorGreaterEq, timezone.DayStart(today)),
			rangeFilter("arrival_to", bookingModel.FieldCheckIn, gDto.FilterOperatorLessEq, timezone.DayEnd(today)),
		},
	}

	if res.ExpectedArrivals, err = s.bookingRepo.Count(ctx, arrivals); err != nil {
		return res, fmt.Errorf("failed to count expected arrivals: %w", err)
	}

	departures := gDto.FilterGroup{
		Filters: []any{
			rangeFilter("departure_from", bookingModel.FieldCheckOut, gDto.FilterOperatorGreaterEq, timezone.DayStart(today)),
			rangeFilter("departure_to", bookingModel.FieldCheckOut, gDto.FilterOperatorLessEq, timezone.DayEnd(today)),
		},
	}

	if res.ExpectedDepartures, err = s.bookingRepo.Count(ctx, departures); err != nil {
		return res, fmt.Errorf("failed to count expected departures: %w", err)
	}

	stayOvers := gDto.FilterGroup{
		Filters: []any{
			statusFilter(bookingModel.StatusCheckedIn),
			rangeFilter("stay_over_after", bookingModel.FieldCheckOut, gDto.FilterOperatorGreater, timezone.DayEnd(today)),
		},
	}

	if res.StayOvers, err = s.bookingRepo.Count(ctx, stayOvers); err != nil {
		return res, fmt.Errorf("failed to count stay-overs: %w", err)
	}

	if res.NoShowCandidates, err = s.bookingRepo.Count(ctx, noShowCandidateFilter(today)); err != nil {
		return res, fmt.Errorf("failed to count no-show candidates: %w", err)
	}

	return res, nil
}

func statusFilter(status string) gDto.Filter {
	return gDto.Filter{
		Field:    bookingModel.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    status,
		Table:    bookingModel.TableName,
	}
}

func rangeFilter(argName, field, operator string, value time.Time) gDto.Filter {
	return gDto.Filter{
		ArgName:  argName,
		Field:    field,
		Operator: operator,
		Value:    value,
		Table:    bookingModel.TableName,
	}
}

// GetAll lists past audit runs.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer otelScope.End()
	defer otelScope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAudit, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save audit logs to cache")
		}
	}()

	return res, nil
}

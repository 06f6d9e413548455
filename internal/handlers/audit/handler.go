package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/audit/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit", func(routerGroup chi.Router) {
		routerGroup.Post("/run", handler.RunAudit)
		routerGroup.Post("/cron", handler.RunScheduledAudit)
		routerGroup.Get("/pre", handler.PreAudit)
		routerGroup.Get("/logs", handler.GetAuditLogs)
	})
}

// RunAudit runs the night audit for today's business date.
// @Summary Run the night audit
// @Description Close out today's business date, converting stale CONFIRMED bookings to NO_SHOW. Admin only. At most one run per business date.
// @Tags Audit
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RunAuditResponse] "Audit result"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit/run [post]
// @Security BearerAuth
func (handler *Handler) RunAudit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunAudit")
	defer scope.End()

	res, err := handler.service.Run(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run night audit")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Night audit run successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// RunScheduledAudit runs the night audit for yesterday's business date on
// behalf of the scheduler.
// @Summary Run the scheduled night audit
// @Description Close out yesterday's business date. Called by the external scheduler with the shared API key.
// @Tags Audit
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RunAuditResponse] "Audit result"
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit/cron [post]
// @Security ApiKeyAuth
func (handler *Handler) RunScheduledAudit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunScheduledAudit")
	defer scope.End()

	res, err := handler.service.RunScheduled(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run scheduled night audit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Scheduled night audit run successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// PreAudit reports the counts the front desk reviews before closing the date.
// @Summary Get pre-audit counts
// @Description Report today's expected arrivals, expected departures, stay-overs and no-show candidates. Computed fresh on every call.
// @Tags Audit
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PreAuditResponse] "Pre-audit counts"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit/pre [get]
// @Security BearerAuth
func (handler *Handler) PreAudit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreAudit")
	defer scope.End()

	res, err := handler.service.PreAudit(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute pre-audit counts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pre-audit counts computed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetAuditLogs lists past audit runs.
// @Summary Get audit logs
// @Description Retrieve the ledger of past night audit runs. Admin only.
// @Tags Audit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetAuditLogsResponse] "List of audit logs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit/logs [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	logs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}

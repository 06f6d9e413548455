package dto

import (
	"time"

	"frontdesk/internal/domains/audit/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

// RunAuditResponse summarizes a night audit run.
type RunAuditResponse struct {
	AuditLogID       string    `json:"audit_log_id"`
	BusinessDate     string    `json:"business_date"`
	RunBy            string    `json:"run_by"`
	RunAt            time.Time `json:"run_at"`
	ProcessedNoShows int       `json:"processed_no_shows"`
	NoShowBookingIDs []string  `json:"no_show_booking_ids"`
}

func (r *RunAuditResponse) FromModel(model model.AuditLog) {
	r.AuditLogID = model.ID
	r.BusinessDate = timezone.Format(model.BusinessDate, constant.DayFormat)
	r.RunBy = model.RunBy
	r.RunAt = model.RunAt
	r.ProcessedNoShows = model.ProcessedNoShows
	r.NoShowBookingIDs = model.NoShowBookingIDs
}

// PreAuditResponse carries the fresh pre-audit counts for a business date.
// Never cached.
type PreAuditResponse struct {
	BusinessDate       string `json:"business_date"`
	ExpectedArrivals   int    `json:"expected_arrivals"`
	ExpectedDepartures int    `json:"expected_departures"`
	StayOvers          int    `json:"stay_overs"`
	NoShowCandidates   int    `json:"no_show_candidates"`
}

type AuditLogResponse struct {
	ID               string    `json:"id"`
	BusinessDate     string    `json:"business_date"`
	RunBy            string    `json:"run_by"`
	RunAt            time.Time `json:"run_at"`
	ProcessedNoShows int       `json:"processed_no_shows"`
	NoShowBookingIDs []string  `json:"no_show_booking_ids"`
	gDto.Metadata
}

func (a *AuditLogResponse) FromModel(model model.AuditLog) {
	a.ID = model.ID
	a.BusinessDate = timezone.Format(model.BusinessDate, constant.DayFormat)
	a.RunBy = model.RunBy
	a.RunAt = model.RunAt
	a.ProcessedNoShows = model.ProcessedNoShows
	a.NoShowBookingIDs = model.NoShowBookingIDs
	a.Metadata.FromModel(model.Metadata)
}

type GetAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"audit_logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.AuditLogs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		g.AuditLogs[i].FromModel(mod)
	}
}

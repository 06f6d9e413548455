package model

import (
	"time"

	"github.com/lib/pq"

	"frontdesk/shared/model"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID               = "id"
	FieldBusinessDate     = "business_date"
	FieldRunBy            = "run_by"
	FieldRunAt            = "run_at"
	FieldProcessedNoShows = "processed_no_shows"
	FieldNoShowBookingIDs = "no_show_booking_ids"
)

type AuditLog struct {
	ID               string         `db:"id"`
	BusinessDate     time.Time      `db:"business_date"`
	RunBy            string         `db:"run_by"`
	RunAt            time.Time      `db:"run_at"`
	ProcessedNoShows int            `db:"processed_no_shows"`
	NoShowBookingIDs pq.StringArray `db:"no_show_booking_ids"`
	model.Metadata
}

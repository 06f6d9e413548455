package model

import "frontdesk/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldRoomNumber   = "room_number"
	FieldRoomType     = "room_type"
	FieldStatus       = "status"
	FieldRatePerNight = "rate_per_night"
	FieldImage        = "image"
	FieldActive       = "active"
)

const (
	StatusAvailable   = "AVAILABLE"
	StatusOccupied    = "OCCUPIED"
	StatusMaintenance = "MAINTENANCE"
	StatusDirty       = "DIRTY"
)

type Room struct {
	ID           string `db:"id"`
	RoomNumber   string `db:"room_number"`
	RoomType     string `db:"room_type"`
	Status       string `db:"status"`
	RatePerNight int64  `db:"rate_per_night"`
	Image        string `db:"image"`
	Active       bool   `db:"active"`
	model.Metadata
}

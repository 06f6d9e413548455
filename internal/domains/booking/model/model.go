package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldAdults          = "adults"
	FieldKids            = "kids"
	FieldTotalAmount     = "total_amount"
	FieldRateCode        = "rate_code"
	FieldSource          = "source"
	FieldAgent           = "agent"
	FieldReservationType = "reservation_type"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldBookedBy        = "booked_by"
)

const (
	StatusConfirmed  = "CONFIRMED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
	StatusNoShow     = "NO_SHOW"
	StatusCancelled  = "CANCELLED"

	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

// Booking joins its assigned room on every select so that visibility checks
// and scope filters resolve through the room's creator. RoomOwner is nil for
// unassigned bookings.
type Booking struct {
	ID              string    `db:"id"`
	GuestID         string    `db:"guest_id"`
	RoomID          *string   `db:"room_id"`
	RoomOwner       *string   `db:"room_owner" table:"rooms" column:"created_by"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Adults          int       `db:"adults"`
	Kids            int       `db:"kids"`
	TotalAmount     int64     `db:"total_amount"`
	RateCode        string    `db:"rate_code"`
	Source          string    `db:"source"`
	Agent           string    `db:"agent"`
	ReservationType string    `db:"reservation_type"`
	Status          string    `db:"status"`
	PaymentStatus   string    `db:"payment_status"`
	BookedBy        string    `db:"booked_by"`
	model.Metadata
}

// JoinQuery pulls the owning room into every booking select.
func (Booking) JoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = " + TableName + "." + FieldRoomID
}

// OwnedBy reports the room owner a restricted scope matches against. A
// booking without a room has no owner a restricted caller can match.
func (b Booking) OwnedBy() string {
	if b.RoomOwner == nil {
		return ""
	}

	return *b.RoomOwner
}

// IsFinal reports whether the booking can no longer move to another status.
func (b Booking) IsFinal() bool {
	switch b.Status {
	case StatusCheckedOut, StatusNoShow, StatusCancelled:
		return true
	}

	return false
}

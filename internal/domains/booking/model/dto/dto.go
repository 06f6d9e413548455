package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"frontdesk/internal/domains/booking/model"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateBookingRequest struct {
	Guest           guestDto.UpsertGuestRequest `json:"guest"            validate:"required"`
	RoomID          *string                     `json:"room_id"          validate:"omitempty,uuid"`
	CheckIn         string                      `json:"check_in"         validate:"required,dateonly"`
	CheckOut        string                      `json:"check_out"        validate:"required,dateonly"`
	Adults          int                         `json:"adults"           validate:"required,min=1"`
	Kids            int                         `json:"kids"             validate:"omitempty,min=0"`
	TotalAmount     int64                       `json:"total_amount"     validate:"omitempty,min=0"`
	RateCode        string                      `json:"rate_code"        validate:"omitempty,max=50"`
	Source          string                      `json:"source"           validate:"omitempty,max=50"`
	Agent           string                      `json:"agent"            validate:"omitempty,max=100"`
	ReservationType string                      `json:"reservation_type" validate:"omitempty,max=50"`
}

// ToModel builds the booking in its initial state. A booking with a room
// assigned starts CHECKED_IN, a room-less reservation starts CONFIRMED.
func (c *CreateBookingRequest) ToModel(user, guestID string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DayFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check_in date: %w", err)
	}

	checkOut, err := timezone.Parse(constant.DayFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check_out date: %w", err)
	}

	if !checkOut.After(checkIn) {
		return model.Booking{}, fmt.Errorf("check_out must be after check_in")
	}

	status := model.StatusConfirmed
	if c.RoomID != nil {
		status = model.StatusCheckedIn
	}

	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         guestID,
		RoomID:          c.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          c.Adults,
		Kids:            c.Kids,
		TotalAmount:     c.TotalAmount,
		RateCode:        c.RateCode,
		Source:          c.Source,
		Agent:           c.Agent,
		ReservationType: c.ReservationType,
		Status:          status,
		PaymentStatus:   model.PaymentStatusPending,
		BookedBy:        user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID              string                  `json:"id"`
	GuestID         string                  `json:"guest_id"`
	RoomID          *string                 `json:"room_id"`
	CheckIn         string                  `json:"check_in"`
	CheckOut        string                  `json:"check_out"`
	Adults          int                     `json:"adults"`
	Kids            int                     `json:"kids"`
	TotalAmount     int64                   `json:"total_amount"`
	RateCode        string                  `json:"rate_code"`
	Source          string                  `json:"source"`
	Agent           string                  `json:"agent"`
	ReservationType string                  `json:"reservation_type"`
	Status          string                  `json:"status"`
	PaymentStatus   string                  `json:"payment_status"`
	BookedBy        string                  `json:"booked_by"`
	Guest           *guestDto.GuestResponse `json:"guest,omitempty"`
	Room            *roomDto.RoomResponse   `json:"room,omitempty"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.GuestID = model.GuestID
	b.RoomID = model.RoomID
	b.CheckIn = timezone.Format(model.CheckIn, constant.DayFormat)
	b.CheckOut = timezone.Format(model.CheckOut, constant.DayFormat)
	b.Adults = model.Adults
	b.Kids = model.Kids
	b.TotalAmount = model.TotalAmount
	b.RateCode = model.RateCode
	b.Source = model.Source
	b.Agent = model.Agent
	b.ReservationType = model.ReservationType
	b.Status = model.Status
	b.PaymentStatus = model.PaymentStatus
	b.BookedBy = model.BookedBy
	b.Metadata.FromModel(model.Metadata)
}

// FromDetail enriches the response with the guest profile and, when assigned,
// the room snapshot. Used by the folio view.
func (b *BookingResponse) FromDetail(booking model.Booking, guest guestModel.Guest, room *roomModel.Room) {
	b.FromModel(booking)

	guestRes := guestDto.GuestResponse{}
	guestRes.FromModel(guest)
	b.Guest = &guestRes

	if room != nil {
		roomRes := roomDto.RoomResponse{}
		roomRes.FromModel(*room)
		b.Room = &roomRes
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

// CheckOutResponse reports the post-transition snapshot.
type CheckOutResponse struct {
	BookingID     string    `json:"booking_id"`
	Status        string    `json:"status"`
	RoomID        *string   `json:"room_id"`
	RoomStatus    string    `json:"room_status,omitempty"`
	CheckedOutAt  time.Time `json:"checked_out_at"`
	PaymentStatus string    `json:"payment_status"`
}

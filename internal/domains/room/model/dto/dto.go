package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber   string                `json:"room_number"    validate:"required,max=20"`
	RoomType     string                `json:"room_type"      validate:"required,oneof=SINGLE DOUBLE SUITE DELUXE"`
	RatePerNight int64                 `json:"rate_per_night" validate:"required,min=0"`
	Image        *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	return model.Room{
		ID:           uuid.NewString(),
		RoomNumber:   c.RoomNumber,
		RoomType:     c.RoomType,
		Status:       model.StatusAvailable,
		RatePerNight: c.RatePerNight,
		Image:        imageURL,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateRoomsBulkRequest struct {
	Rooms []CreateRoomItem `json:"rooms" validate:"required,min=1,max=100,dive"`
}

type CreateRoomItem struct {
	RoomNumber   string `json:"room_number"    validate:"required,max=20"`
	RoomType     string `json:"room_type"      validate:"required,oneof=SINGLE DOUBLE SUITE DELUXE"`
	RatePerNight int64  `json:"rate_per_night" validate:"required,min=0"`
}

func (c *CreateRoomsBulkRequest) ToModels(user string) []model.Room {
	rooms := make([]model.Room, len(c.Rooms))
	for i, item := range c.Rooms {
		rooms[i] = model.Room{
			ID:           uuid.NewString(),
			RoomNumber:   item.RoomNumber,
			RoomType:     item.RoomType,
			Status:       model.StatusAvailable,
			RatePerNight: item.RatePerNight,
			Active:       true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return rooms
}

type UpdateRoomRequest struct {
	RoomType     string                `db:"room_type"      json:"room_type" validate:"omitempty,oneof=SINGLE DOUBLE SUITE DELUXE"`
	RatePerNight *int64                `db:"rate_per_night" json:"rate_per_night" validate:"omitempty,min=0"`
	Image        *multipart.FileHeader `json:"image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	Active       *bool                 `db:"active" json:"active" validate:"omitempty"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE DIRTY"`
}

type RoomResponse struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"room_number"`
	RoomType     string `json:"room_type"`
	Status       string `json:"status"`
	RatePerNight int64  `json:"rate_per_night"`
	Image        string `json:"image"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Status = model.Status
	r.RatePerNight = model.RatePerNight
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

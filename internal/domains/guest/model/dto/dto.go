package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

// UpsertGuestRequest carries the guest profile attached to a booking. When the
// email already exists the contact fields overwrite the stored record.
type UpsertGuestRequest struct {
	Title       string `json:"title"       validate:"omitempty,max=20"`
	FirstName   string `json:"first_name"  validate:"required,max=100"`
	MiddleName  string `json:"middle_name" validate:"omitempty,max=100"`
	LastName    string `json:"last_name"   validate:"omitempty,max=100"`
	Email       string `json:"email"       validate:"required,email,max=255"`
	Phone       string `json:"phone"       validate:"omitempty,max=30"`
	Nationality string `json:"nationality" validate:"omitempty,max=100"`
}

func (u *UpsertGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:          uuid.NewString(),
		Title:       u.Title,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		LastName:    u.LastName,
		Email:       u.Email,
		Phone:       u.Phone,
		Nationality: u.Nationality,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ContactFields returns the db-tagged subset written when the guest already
// exists.
func (u *UpsertGuestRequest) ContactFields() any {
	return struct {
		Title       string `db:"title"`
		FirstName   string `db:"first_name"`
		MiddleName  string `db:"middle_name"`
		LastName    string `db:"last_name"`
		Phone       string `db:"phone"`
		Nationality string `db:"nationality"`
	}{
		Title:       u.Title,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Nationality: u.Nationality,
	}
}

type UpdateGuestRequest struct {
	Title       string `db:"title"       json:"title"       validate:"omitempty,max=20"`
	FirstName   string `db:"first_name"  json:"first_name"  validate:"omitempty,max=100"`
	MiddleName  string `db:"middle_name" json:"middle_name" validate:"omitempty,max=100"`
	LastName    string `db:"last_name"   json:"last_name"   validate:"omitempty,max=100"`
	Phone       string `db:"phone"       json:"phone"       validate:"omitempty,max=30"`
	Nationality string `db:"nationality" json:"nationality" validate:"omitempty,max=100"`
}

type GuestResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.Title = model.Title
	g.FirstName = model.FirstName
	g.MiddleName = model.MiddleName
	g.LastName = model.LastName
	g.FullName = model.FullName()
	g.Email = model.Email
	g.Phone = model.Phone
	g.Nationality = model.Nationality
	g.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		g.Guests[i].FromModel(mod)
	}
}

package model

import "frontdesk/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldMiddleName  = "middle_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldNationality = "nationality"
	FieldTitle       = "title"
)

type Guest struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	FirstName   string `db:"first_name"`
	MiddleName  string `db:"middle_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Nationality string `db:"nationality"`
	model.Metadata
}

// FullName joins the guest's name parts, skipping empty ones.
func (g Guest) FullName() string {
	name := g.FirstName
	if g.MiddleName != "" {
		name += " " + g.MiddleName
	}
	if g.LastName != "" {
		name += " " + g.LastName
	}

	return name
}

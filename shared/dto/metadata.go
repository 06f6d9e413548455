package dto

import (
	"time"

	"frontdesk/shared/model"
)

type Metadata struct {
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `json:"createdBy,omitempty"`
	ModifiedAt time.Time `json:"modifiedAt"`
	ModifiedBy string    `json:"modifiedBy,omitempty"`
}

func (m *Metadata) FromModel(meta model.Metadata) {
	m.CreatedAt = meta.CreatedAt
	m.ModifiedAt = meta.ModifiedAt
	m.CreatedBy = meta.CreatedBy
	m.ModifiedBy = meta.ModifiedBy
}

// ListMeta describes the pagination envelope returned with list responses.
type ListMeta struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"totalPage"`
}

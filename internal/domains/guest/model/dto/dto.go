package dto

import (
	"rozvoz/internal/domains/guest/model"
	"rozvoz/shared"
	gDto "rozvoz/shared/dto"
)

type GuestResponse struct {
	ID              string  `json:"id"`
	RestaurantID    string  `json:"restaurant_id"`
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	NormalizedPhone *string `json:"normalized_phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Address         *string `json:"address,omitempty"`
	Note            *string `json:"note,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.RestaurantID = model.RestaurantID
	r.Name = model.Name
	r.Phone = model.Phone
	r.NormalizedPhone = model.NormalizedPhone
	r.Email = model.Email
	r.Address = model.Address
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

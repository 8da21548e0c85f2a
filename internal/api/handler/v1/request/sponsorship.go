package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSponsorshipRequest struct {
	ItemID      uint    `json:"item_id"`
	SponsorName string  `json:"sponsor_name"`
	Amount      float64 `json:"amount"`
}

func (req *CreateSponsorshipRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.SponsorName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Amount, validation.Required, validation.Min(0.01)),
	)
}

type UpdateSponsorshipRequest struct {
	SponsorName string  `json:"sponsor_name"`
	Amount      float64 `json:"amount"`
}

func (req *UpdateSponsorshipRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SponsorName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Amount, validation.Required, validation.Min(0.01)),
	)
}

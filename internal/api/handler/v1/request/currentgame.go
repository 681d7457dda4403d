package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AssignSlotRequest struct {
	DonatorID uint `json:"donator_id"`
	Position  int  `json:"position"`
}

func (req *AssignSlotRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DonatorID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Position, validation.Required, validation.Min(1), validation.Max(4)),
	)
}

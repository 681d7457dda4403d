package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RecordSessionRequest struct {
	DonatorIDs []uint `json:"donator_ids"`
}

func (req *RecordSessionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DonatorIDs, validation.Required, validation.Length(1, 4)),
	)
}

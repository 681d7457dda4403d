package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (req *CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.Min(0)),
	)
}

type UpdateCategoryRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (req *UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.Min(0)),
	)
}

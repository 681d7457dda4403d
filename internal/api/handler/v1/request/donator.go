package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDonatorRequest struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
	TotalGame  int    `json:"total_game"`
}

func (req *CreateDonatorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CategoryID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.TotalGame, validation.Min(0)),
	)
}

type UpdateDonatorRequest struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
	TotalGame  int    `json:"total_game"`
}

func (req *UpdateDonatorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CategoryID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.TotalGame, validation.Min(0)),
	)
}

type AddGamesRequest struct {
	GamesToAdd int `json:"games_to_add"`
}

func (req *AddGamesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GamesToAdd, validation.Required, validation.Min(1)),
	)
}

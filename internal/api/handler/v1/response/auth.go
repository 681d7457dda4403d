package response

import "github.com/streamheroes/stream-heroes-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

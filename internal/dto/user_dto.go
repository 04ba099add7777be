package dto

import "github.com/google/uuid"

type IdentityResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	User        IdentityResponse `json:"user"`
}

package api

import "time"

// Request DTOs shared by the server and the api client

type CreatePersonRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
}

type CreateCardRequest struct {
	Title    string `json:"title" validate:"required"`
	Capacity int    `json:"capacity" validate:"gt=0"`
}

type CreatePunchRequest struct {
	CardId    int64     `json:"card_id" validate:"required"`
	PuncherId int64     `json:"puncher_id" validate:"required"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason"`
}

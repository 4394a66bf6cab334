package model

import (
	"time"
)

type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           *string   `json:"email,omitempty"`
	FirstName       *string   `json:"firstname,omitempty"`
	LastName        *string   `json:"lastname,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	AuthProvider    string    `json:"auth_provider,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

package dto

import "github.com/dzinstall/storefront/internal/domain/model"

// LoginRequest carries an email, phone or CCP number plus password.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// SessionResponse is returned after a successful sign-up or sign-in.
type SessionResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

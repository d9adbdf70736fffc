package auth

import "github.com/myflixlabs/myflix-backend/internal/identity"

// LoginInput is the body accepted by the login endpoint. Email format
// beyond basic shape is not validated; unknown emails are provisioned.
type LoginInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SessionResult pairs the authenticated account with its access token.
type SessionResult struct {
	User  identity.User `json:"user"`
	Token string        `json:"token"`
}

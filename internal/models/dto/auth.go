package dto

import (
	"time"

	"github.com/hongminglow/all-in-forms/internal/models"
)

type RegisterRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PasswordCheck string `json:"passwordCheck"`
	Terms         bool   `json:"terms"`
}

// Credentials maps the request body onto the registration form fields.
func (r RegisterRequest) Credentials() models.Credentials {
	return models.Credentials{
		Username:             r.Username,
		Email:                r.Email,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordCheck,
		TermsAccepted:        r.Terms,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Persist  bool   `json:"persist"`
}

// Attempt maps the request body onto the login form fields.
func (r LoginRequest) Attempt() models.LoginAttempt {
	return models.LoginAttempt{
		Username:     r.Username,
		Password:     r.Password,
		KeepLoggedIn: r.Persist,
	}
}

// RegisteredUser is the public view of a stored record; the password never leaves the server.
type RegisteredUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Persisted bool      `json:"persisted"`
}

type FieldError struct {
	Field string `json:"field"`
}

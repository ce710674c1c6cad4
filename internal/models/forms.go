package models

// Credentials holds the raw field values of one registration form submission.
type Credentials struct {
	Username             string
	Email                string
	Password             string
	PasswordConfirmation string
	TermsAccepted        bool
}

// LoginAttempt holds the raw field values of one login form submission.
type LoginAttempt struct {
	Username     string
	Password     string
	KeepLoggedIn bool
}

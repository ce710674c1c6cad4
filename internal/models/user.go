package models

// UserRecord is the persisted shape of a registered user. The username doubles as the storage key.
type UserRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

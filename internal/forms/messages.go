package forms

const (
	MsgUsernameBlank     = "Username cannot be blank"
	MsgUsernameShort     = "Username must be at least 4 characters long"
	MsgUsernameUnique    = "Username must contain at least 2 unique characters"
	MsgUsernameCharset   = "Username cannot contain special characters or whitespace"
	MsgEmailBlank        = "Email cannot be blank"
	MsgEmailInvalid      = "Email must be a valid email address"
	MsgEmailDomain       = `Email cannot be from the domain "example.com"`
	MsgPasswordBlank     = "Password cannot be blank"
	MsgPasswordShort     = "Password must be at least 12 characters long"
	MsgPasswordUpper     = "Password must have at least one uppercase letter"
	MsgPasswordLower     = "Password must have at least one lowercase letter"
	MsgPasswordDigit     = "Password must contain at least one number"
	MsgPasswordSpecial   = "Password must contain at least one special character"
	MsgPasswordWord      = `Password cannot contain the word "password"`
	MsgPasswordUsername  = "Password cannot contain the username"
	MsgPasswordMismatch  = "Passwords do not match"
	MsgTermsRequired     = "You must agree to the Terms of Use"
	MsgRegistered        = "Registration successful"
	MsgUnknownUsername   = "Username does not exist"
	MsgIncorrectPassword = "Incorrect password"
	MsgCorruptedRecord   = "Stored user record is corrupted"
	MsgLoggedIn          = "Login successful"
	MsgKeepLoggedIn      = " (Keep me logged in)"
)

const (
	minUsernameLength = 4
	minUniqueChars    = 2
	minPasswordLength = 12
	blockedDomain     = "@example.com"
	blockedWord       = "password"
	specialChars      = `!@#$%^&*(),.?":{}|<>`
)

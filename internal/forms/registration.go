package forms

import "github.com/hongminglow/all-in-forms/internal/models"

// registrationRule is one ordered check; violated reports true when the submission breaks it.
type registrationRule struct {
	field    string
	message  string
	violated func(in models.Credentials) bool
}

// registrationRules are evaluated in order; the first violated rule is reported.
var registrationRules = []registrationRule{
	{FieldUsername, MsgUsernameBlank, func(in models.Credentials) bool {
		return isBlank(in.Username)
	}},
	{FieldUsername, MsgUsernameShort, func(in models.Credentials) bool {
		return length(in.Username) < minUsernameLength
	}},
	{FieldUsername, MsgUsernameUnique, func(in models.Credentials) bool {
		return uniqueFold(in.Username) < minUniqueChars
	}},
	{FieldUsername, MsgUsernameCharset, func(in models.Credentials) bool {
		return !every(in.Username, isAlnum)
	}},
	{FieldEmail, MsgEmailBlank, func(in models.Credentials) bool {
		return isBlank(in.Email)
	}},
	{FieldEmail, MsgEmailInvalid, func(in models.Credentials) bool {
		return !validEmailShape(in.Email)
	}},
	{FieldEmail, MsgEmailDomain, func(in models.Credentials) bool {
		return blockedEmailDomain(in.Email)
	}},
	{FieldPassword, MsgPasswordBlank, func(in models.Credentials) bool {
		return isBlank(in.Password)
	}},
	{FieldPassword, MsgPasswordShort, func(in models.Credentials) bool {
		return length(in.Password) < minPasswordLength
	}},
	{FieldPassword, MsgPasswordUpper, func(in models.Credentials) bool {
		return !some(in.Password, isASCIIUpper)
	}},
	{FieldPassword, MsgPasswordLower, func(in models.Credentials) bool {
		return !some(in.Password, isASCIILower)
	}},
	{FieldPassword, MsgPasswordDigit, func(in models.Credentials) bool {
		return !some(in.Password, isASCIIDigit)
	}},
	{FieldPassword, MsgPasswordSpecial, func(in models.Credentials) bool {
		return !some(in.Password, isSpecial)
	}},
	{FieldPassword, MsgPasswordWord, func(in models.Credentials) bool {
		return containsFold(in.Password, blockedWord)
	}},
	{FieldPassword, MsgPasswordUsername, func(in models.Credentials) bool {
		return containsFold(in.Password, in.Username)
	}},
	{FieldPasswordConfirmation, MsgPasswordMismatch, func(in models.Credentials) bool {
		return in.Password != in.PasswordConfirmation
	}},
	{FieldTerms, MsgTermsRequired, func(in models.Credentials) bool {
		return !in.TermsAccepted
	}},
}

// checkRegistration returns the first violated rule as a failure, or nil when all pass.
func checkRegistration(in models.Credentials) *Result {
	for _, rule := range registrationRules {
		if rule.violated(in) {
			failure := Failure(rule.field, rule.message)
			return &failure
		}
	}
	return nil
}

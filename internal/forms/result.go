package forms

import "github.com/hongminglow/all-in-forms/internal/models"

// Kind tags a Result as a failure or a success.
type Kind int

const (
	KindFailure Kind = iota
	KindSuccess
)

func (k Kind) String() string {
	if k == KindSuccess {
		return "success"
	}
	return "failure"
}

// Field names reported with a failure, matching the form inputs.
const (
	FieldUsername             = "username"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "passwordConfirmation"
	FieldTerms                = "terms"
)

// Result is the outcome of validating one form submission.
// Field is set only on failure; Record only on a successful registration.
type Result struct {
	Kind    Kind
	Message string
	Field   string
	Record  *models.UserRecord
}

// Failure reports the first violated rule.
func Failure(field, message string) Result {
	return Result{Kind: KindFailure, Message: message, Field: field}
}

// Success reports an accepted submission.
func Success(message string, record *models.UserRecord) Result {
	return Result{Kind: KindSuccess, Message: message, Record: record}
}

func (r Result) OK() bool { return r.Kind == KindSuccess }

// Package display routes validation outcomes to a caller-owned presentation surface.
package display

import (
	"fmt"
	"io"

	"github.com/hongminglow/all-in-forms/internal/forms"
)

// Presenter renders messages; the core never decides how.
type Presenter interface {
	ShowError(message string)
	ShowSuccess(message string)
}

// Present sends the result's message to the matching Presenter method.
func Present(result forms.Result, p Presenter) {
	if result.OK() {
		p.ShowSuccess(result.Message)
		return
	}
	p.ShowError(result.Message)
}

// Writer prints successes to Out and errors to Err, one line each.
type Writer struct {
	Out io.Writer
	Err io.Writer
}

func (w Writer) ShowError(message string) {
	fmt.Fprintf(w.Err, "Error: %s\n", message)
}

func (w Writer) ShowSuccess(message string) {
	fmt.Fprintln(w.Out, message)
}

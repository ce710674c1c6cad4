// Package metrics exposes Prometheus counters for form submissions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hongminglow/all-in-forms/internal/forms"
)

const (
	FormRegistration = "registration"
	FormLogin        = "login"
)

// Recorder counts validation outcomes per form, outcome and failing field.
type Recorder struct {
	submissions *prometheus.CounterVec
}

// NewRecorder registers the counters with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "form_submissions_total",
		Help: "Form submissions by form, outcome and failing field.",
	}, []string{"form", "outcome", "field"})
	reg.MustRegister(submissions)
	return &Recorder{submissions: submissions}
}

// Observe counts one validated submission.
func (r *Recorder) Observe(form string, result forms.Result) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(form, result.Kind.String(), result.Field).Inc()
}

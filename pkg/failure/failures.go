// Package failure turns error messages into assertion failures.
// It separates failed checks (AssertionError) from misuse of an
// assertion (UsageError).
package failure

import (
	"digital.vasic.assertions/pkg/description"
	"digital.vasic.assertions/pkg/errmsg"
	"digital.vasic.assertions/pkg/logging"
)

// Info is the context of a single assertion.
type Info struct {
	// Description is prefixed to the rendered message.
	Description description.Description

	// OverridingMessage, when set, replaces the rendered message
	// entirely.
	OverridingMessage string
}

// NewInfo creates an Info described by text.
func NewInfo(text string) Info {
	return Info{Description: description.New(text)}
}

// Reporter raises assertion failures.
type Reporter interface {
	// Failure renders message for info and returns the
	// resulting assertion failure.
	Failure(info Info, message errmsg.ErrorMessage) error
}

// Option configures Failures.
type Option func(*Failures)

// WithLogger sets the logger that records each failure.
func WithLogger(logger logging.Logger) Option {
	return func(f *Failures) {
		f.logger = logger
	}
}

// Failures is the default Reporter. It is stateless apart from its
// logger and safe for concurrent use.
type Failures struct {
	logger logging.Logger
}

var instance = New()

// Instance returns the shared Failures reporter.
func Instance() *Failures {
	return instance
}

// New creates a Failures reporter.
func New(opts ...Option) *Failures {
	f := &Failures{logger: logging.NullLogger{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Failure implements Reporter. The returned error is always an
// *AssertionError.
func (f *Failures) Failure(
	info Info,
	message errmsg.ErrorMessage,
) error {
	text := info.OverridingMessage
	if text == "" {
		text = message.Create(info.Description)
	}

	f.logger.Debug("assertion failed",
		logging.DescriptionField(description.ValueOf(info.Description)),
		logging.StringField("message", text),
	)

	return &AssertionError{Message: text, Cause: message}
}

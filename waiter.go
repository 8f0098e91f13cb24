// Package waiter provides named wait operations over a browser-automation
// driver: navigate-then-wait, page load completion, element visibility, URL
// matching and click-then-wait sequences.  Every operation is a bounded poll
// of a single condition; the only failure mode of a wait is a timeout.
package waiter

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTimeout is the amount of time a wait operation polls its condition
// before giving up, unless an explicit timeout is given.
const DefaultTimeout = 30 * time.Second

// defaultPollInterval is how often conditions are re-evaluated.
const defaultPollInterval = 500 * time.Millisecond

type Option func(*options)

type options struct {
	timeout  time.Duration
	interval time.Duration
	lg       Logger
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithTimeout sets the default timeout for wait operations.  Non-positive
// values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithPollInterval sets how often wait conditions are re-evaluated.
// Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.lg = l
		}
	}
}

// Waiter holds the wait methods.  It is stateless apart from its
// configuration and is safe for concurrent use.  It borrows the driver and
// element handles passed to its methods for the duration of a single call
// and never retains them.
type Waiter struct {
	opts options
}

// New creates a new Waiter.
func New(opt ...Option) *Waiter {
	opts := options{
		timeout:  DefaultTimeout,
		interval: defaultPollInterval,
		lg:       slog.Default(),
	}
	opts.apply(opt)
	return &Waiter{opts: opts}
}

// ErrTimeout indicates that a wait condition did not become true within the
// allotted time.
var ErrTimeout = errors.New("timed out waiting for condition")

// ErrWait is returned when a wait operation times out.  It unwraps to
// [ErrTimeout].
type ErrWait struct {
	// Condition describes what was being waited for.
	Condition string
	// Timeout is the amount of time the condition was polled for.
	Timeout time.Duration
	// Err is the last error returned by the condition, if any.
	Err error
}

func (e ErrWait) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timed out after %s waiting for %s (last error: %v)", e.Timeout, e.Condition, e.Err)
	}
	return fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.Condition)
}

func (e ErrWait) Unwrap() error {
	return ErrTimeout
}

// ErrBrowser indicates the error with browser interaction.
type ErrBrowser struct {
	Err      error
	FailedTo string
}

func (e ErrBrowser) Error() string {
	return fmt.Sprintf("browser automation error: failed to %s: %v", e.FailedTo, e.Err)
}

func (e ErrBrowser) Unwrap() error {
	return e.Err
}

// Logger is the interface for the logger.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, keyvals ...interface{})
}

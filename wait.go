package waiter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// readyStateComplete is the document.readyState value that signals that the
// page has finished loading.
const readyStateComplete = "complete"

// poll evaluates cond at the configured interval until it returns true, the
// timeout elapses, or ctx is cancelled.  Errors returned by cond are retried;
// the last one is retained and attached to the resulting [ErrWait].
func (w *Waiter) poll(ctx context.Context, timeout time.Duration, what string, cond func() (bool, error)) error {
	if timeout <= 0 {
		timeout = w.opts.timeout
	}
	w.opts.lg.Debug("waiting", "condition", what, "timeout", timeout)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tick := time.NewTicker(w.opts.interval)
	defer tick.Stop()

	var lastErr error
	for {
		ok, err := cond()
		if err == nil && ok {
			return nil
		}
		if err != nil {
			lastErr = err
		}
		select {
		case <-ctx.Done():
			// anything other than a deadline means the caller aborted;
			// that is not a timeout.
			if cause := context.Cause(ctx); !errors.Is(cause, context.DeadlineExceeded) {
				return cause
			}
			return ErrWait{Condition: what, Timeout: timeout, Err: lastErr}
		case <-tick.C:
		}
	}
}

// WaitForPageLoad waits for the current page to load completely, for up to
// the default timeout.
func (w *Waiter) WaitForPageLoad(ctx context.Context, d Driver) error {
	return w.WaitForPageLoadTimeout(ctx, d, w.opts.timeout)
}

// WaitForPageLoadTimeout waits for the current page to load completely.  The
// page is considered loaded when document.readyState equals "complete".
func (w *Waiter) WaitForPageLoadTimeout(ctx context.Context, d Driver, timeout time.Duration) error {
	return w.poll(ctx, timeout, "page load to complete", func() (bool, error) {
		state, err := d.ReadyState()
		if err != nil {
			return false, err
		}
		return state == readyStateComplete, nil
	})
}

// WaitForVisible waits for the element to become visible, for up to the
// default timeout.
func (w *Waiter) WaitForVisible(ctx context.Context, el Element) error {
	return w.WaitForVisibleTimeout(ctx, el, w.opts.timeout)
}

// WaitForVisibleTimeout waits for the element to become visible.
func (w *Waiter) WaitForVisibleTimeout(ctx context.Context, el Element, timeout time.Duration) error {
	return w.poll(ctx, timeout, "element to become visible", el.Visible)
}

// waitForURLMatch polls the current URL until match reports true, then waits
// for the page behind that URL to load completely.
func (w *Waiter) waitForURLMatch(ctx context.Context, d Driver, timeout time.Duration, what string, match func(current string) bool) error {
	err := w.poll(ctx, timeout, what, func() (bool, error) {
		current, err := d.CurrentURL()
		if err != nil {
			return false, err
		}
		return match(current), nil
	})
	if err != nil {
		return err
	}
	return w.WaitForPageLoadTimeout(ctx, d, timeout)
}

// WaitForURL waits for the browser URL to equal url, then for the page to
// load completely.  Waits for up to the default timeout.
func (w *Waiter) WaitForURL(ctx context.Context, d Driver, url string) error {
	return w.WaitForURLTimeout(ctx, d, url, w.opts.timeout)
}

// WaitForURLTimeout waits for the browser URL to equal url, then for the
// page to load completely.
func (w *Waiter) WaitForURLTimeout(ctx context.Context, d Driver, url string, timeout time.Duration) error {
	return w.waitForURLMatch(ctx, d, timeout, fmt.Sprintf("url to equal %q", url), func(current string) bool {
		return current == url
	})
}

// WaitForURLIgnoreCase is [Waiter.WaitForURL] with case-insensitive
// comparison.
func (w *Waiter) WaitForURLIgnoreCase(ctx context.Context, d Driver, url string) error {
	return w.WaitForURLIgnoreCaseTimeout(ctx, d, url, w.opts.timeout)
}

// WaitForURLIgnoreCaseTimeout waits for the browser URL to equal url,
// ignoring case, then for the page to load completely.
func (w *Waiter) WaitForURLIgnoreCaseTimeout(ctx context.Context, d Driver, url string, timeout time.Duration) error {
	return w.waitForURLMatch(ctx, d, timeout, fmt.Sprintf("url to equal %q (ignoring case)", url), func(current string) bool {
		return strings.EqualFold(current, url)
	})
}

// WaitForURLContains waits for the browser URL to contain substr, then for
// the page to load completely.  Waits for up to the default timeout.
func (w *Waiter) WaitForURLContains(ctx context.Context, d Driver, substr string) error {
	return w.WaitForURLContainsTimeout(ctx, d, substr, w.opts.timeout)
}

// WaitForURLContainsTimeout waits for the browser URL to contain substr,
// then for the page to load completely.
func (w *Waiter) WaitForURLContainsTimeout(ctx context.Context, d Driver, substr string, timeout time.Duration) error {
	return w.waitForURLMatch(ctx, d, timeout, fmt.Sprintf("url to contain %q", substr), func(current string) bool {
		return strings.Contains(current, substr)
	})
}

// WaitForURLContainsIgnoreCase is [Waiter.WaitForURLContains] with
// case-insensitive comparison.
func (w *Waiter) WaitForURLContainsIgnoreCase(ctx context.Context, d Driver, substr string) error {
	return w.WaitForURLContainsIgnoreCaseTimeout(ctx, d, substr, w.opts.timeout)
}

// WaitForURLContainsIgnoreCaseTimeout waits for the browser URL to contain
// substr, ignoring case, then for the page to load completely.
func (w *Waiter) WaitForURLContainsIgnoreCaseTimeout(ctx context.Context, d Driver, substr string, timeout time.Duration) error {
	return w.waitForURLMatch(ctx, d, timeout, fmt.Sprintf("url to contain %q (ignoring case)", substr), func(current string) bool {
		return strings.Contains(strings.ToLower(current), strings.ToLower(substr))
	})
}

// WaitForURLStartsWith waits for the browser URL to start with prefix, then
// for the page to load completely.  Waits for up to the default timeout.
func (w *Waiter) WaitForURLStartsWith(ctx context.Context, d Driver, prefix string) error {
	return w.WaitForURLStartsWithTimeout(ctx, d, prefix, w.opts.timeout)
}

// WaitForURLStartsWithTimeout waits for the browser URL to start with
// prefix, then for the page to load completely.
func (w *Waiter) WaitForURLStartsWithTimeout(ctx context.Context, d Driver, prefix string, timeout time.Duration) error {
	return w.waitForURLMatch(ctx, d, timeout, fmt.Sprintf("url to start with %q", prefix), func(current string) bool {
		return strings.HasPrefix(current, prefix)
	})
}

// WaitForURLStartsWithIgnoreCase is [Waiter.WaitForURLStartsWith] with
// case-insensitive comparison.
func (w *Waiter) WaitForURLStartsWithIgnoreCase(ctx context.Context, d Driver, prefix string) error {
	return w.WaitForURLStartsWithIgnoreCaseTimeout(ctx, d, prefix, w.opts.timeout)
}

// WaitForURLStartsWithIgnoreCaseTimeout waits for the browser URL to start
// with prefix, ignoring case, then for the page to load completely.
func (w *Waiter) WaitForURLStartsWithIgnoreCaseTimeout(ctx context.Context, d Driver, prefix string, timeout time.Duration) error {
	return w.waitForURLMatch(ctx, d, timeout, fmt.Sprintf("url to start with %q (ignoring case)", prefix), func(current string) bool {
		return strings.HasPrefix(strings.ToLower(current), strings.ToLower(prefix))
	})
}

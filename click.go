package waiter

import (
	"context"
	"time"
)

// clickThen clicks el once and, if the click succeeded, runs the wait that
// follows it.
func clickThen(el Element, wait func() error) error {
	if err := el.Click(); err != nil {
		return ErrBrowser{Err: err, FailedTo: "click element"}
	}
	return wait()
}

// ClickAndWaitForURL clicks el and waits for the browser URL to equal url,
// then for the page to load completely.  Waits for up to the default
// timeout.
func (w *Waiter) ClickAndWaitForURL(ctx context.Context, d Driver, el Element, url string) error {
	return w.ClickAndWaitForURLTimeout(ctx, d, el, url, w.opts.timeout)
}

// ClickAndWaitForURLTimeout clicks el and waits for the browser URL to equal
// url, then for the page to load completely.
func (w *Waiter) ClickAndWaitForURLTimeout(ctx context.Context, d Driver, el Element, url string, timeout time.Duration) error {
	return clickThen(el, func() error {
		return w.WaitForURLTimeout(ctx, d, url, timeout)
	})
}

// ClickAndWaitForURLIgnoreCase is [Waiter.ClickAndWaitForURL] with
// case-insensitive comparison.
func (w *Waiter) ClickAndWaitForURLIgnoreCase(ctx context.Context, d Driver, el Element, url string) error {
	return w.ClickAndWaitForURLIgnoreCaseTimeout(ctx, d, el, url, w.opts.timeout)
}

// ClickAndWaitForURLIgnoreCaseTimeout clicks el and waits for the browser
// URL to equal url, ignoring case, then for the page to load completely.
func (w *Waiter) ClickAndWaitForURLIgnoreCaseTimeout(ctx context.Context, d Driver, el Element, url string, timeout time.Duration) error {
	return clickThen(el, func() error {
		return w.WaitForURLIgnoreCaseTimeout(ctx, d, url, timeout)
	})
}

// ClickAndWaitForURLContains clicks el and waits for the browser URL to
// contain substr, then for the page to load completely.  Waits for up to the
// default timeout.
func (w *Waiter) ClickAndWaitForURLContains(ctx context.Context, d Driver, el Element, substr string) error {
	return w.ClickAndWaitForURLContainsTimeout(ctx, d, el, substr, w.opts.timeout)
}

// ClickAndWaitForURLContainsTimeout clicks el and waits for the browser URL
// to contain substr, then for the page to load completely.
func (w *Waiter) ClickAndWaitForURLContainsTimeout(ctx context.Context, d Driver, el Element, substr string, timeout time.Duration) error {
	return clickThen(el, func() error {
		return w.WaitForURLContainsTimeout(ctx, d, substr, timeout)
	})
}

// ClickAndWaitForURLContainsIgnoreCase is
// [Waiter.ClickAndWaitForURLContains] with case-insensitive comparison.
func (w *Waiter) ClickAndWaitForURLContainsIgnoreCase(ctx context.Context, d Driver, el Element, substr string) error {
	return w.ClickAndWaitForURLContainsIgnoreCaseTimeout(ctx, d, el, substr, w.opts.timeout)
}

// ClickAndWaitForURLContainsIgnoreCaseTimeout clicks el and waits for the
// browser URL to contain substr, ignoring case, then for the page to load
// completely.
func (w *Waiter) ClickAndWaitForURLContainsIgnoreCaseTimeout(ctx context.Context, d Driver, el Element, substr string, timeout time.Duration) error {
	return clickThen(el, func() error {
		return w.WaitForURLContainsIgnoreCaseTimeout(ctx, d, substr, timeout)
	})
}

// ClickAndWaitForURLStartsWith clicks el and waits for the browser URL to
// start with prefix, then for the page to load completely.  Waits for up to
// the default timeout.
func (w *Waiter) ClickAndWaitForURLStartsWith(ctx context.Context, d Driver, el Element, prefix string) error {
	return w.ClickAndWaitForURLStartsWithTimeout(ctx, d, el, prefix, w.opts.timeout)
}

// ClickAndWaitForURLStartsWithTimeout clicks el and waits for the browser
// URL to start with prefix, then for the page to load completely.
func (w *Waiter) ClickAndWaitForURLStartsWithTimeout(ctx context.Context, d Driver, el Element, prefix string, timeout time.Duration) error {
	return clickThen(el, func() error {
		return w.WaitForURLStartsWithTimeout(ctx, d, prefix, timeout)
	})
}

// ClickAndWaitForURLStartsWithIgnoreCase is
// [Waiter.ClickAndWaitForURLStartsWith] with case-insensitive comparison.
func (w *Waiter) ClickAndWaitForURLStartsWithIgnoreCase(ctx context.Context, d Driver, el Element, prefix string) error {
	return w.ClickAndWaitForURLStartsWithIgnoreCaseTimeout(ctx, d, el, prefix, w.opts.timeout)
}

// ClickAndWaitForURLStartsWithIgnoreCaseTimeout clicks el and waits for the
// browser URL to start with prefix, ignoring case, then for the page to load
// completely.
func (w *Waiter) ClickAndWaitForURLStartsWithIgnoreCaseTimeout(ctx context.Context, d Driver, el Element, prefix string, timeout time.Duration) error {
	return clickThen(el, func() error {
		return w.WaitForURLStartsWithIgnoreCaseTimeout(ctx, d, prefix, timeout)
	})
}

package waiter

import (
	"context"
	"time"
)

// Get opens url and waits for the page to load completely, for up to the
// default timeout.  It is meant to replace a bare driver navigation.
func (w *Waiter) Get(ctx context.Context, d Driver, url string) error {
	return w.GetTimeout(ctx, d, url, w.opts.timeout)
}

// GetTimeout opens url and waits for the page to load completely.
func (w *Waiter) GetTimeout(ctx context.Context, d Driver, url string, timeout time.Duration) error {
	if err := d.Navigate(url); err != nil {
		return ErrBrowser{Err: err, FailedTo: "navigate"}
	}
	return w.WaitForPageLoadTimeout(ctx, d, timeout)
}

// GetAndWaitForVisible opens url, waits for the page to load completely and
// for el to become visible.  Waits for up to the default timeout.
func (w *Waiter) GetAndWaitForVisible(ctx context.Context, d Driver, el Element, url string) error {
	return w.GetAndWaitForVisibleTimeout(ctx, d, el, url, w.opts.timeout)
}

// GetAndWaitForVisibleTimeout opens url, waits for the page to load
// completely and for el to become visible.
func (w *Waiter) GetAndWaitForVisibleTimeout(ctx context.Context, d Driver, el Element, url string, timeout time.Duration) error {
	if err := w.GetTimeout(ctx, d, url, timeout); err != nil {
		return err
	}
	return w.WaitForVisibleTimeout(ctx, el, timeout)
}

// GetAndWaitForURL opens urlToGet and waits for the browser to arrive at
// urlToWaitFor, then for the page to load completely.  Useful when the
// opened URL redirects to another page.  Waits for up to the default
// timeout.
func (w *Waiter) GetAndWaitForURL(ctx context.Context, d Driver, urlToGet, urlToWaitFor string) error {
	return w.GetAndWaitForURLTimeout(ctx, d, urlToGet, urlToWaitFor, w.opts.timeout)
}

// GetAndWaitForURLTimeout opens urlToGet and waits for the browser to arrive
// at urlToWaitFor, then for the page to load completely.
func (w *Waiter) GetAndWaitForURLTimeout(ctx context.Context, d Driver, urlToGet, urlToWaitFor string, timeout time.Duration) error {
	if err := d.Navigate(urlToGet); err != nil {
		return ErrBrowser{Err: err, FailedTo: "navigate"}
	}
	return w.WaitForURLTimeout(ctx, d, urlToWaitFor, timeout)
}

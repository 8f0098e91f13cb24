package waiter

import (
	"context"
	"errors"
	"slices"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/devices"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

type SessionOption func(*sessionOptions)

type sessionOptions struct {
	headless  bool
	bin       string
	userAgent string
}

func (o *sessionOptions) apply(opts []SessionOption) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithHeadless controls whether the browser runs without a visible window.
func WithHeadless(b bool) SessionOption {
	return func(o *sessionOptions) {
		o.headless = b
	}
}

// WithBrowserBin sets the browser executable to launch.  When unset, the
// system browser is used if one is found, falling back to the browser
// bundled with rod.
func WithBrowserBin(path string) SessionOption {
	return func(o *sessionOptions) {
		if path != "" {
			o.bin = path
		}
	}
}

// WithUserAgent sets the user agent for pages opened by the session.
func WithUserAgent(ua string) SessionOption {
	return func(o *sessionOptions) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// Session owns a launched browser instance and hands out pages for the wait
// methods to drive.  Waiter itself never owns a browser; Session exists for
// callers that do not already have one.
type Session struct {
	browser   *rod.Browser
	opts      sessionOptions
	cleanupFn []func() error
}

// NewSession launches a browser and connects to it.  Close must be called to
// release it.
func NewSession(ctx context.Context, opt ...SessionOption) (*Session, error) {
	opts := sessionOptions{headless: true}
	opts.apply(opt)

	s := &Session{opts: opts}

	l := launcher.New().Headless(opts.headless).Devtools(false)
	if opts.bin != "" {
		l = l.Bin(opts.bin)
	} else if binpath, ok := launcher.LookPath(); ok {
		l = l.Bin(binpath)
	}

	url, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "launch"}
	}
	s.atClose(toerrfn(l.Cleanup))

	browser := rod.New().Context(ctx).ControlURL(url).DefaultDevice(devices.Clear)
	if err := browser.Connect(); err != nil {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		return nil, ErrBrowser{Err: err, FailedTo: "connect"}
	}
	s.atClose(browser.Close)
	s.browser = browser

	return s, nil
}

// Close shuts the browser down, releasing everything the session acquired,
// in reverse order.
func (s *Session) Close() error {
	var errs error
	slices.Reverse(s.cleanupFn)
	for _, fn := range s.cleanupFn {
		if err := fn(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	s.cleanupFn = nil
	return errs
}

// Page opens a blank tab and returns it adapted to [Driver].
func (s *Session) Page(ctx context.Context) (*Page, error) {
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "open page"}
	}
	if s.opts.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: s.opts.userAgent}); err != nil {
			return nil, ErrBrowser{Err: err, FailedTo: "set user agent"}
		}
	}
	return AdaptPage(page.Context(ctx)), nil
}

func (s *Session) atClose(fn func() error) {
	s.cleanupFn = append(s.cleanupFn, fn)
}

func toerrfn(fn func()) func() error {
	return func() error {
		fn()
		return nil
	}
}

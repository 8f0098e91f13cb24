package waiter

import (
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

//go:generate mockgen -destination=driver_mocks_test.go -package=waiter -source driver.go

// Driver is the borrowed handle to a controlled browser page.  It is the
// minimal surface the wait methods need; [Page] adapts a rod page to it.
type Driver interface {
	// Navigate opens the given URL.  It returns as soon as navigation has
	// started; it does not wait for the page to load.
	Navigate(url string) error
	// CurrentURL returns the URL currently loaded in the browser.
	CurrentURL() (string, error)
	// ReadyState returns the value of document.readyState.
	ReadyState() (string, error)
}

// Element is a handle to a node in the rendered page.
type Element interface {
	// Visible reports whether the element is present and displayed.
	Visible() (bool, error)
	// Click clicks the element once with the left mouse button.
	Click() error
}

// Page adapts a rod page to [Driver].
type Page struct {
	p *rod.Page
}

// AdaptPage wraps an existing rod page.
func AdaptPage(p *rod.Page) *Page {
	return &Page{p: p}
}

// Rod returns the underlying rod page.
func (pg *Page) Rod() *rod.Page {
	return pg.p
}

func (pg *Page) Navigate(url string) error {
	return pg.p.Navigate(url)
}

func (pg *Page) CurrentURL() (string, error) {
	info, err := pg.p.Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

func (pg *Page) ReadyState() (string, error) {
	res, err := pg.p.Eval(`() => document.readyState`)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// Element returns a handle bound to the given selector.  The handle is lazy:
// it re-resolves the selector on every Visible or Click call, so it can be
// created before the node, or even the page it lives on, exists.
func (pg *Page) Element(selector string) Element {
	return &pageElement{p: pg.p, sel: selector}
}

type pageElement struct {
	p   *rod.Page
	sel string
}

func (e *pageElement) Visible() (bool, error) {
	has, el, err := e.p.Has(e.sel)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}
	return el.Visible()
}

func (e *pageElement) Click() error {
	el, err := e.p.Element(e.sel)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

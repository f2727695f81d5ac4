// Package fakebrowser is an in-memory BrowserSession for tests. Elements exist when their
// locator is registered; the page tree comes from static HTML.
package fakebrowser

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/dom"
	"browser-use/internal/domain/entity"
)

var _ output.BrowserSession = (*Session)(nil)

// Call is one recorded session or element operation.
type Call struct {
	Op      string
	Locator string
	Arg     string
}

type Session struct {
	mu sync.Mutex

	HTML     string
	URL      string
	Elements map[string]bool
	Screen   []byte

	// EvaluateFunc answers Evaluate; nil means every script returns undefined.
	EvaluateFunc func(code string, awaitPromise bool) (json.RawMessage, error)

	// Err, when set for an op name, is returned by that op.
	Err map[string]error

	Calls        []Call
	ExtractCount int
	Closed       bool
}

// New returns a session showing html. Every element with a derivable locator is findable.
func New(html string) *Session {
	s := &Session{
		HTML:     html,
		URL:      "about:blank",
		Elements: map[string]bool{},
		Err:      map[string]error{},
	}
	if tree, err := dom.BuildFromHTML(strings.NewReader(html)); err == nil {
		for _, idx := range tree.InteractiveIndices() {
			locator, _ := tree.GetSelector(idx)
			s.Elements[locator] = true
		}
	}
	return s
}

// WithElements marks locators as present on the page.
func (s *Session) WithElements(locators ...string) *Session {
	for _, l := range locators {
		s.Elements[l] = true
	}
	return s
}

func (s *Session) record(op, locator, arg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, Call{Op: op, Locator: locator, Arg: arg})
	return s.Err[op]
}

// Ops lists the recorded operation names in call order.
func (s *Session) Ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := make([]string, len(s.Calls))
	for i, c := range s.Calls {
		ops[i] = c.Op
	}
	return ops
}

func (s *Session) Navigate(_ context.Context, url string) error {
	if err := s.record("navigate", "", url); err != nil {
		return err
	}
	s.URL = url
	return nil
}

func (s *Session) WaitForNavigation(_ context.Context) error {
	return s.record("wait_for_navigation", "", "")
}

func (s *Session) FindElement(_ context.Context, locator string) (output.ElementHandle, error) {
	if err := s.record("find_element", locator, ""); err != nil {
		return nil, err
	}
	if !s.Elements[locator] {
		return nil, entity.ElementNotFound("no element matches %q", locator)
	}
	return &Element{session: s, locator: locator}, nil
}

func (s *Session) Evaluate(_ context.Context, code string, awaitPromise bool) (json.RawMessage, error) {
	if err := s.record("evaluate", "", code); err != nil {
		return nil, err
	}
	if s.EvaluateFunc == nil {
		return nil, nil
	}
	return s.EvaluateFunc(code, awaitPromise)
}

func (s *Session) CaptureScreenshot(_ context.Context, fullPage bool) ([]byte, error) {
	arg := "viewport"
	if fullPage {
		arg = "full_page"
	}
	if err := s.record("screenshot", "", arg); err != nil {
		return nil, err
	}
	return s.Screen, nil
}

func (s *Session) PressKey(_ context.Context, key string) error {
	return s.record("press_key", "", key)
}

func (s *Session) WaitForElement(_ context.Context, locator string, timeout time.Duration) error {
	if err := s.record("wait_for_element", locator, timeout.String()); err != nil {
		return err
	}
	if !s.Elements[locator] {
		return entity.NewError(entity.ErrTimeout, "element %q did not appear within %s", locator, timeout)
	}
	return nil
}

func (s *Session) ExtractDOM(_ context.Context) (*entity.DomTree, error) {
	if err := s.record("extract_dom", "", ""); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.ExtractCount++
	s.mu.Unlock()
	return dom.BuildFromHTML(strings.NewReader(s.HTML))
}

func (s *Session) CurrentURL(_ context.Context) (string, error) {
	return s.URL, nil
}

func (s *Session) Close() error {
	s.Closed = true
	return nil
}

type Element struct {
	session *Session
	locator string
}

func (e *Element) Click(_ context.Context) error {
	return e.session.record("click", e.locator, "")
}

func (e *Element) TypeInto(_ context.Context, text string) error {
	return e.session.record("type", e.locator, text)
}

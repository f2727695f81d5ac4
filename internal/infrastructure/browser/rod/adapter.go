package rod

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/ysmood/gson"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/dom"
	"browser-use/internal/domain/entity"
)

//go:embed extract_dom.js
var extractDOMJS string

const defaultTimeout = 10 * time.Second

var _ output.BrowserSession = (*BrowserAdapter)(nil)

type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	timeout  time.Duration

	closeOnce sync.Once
	closed    bool
}

type BrowserConfig struct {
	Headless   bool
	Timeout    time.Duration
	NoSandbox  bool
	DevTools   bool
	SlowMotion time.Duration

	// ExecutablePath selects the browser binary; empty means rod's lookup.
	ExecutablePath string
	// UserDataDir keeps the profile between runs.
	UserDataDir string
	// RemoteURL attaches to a running browser (ws:// or http:// debugging endpoint)
	// instead of launching one.
	RemoteURL string
	Stealth   bool
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless: true,
		Timeout:  defaultTimeout,
	}
}

func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig) (*BrowserAdapter, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	var (
		controlURL string
		l          *launcher.Launcher
		err        error
	)
	if cfg.RemoteURL != "" {
		controlURL, err = resolveRemote(cfg.RemoteURL)
		if err != nil {
			return nil, err
		}
	} else {
		l = launcher.New().
			Context(ctx).
			Headless(cfg.Headless).
			Devtools(cfg.DevTools).
			NoSandbox(cfg.NoSandbox)
		if cfg.ExecutablePath != "" {
			l = l.Bin(cfg.ExecutablePath)
		}
		if cfg.UserDataDir != "" {
			l = l.UserDataDir(cfg.UserDataDir)
		}
		controlURL, err = l.Launch()
		if err != nil {
			return nil, fmt.Errorf("failed to launch browser: %w", err)
		}
	}

	browser := rod.New().ControlURL(controlURL)
	if cfg.SlowMotion > 0 {
		browser = browser.SlowMotion(cfg.SlowMotion)
	}
	if err := browser.Connect(); err != nil {
		if l != nil {
			l.Kill()
		}
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	var page *rod.Page
	if cfg.Stealth {
		page, err = stealth.Page(browser)
	} else {
		page, err = browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	}
	if err != nil {
		_ = browser.Close()
		if l != nil {
			l.Kill()
		}
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &BrowserAdapter{
		browser:  browser,
		launcher: l,
		page:     page,
		timeout:  cfg.Timeout,
	}, nil
}

func resolveRemote(remote string) (string, error) {
	if strings.HasPrefix(remote, "ws://") || strings.HasPrefix(remote, "wss://") {
		return remote, nil
	}
	u, err := launcher.ResolveURL(remote)
	if err != nil {
		return "", fmt.Errorf("resolve remote browser %q: %w", remote, err)
	}
	return u, nil
}

func (b *BrowserAdapter) IsReady() bool {
	return !b.closed && b.page != nil
}

func (b *BrowserAdapter) Navigate(ctx context.Context, url string) error {
	if err := b.page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

func (b *BrowserAdapter) WaitForNavigation(ctx context.Context) error {
	p := b.page.Context(ctx).Timeout(b.timeout)
	if err := p.WaitLoad(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return entity.NewError(entity.ErrTimeout, "page did not load within %s", b.timeout)
		}
		return fmt.Errorf("wait for load: %w", err)
	}
	return nil
}

func (b *BrowserAdapter) FindElement(ctx context.Context, locator string) (output.ElementHandle, error) {
	if strings.TrimSpace(locator) == "" {
		return nil, entity.InvalidArgument("empty locator")
	}
	p := b.page.Context(ctx)

	var (
		found bool
		el    *rod.Element
		err   error
	)
	if isXPath(locator) {
		found, el, err = p.HasX(locator)
	} else {
		found, el, err = p.Has(locator)
	}
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", locator, err)
	}
	if !found {
		return nil, entity.ElementNotFound("no element matches %q", locator)
	}
	return &element{el: el}, nil
}

func (b *BrowserAdapter) Evaluate(ctx context.Context, code string, awaitPromise bool) (json.RawMessage, error) {
	res, err := proto.RuntimeEvaluate{
		Expression:    code,
		ReturnByValue: true,
		AwaitPromise:  awaitPromise,
	}.Call(b.page.Context(ctx))
	if err != nil {
		return nil, entity.NewError(entity.ErrEvaluationFailed, "%v", err)
	}
	if res.ExceptionDetails != nil {
		reason := res.ExceptionDetails.Text
		if ex := res.ExceptionDetails.Exception; ex != nil && ex.Description != "" {
			reason = ex.Description
		}
		return nil, entity.NewError(entity.ErrEvaluationFailed, "%s", reason)
	}
	if res.Result == nil || res.Result.Type == proto.RuntimeRemoteObjectTypeUndefined || res.Result.Value.Nil() {
		return nil, nil
	}
	data, err := res.Result.Value.MarshalJSON()
	if err != nil {
		return nil, entity.NewError(entity.ErrEvaluationFailed, "encode result: %v", err)
	}
	return data, nil
}

func (b *BrowserAdapter) CaptureScreenshot(ctx context.Context, fullPage bool) ([]byte, error) {
	data, err := b.page.Context(ctx).Screenshot(fullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, entity.NewError(entity.ErrScreenshotFailed, "%v", err)
	}
	return data, nil
}

var keys = map[string]input.Key{
	"Enter":      input.Enter,
	"Tab":        input.Tab,
	"Escape":     input.Escape,
	"Backspace":  input.Backspace,
	"Delete":     input.Delete,
	"Space":      input.Space,
	"ArrowUp":    input.ArrowUp,
	"ArrowDown":  input.ArrowDown,
	"ArrowLeft":  input.ArrowLeft,
	"ArrowRight": input.ArrowRight,
	"Home":       input.Home,
	"End":        input.End,
	"PageUp":     input.PageUp,
	"PageDown":   input.PageDown,
}

// PressKey sends a named key, or inserts a single character.
func (b *BrowserAdapter) PressKey(ctx context.Context, key string) error {
	if k, ok := keys[key]; ok {
		if err := b.page.Context(ctx).Keyboard.Type(k); err != nil {
			return fmt.Errorf("press %s: %w", key, err)
		}
		return nil
	}
	if utf8.RuneCountInString(key) == 1 {
		if err := b.page.Context(ctx).InsertText(key); err != nil {
			return fmt.Errorf("type %q: %w", key, err)
		}
		return nil
	}
	return entity.InvalidArgument("unsupported key %q", key)
}

func (b *BrowserAdapter) WaitForElement(ctx context.Context, locator string, timeout time.Duration) error {
	p := b.page.Context(ctx).Timeout(timeout)
	var err error
	if isXPath(locator) {
		_, err = p.ElementX(locator)
	} else {
		_, err = p.Element(locator)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return entity.NewError(entity.ErrTimeout, "element %q did not appear within %s", locator, timeout)
		}
		return fmt.Errorf("wait for %q: %w", locator, err)
	}
	return nil
}

func (b *BrowserAdapter) ExtractDOM(ctx context.Context) (*entity.DomTree, error) {
	value, err := b.Evaluate(ctx, extractDOMJS, false)
	if err != nil {
		return nil, fmt.Errorf("extract dom: %w", err)
	}
	result := gson.NewFrom(string(value))
	if _, ok := result.Val().(string); !ok {
		return nil, fmt.Errorf("extract dom: unexpected result %s", result.JSON("", ""))
	}
	var raw dom.RawNode
	if err := json.Unmarshal([]byte(result.Str()), &raw); err != nil {
		return nil, fmt.Errorf("extract dom: decode tree: %w", err)
	}
	return dom.Build(&raw)
}

func (b *BrowserAdapter) CurrentURL(ctx context.Context) (string, error) {
	info, err := b.page.Context(ctx).Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.URL, nil
}

func (b *BrowserAdapter) Close() error {
	var err error
	b.closeOnce.Do(func() {
		b.closed = true
		if b.browser != nil {
			err = b.browser.Close()
		}
		if b.launcher != nil {
			b.launcher.Kill()
			b.launcher.Cleanup()
		}
	})
	return err
}

func isXPath(locator string) bool {
	return strings.HasPrefix(locator, "/") || strings.HasPrefix(locator, "(")
}

type element struct {
	el *rod.Element
}

func (e *element) Click(ctx context.Context) error {
	if err := e.el.Context(ctx).Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

func (e *element) TypeInto(ctx context.Context, text string) error {
	if err := e.el.Context(ctx).Input(text); err != nil {
		return fmt.Errorf("input failed: %w", err)
	}
	return nil
}

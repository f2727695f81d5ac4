package output

import (
	"context"
	"encoding/json"
	"time"

	"browser-use/internal/domain/entity"
)

// BrowserSession is the live page the tools drive. Implementations own the browser process
// or connection; the tools never talk to the browser any other way.
type BrowserSession interface {
	Navigate(ctx context.Context, url string) error
	WaitForNavigation(ctx context.Context) error

	// FindElement fails with entity.ErrElementNotFound when nothing matches locator.
	FindElement(ctx context.Context, locator string) (ElementHandle, error)

	// Evaluate runs code in the page. A nil result means the script produced undefined.
	Evaluate(ctx context.Context, code string, awaitPromise bool) (json.RawMessage, error)
	CaptureScreenshot(ctx context.Context, fullPage bool) ([]byte, error)
	PressKey(ctx context.Context, key string) error

	// WaitForElement fails with entity.ErrTimeout once timeout elapses.
	WaitForElement(ctx context.Context, locator string, timeout time.Duration) error

	ExtractDOM(ctx context.Context) (*entity.DomTree, error)
	CurrentURL(ctx context.Context) (string, error)

	Close() error
}

type ElementHandle interface {
	Click(ctx context.Context) error
	TypeInto(ctx context.Context, text string) error
}

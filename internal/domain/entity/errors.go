package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrElementNotFound     = errors.New("element not found")
	ErrEvaluationFailed    = errors.New("evaluation failed")
	ErrScreenshotFailed    = errors.New("screenshot failed")
	ErrTimeout             = errors.New("timeout")
	ErrToolExecutionFailed = errors.New("tool execution failed")
	ErrToolNotFound        = errors.New("tool not found")
)

// BrowserError carries the error kind, the tool it surfaced from and the underlying cause.
// errors.Is matches both the kind sentinel and the cause.
type BrowserError struct {
	Kind   error
	Tool   string
	Reason string
	Err    error
}

func (e *BrowserError) Error() string {
	switch {
	case e.Tool != "" && e.Kind == ErrToolExecutionFailed:
		return fmt.Sprintf("tool '%s' failed: %s", e.Tool, e.Reason)
	case e.Tool != "":
		return fmt.Sprintf("%s: %v: %s", e.Tool, e.Kind, e.Reason)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
	}
}

func (e *BrowserError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewError(kind error, format string, args ...any) *BrowserError {
	return &BrowserError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) *BrowserError {
	return NewError(ErrInvalidArgument, format, args...)
}

func ElementNotFound(format string, args ...any) *BrowserError {
	return NewError(ErrElementNotFound, format, args...)
}

// ToolFailed attaches tool identity to err. Errors that already carry a kind keep it;
// anything else becomes ErrToolExecutionFailed.
func ToolFailed(tool ToolName, err error) error {
	if err == nil {
		return nil
	}
	var be *BrowserError
	if errors.As(err, &be) {
		if be.Tool != "" {
			return err
		}
		return &BrowserError{Kind: be.Kind, Tool: tool.String(), Reason: be.Reason, Err: be.Err}
	}
	return &BrowserError{Kind: ErrToolExecutionFailed, Tool: tool.String(), Reason: err.Error(), Err: err}
}

// Wrap tags err with kind and tool, keeping err as the cause.
func Wrap(kind error, tool ToolName, err error) error {
	if err == nil {
		return nil
	}
	return &BrowserError{Kind: kind, Tool: tool.String(), Reason: err.Error(), Err: err}
}

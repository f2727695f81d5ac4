package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/google/jsonschema-go/jsonschema"

	"browser-use/internal/application/port/output"
	"browser-use/internal/domain/entity"
)

var _ output.ToolPort = (*ScreenshotTool)(nil)

type ScreenshotTool struct {
	spec
	logger output.LoggerPort
}

func NewScreenshotTool(logger output.LoggerPort) *ScreenshotTool {
	return &ScreenshotTool{
		spec: newSpec(entity.ToolScreenshot, "Capture a screenshot of the current page", objectSchema(
			map[string]*jsonschema.Schema{
				"path":      stringProp("File path to save the PNG to"),
				"full_page": boolProp("Capture the full scrollable page (default false)"),
				"max_width": intProp("Downscale to at most this many pixels wide (default 0, native size)"),
			}, "path")),
		logger: logger,
	}
}

type screenshotParams struct {
	Path     string `json:"path"`
	FullPage bool   `json:"full_page"`
	MaxWidth int    `json:"max_width"`
}

func (t *ScreenshotTool) Execute(ctx context.Context, raw json.RawMessage, ec output.ExecutionContext) (*entity.ToolResult, error) {
	var params screenshotParams
	if err := t.decode(raw, &params); err != nil {
		return nil, err
	}
	if params.Path == "" {
		return nil, entity.Wrap(entity.ErrInvalidArgument, t.name, fmt.Errorf("path must not be empty"))
	}
	if params.MaxWidth < 0 {
		return nil, entity.Wrap(entity.ErrInvalidArgument, t.name, fmt.Errorf("max_width must not be negative"))
	}

	data, err := ec.Session().CaptureScreenshot(ctx, params.FullPage)
	if err != nil {
		return nil, entity.Wrap(entity.ErrScreenshotFailed, t.name, err)
	}

	if params.MaxWidth > 0 {
		data, err = downscale(data, params.MaxWidth)
		if err != nil {
			return nil, entity.Wrap(entity.ErrScreenshotFailed, t.name, err)
		}
	}

	if err := os.WriteFile(params.Path, data, 0644); err != nil {
		return nil, entity.Wrap(entity.ErrScreenshotFailed, t.name, fmt.Errorf("failed to save screenshot: %w", err))
	}
	t.logger.Debug("screenshot saved", "path", params.Path, "size_bytes", len(data))

	return t.succeed(map[string]any{
		"path":       params.Path,
		"size_bytes": len(data),
		"full_page":  params.FullPage,
	})
}

// downscale shrinks a PNG to maxWidth keeping the aspect ratio. Narrower images pass through.
func downscale(data []byte, maxWidth int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	if img.Bounds().Dx() <= maxWidth {
		return data, nil
	}
	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}

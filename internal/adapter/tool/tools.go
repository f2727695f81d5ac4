package tool

import "browser-use/internal/application/port/output"

// Defaults returns every built-in tool.
func Defaults(policy *URLPolicy, logger output.LoggerPort) []output.ToolPort {
	return []output.ToolPort{
		NewNavigateTool(policy, logger),
		NewClickTool(logger),
		NewInputTool(logger),
		NewEvaluateTool(logger),
		NewScreenshotTool(logger),
		NewWaitTool(logger),
		NewHoverTool(logger),
		NewSelectTool(logger),
		NewSnapshotTool(logger),
		NewGetClickableElementsTool(logger),
		NewGetMarkdownTool(logger),
		NewReadLinksTool(logger),
		NewPressKeyTool(logger),
		NewScrollTool(logger),
	}
}

// RegisterDefaults adds every built-in tool to registry.
func RegisterDefaults(registry output.ToolRegistry, policy *URLPolicy, logger output.LoggerPort) {
	for _, t := range Defaults(policy, logger) {
		registry.Register(t)
	}
}

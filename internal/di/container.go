package di

import (
	"context"
	"fmt"

	"browser-use/internal/adapter/mcpserver"
	"browser-use/internal/adapter/tool"
	"browser-use/internal/application/port/output"
	"browser-use/internal/application/service"
	"browser-use/internal/infrastructure/browser/rod"
	"browser-use/internal/infrastructure/config"
	"browser-use/internal/infrastructure/logger"
)

type Container struct {
	Config  *config.Config
	Logger  output.LoggerPort
	Session output.BrowserSession
	Tools   *service.ToolRegistryImpl
	Server  *mcpserver.Server
}

// NewContainer launches (or attaches to) a browser as configured and wires the tool set around it.
func NewContainer(ctx context.Context, cfg *config.Config, version string) (*Container, error) {
	log, err := logger.NewLoggerAdapter(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = !cfg.Browser.Headed
	browserCfg.Timeout = cfg.Browser.Timeout
	browserCfg.ExecutablePath = cfg.Browser.Executable
	browserCfg.RemoteURL = cfg.Browser.RemoteURL
	browserCfg.UserDataDir = cfg.Browser.UserDataDir
	browserCfg.NoSandbox = cfg.Browser.NoSandbox
	browserCfg.Stealth = cfg.Browser.Stealth

	browser, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}
	log.Info("browser ready",
		"headless", browserCfg.Headless,
		"remote", browserCfg.RemoteURL != "",
		"stealth", browserCfg.Stealth,
	)

	c, err := NewContainerWithSession(cfg, browser, log, version)
	if err != nil {
		browser.Close()
		log.Close()
		return nil, err
	}
	return c, nil
}

// NewContainerWithSession wires the tool set around an existing session.
func NewContainerWithSession(cfg *config.Config, session output.BrowserSession, log output.LoggerPort, version string) (*Container, error) {
	policy, err := tool.NewURLPolicy(cfg.Navigate.Allow...)
	if err != nil {
		return nil, fmt.Errorf("invalid navigate allow-list: %w", err)
	}

	tools := service.NewToolRegistry(log)
	tool.RegisterDefaults(tools, policy, log)

	return &Container{
		Config:  cfg,
		Logger:  log,
		Session: session,
		Tools:   tools,
		Server:  mcpserver.NewServer(tools, session, log, version),
	}, nil
}

func (c *Container) Close() {
	if c.Session != nil {
		if err := c.Session.Close(); err != nil && c.Logger != nil {
			c.Logger.Warn("browser close failed", "error", err)
		}
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

// Package config holds the browser-use runtime configuration: a YAML file with defaults,
// overridden by environment variables.
package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"browser-use/internal/application/port/output"
)

type Config struct {
	Browser  BrowserConfig  `yaml:"browser"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Navigate NavigateConfig `yaml:"navigate"`
}

type BrowserConfig struct {
	Headed      bool          `yaml:"headed"`
	Executable  string        `yaml:"executable"`
	RemoteURL   string        `yaml:"remote_url"`
	UserDataDir string        `yaml:"user_data_dir"`
	NoSandbox   bool          `yaml:"no_sandbox"`
	Stealth     bool          `yaml:"stealth"`
	Timeout     time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // json | console
	File   string `yaml:"file"`
}

type ServerConfig struct {
	Name     string `yaml:"name"`
	HTTPAddr string `yaml:"http_addr"`
}

// NavigateConfig restricts where the navigate tool may go. Empty means anywhere.
type NavigateConfig struct {
	Allow []string `yaml:"allow"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Load reads path when set, then applies environment overrides from env.
func Load(path string, env output.ConfigPort) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}
	if env != nil {
		cfg.ApplyEnv(env)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Browser.Timeout <= 0 {
		c.Browser.Timeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Server.Name == "" {
		c.Server.Name = "browser-use"
	}
}

func (c *Config) ApplyEnv(env output.ConfigPort) {
	c.Browser.Headed = !env.GetBool("BROWSER_HEADLESS", !c.Browser.Headed)
	c.Browser.Executable = env.GetWithDefault("BROWSER_EXECUTABLE", c.Browser.Executable)
	c.Browser.RemoteURL = env.GetWithDefault("BROWSER_REMOTE_URL", c.Browser.RemoteURL)
	c.Browser.UserDataDir = env.GetWithDefault("BROWSER_USER_DATA_DIR", c.Browser.UserDataDir)
	c.Log.Level = env.GetWithDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = env.GetWithDefault("LOG_FORMAT", c.Log.Format)

	if allow := env.Get("NAVIGATE_ALLOW"); allow != "" {
		c.Navigate.Allow = splitList(allow)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

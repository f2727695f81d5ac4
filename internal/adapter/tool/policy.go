package tool

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

var allowedSchemes = map[string]bool{
	"http": true, "https": true, "file": true, "data": true, "about": true,
}

// URLPolicy decides which URLs navigate may open. Patterns containing "://" match the whole
// URL; any other pattern matches the host, with "." as the separator.
type URLPolicy struct {
	urls  []glob.Glob
	hosts []glob.Glob
}

// NewURLPolicy compiles patterns. With no patterns every URL with an allowed scheme passes.
func NewURLPolicy(patterns ...string) (*URLPolicy, error) {
	p := &URLPolicy{}
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.Contains(pattern, "://") {
			g, err := glob.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("compile url pattern %q: %w", pattern, err)
			}
			p.urls = append(p.urls, g)
			continue
		}
		g, err := glob.Compile(strings.ToLower(pattern), '.')
		if err != nil {
			return nil, fmt.Errorf("compile host pattern %q: %w", pattern, err)
		}
		p.hosts = append(p.hosts, g)
	}
	return p, nil
}

func (p *URLPolicy) restricted() bool {
	return len(p.urls)+len(p.hosts) > 0
}

// Check returns nil when raw may be opened.
func (p *URLPolicy) Check(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		return fmt.Errorf("url %q has no scheme", raw)
	}
	if !allowedSchemes[scheme] {
		return fmt.Errorf("scheme %q is not allowed", scheme)
	}
	if p == nil || !p.restricted() {
		return nil
	}
	for _, g := range p.urls {
		if g.Match(raw) {
			return nil
		}
	}
	host := strings.ToLower(u.Hostname())
	for _, g := range p.hosts {
		if host != "" && g.Match(host) {
			return nil
		}
	}
	return fmt.Errorf("url %q is not in the allow list", raw)
}

package config

import (
	"errors"
	"net/netip"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string `yaml:"environment"` // reported by /healthz

	HTTP struct {
		Address    string        `yaml:"address"`
		RateLimit  int           `yaml:"rate_limit"`  // requests per window per client, 0 disables
		RateWindow time.Duration `yaml:"rate_window"` // e.g. "1m"
		// Peers (IPs or CIDRs) whose X-Forwarded-For/X-Real-IP are believed.
		TrustedProxies []string `yaml:"trusted_proxies"`
	} `yaml:"http"`

	Logging struct {
		Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
		Format string `yaml:"format"` // "text" | "json"
	} `yaml:"logging"`

	Site SiteConfig `yaml:"site"`
}

// SiteConfig only shapes the HTML document around the page shell.
type SiteConfig struct {
	Title string `yaml:"title"`
	Lang  string `yaml:"lang"`
}

func (c *Config) Defaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.RateWindow == 0 {
		c.HTTP.RateWindow = time.Minute
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Site.Title == "" {
		c.Site.Title = "DocuGroup"
	}
	if c.Site.Lang == "" {
		c.Site.Lang = "es"
	}
}

func (c *Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.HTTP.Address) == "" {
		errs = append(errs, "http.address must be set")
	}
	if c.HTTP.RateLimit < 0 {
		errs = append(errs, "http.rate_limit must be >= 0")
	}
	if c.HTTP.RateWindow < 0 {
		errs = append(errs, "http.rate_window must not be negative")
	}
	for _, p := range c.HTTP.TrustedProxies {
		if !validProxy(p) {
			errs = append(errs, "http.trusted_proxies: invalid address or CIDR "+strconv.Quote(p))
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "logging.level must be one of debug|info|warn|error")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, "logging.format must be json or text")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validProxy(s string) bool {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		_, err := netip.ParsePrefix(s)
		return err == nil
	}
	_, err := netip.ParseAddr(s)
	return err == nil
}

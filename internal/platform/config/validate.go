package config

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// Validate reports every invalid setting at once, joined.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Drafts.validate(&p)
	c.I18n.validate(&p)
	return errors.Join(p...)
}

// problems collects validation failures.
type problems []error

// require records the formatted failure unless ok holds.
func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

func (p *problems) localeTag(key, tag string) {
	if _, err := language.Parse(tag); err != nil {
		*p = append(*p, fmt.Errorf("%s %q is not a valid BCP 47 tag: %w", key, tag, err))
	}
}

func (s *ServerConfig) validate(p *problems) {
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
}

func (cl *ClientConfig) validate(p *problems) {
	p.require(cl.BaseURL != "", "client.base_url must not be empty")
	p.require(cl.Timeout > 0, "client.timeout must be positive, got %s", cl.Timeout)
	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must be >= 0, got %g", rl.RequestsPerSecond)
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", rl.BurstSize)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.require(t.ServiceName != "", "telemetry.service_name must not be empty when telemetry is enabled")
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
}

func (d *DraftsConfig) validate(p *problems) {
	p.require(d.IdleTTL > 0, "drafts.idle_ttl must be positive, got %s", d.IdleTTL)
	p.require(d.SweepInterval > 0, "drafts.sweep_interval must be positive, got %s", d.SweepInterval)
	p.require(d.MaxSessions >= 1, "drafts.max_sessions must be >= 1, got %d", d.MaxSessions)
	p.require(d.NoticeLimit >= 1, "drafts.notice_limit must be >= 1, got %d", d.NoticeLimit)
}

func (i *I18nConfig) validate(p *problems) {
	p.localeTag("i18n.default_locale", i.DefaultLocale)
	if i.Locale != "" {
		p.localeTag("i18n.locale", i.Locale)
	}
}

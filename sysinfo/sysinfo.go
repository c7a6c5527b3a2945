// Package sysinfo provides cross-platform system information retrieval.
// It collects display strings for a list of named fields, including fields
// backed by user defined shell commands.
package sysinfo

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"rice/logging"
)

// Field names understood by the Collector.
const (
	FieldUserHost   = "userhost"
	FieldOS         = "os"
	FieldHostname   = "hostname"
	FieldKernel     = "kernel"
	FieldUptime     = "uptime"
	FieldPackages   = "packages"
	FieldShell      = "shell"
	FieldResolution = "resolution"
	FieldDE         = "de"
	FieldWM         = "wm"
	FieldTerminal   = "terminal"
	FieldCPU        = "cpu"
	FieldMemory     = "memory"
	FieldDisk       = "disk"

	// FieldColors is rendered by the display package unless a custom
	// command provides it.
	FieldColors = "colors"
)

// Unknown is shown for built-in fields that could not be detected.
const Unknown = "Unknown"

// DefaultTimeout bounds every external command run during collection.
const DefaultTimeout = 2 * time.Second

type fieldFunc func(ctx context.Context, c *Collector) (string, error)

var builtinFields = map[string]fieldFunc{
	FieldUserHost:   func(ctx context.Context, c *Collector) (string, error) { return c.userHost(ctx), nil },
	FieldOS:         func(ctx context.Context, _ *Collector) (string, error) { return osName(ctx), nil },
	FieldHostname:   func(ctx context.Context, _ *Collector) (string, error) { return hostname(ctx), nil },
	FieldKernel:     func(ctx context.Context, _ *Collector) (string, error) { return kernel(ctx), nil },
	FieldUptime:     func(ctx context.Context, _ *Collector) (string, error) { return uptime(ctx), nil },
	FieldCPU:        func(ctx context.Context, _ *Collector) (string, error) { return cpuInfo(ctx), nil },
	FieldMemory:     func(ctx context.Context, _ *Collector) (string, error) { return memoryInfo(ctx), nil },
	FieldDisk:       func(ctx context.Context, _ *Collector) (string, error) { return diskInfo(ctx), nil },
	FieldShell:      func(ctx context.Context, c *Collector) (string, error) { return c.shell(ctx), nil },
	FieldTerminal:   func(_ context.Context, c *Collector) (string, error) { return c.terminal(), nil },
	FieldPackages:   func(ctx context.Context, c *Collector) (string, error) { return c.packages(ctx), nil },
	FieldResolution: func(ctx context.Context, c *Collector) (string, error) { return c.resolution(ctx), nil },
	FieldDE:         func(_ context.Context, c *Collector) (string, error) { return c.desktop(), nil },
	FieldWM:         func(ctx context.Context, c *Collector) (string, error) { return c.windowManager(ctx), nil },
}

// Collector gathers the values of a list of fields.
type Collector struct {
	fields  []string
	custom  map[string]string
	timeout time.Duration
	getenv  func(string) string
	run     runner
	goos    string
	logger  zerolog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithTimeout overrides DefaultTimeout for external commands.
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) { c.timeout = d }
}

// WithEnv replaces os.Getenv for environment based detection.
func WithEnv(getenv func(string) string) Option {
	return func(c *Collector) { c.getenv = getenv }
}

// NewCollector creates a Collector for fields. Custom commands map a field
// name to a shell command whose output becomes the field value; they take
// precedence over built-in fields of the same name.
func NewCollector(fields []string, custom map[string]string, opts ...Option) *Collector {
	c := &Collector{
		fields:  fields,
		custom:  custom,
		timeout: DefaultTimeout,
		getenv:  osGetenv,
		run:     execRunner{},
		goos:    runtime.GOOS,
		logger:  logging.GetLogger("collector"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect returns the value of every field that could be collected. Fields
// that fail are left out and logged; unknown field names are reported as
// Unknown. Collection runs sequentially in field order.
func (c *Collector) Collect(ctx context.Context) map[string]string {
	info := make(map[string]string, len(c.fields))
	for _, field := range c.fields {
		if _, done := info[field]; done {
			continue
		}
		if _, custom := c.custom[field]; field == FieldColors && !custom {
			continue
		}
		start := time.Now()
		v, err := c.collectField(ctx, field)
		if err != nil {
			c.logger.Debug().Err(err).Str("field", field).Msg("field skipped")
			continue
		}
		c.logger.Trace().Str("field", field).Dur("duration", time.Since(start)).Msg("field collected")
		info[field] = v
	}
	return info
}

func (c *Collector) collectField(ctx context.Context, field string) (string, error) {
	if command, ok := c.custom[field]; ok {
		return c.RunCustom(ctx, command)
	}
	if fn, ok := builtinFields[field]; ok {
		return fn(ctx, c)
	}
	return Unknown, nil
}

// Supported reports whether field is a built-in field.
func Supported(field string) bool {
	_, ok := builtinFields[field]
	return ok
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"code.soquee.net/convmux"
)

// Outcomes of a check that did not reach a route handler.
const (
	outcomeNoMatch    = "no match"
	outcomeNotAllowed = "method not allowed"
	outcomeRedirect   = "redirect"
)

var errNoPattern = errors.New("route is missing a pattern")

// Route is a single entry of the route table.
type Route struct {
	Method  string `yaml:"method,omitempty"`
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name,omitempty"`
}

// Check is a request to resolve against the route table.
type Check struct {
	Method string `yaml:"method,omitempty"`
	Path   string `yaml:"path"`

	// Expect is the name of the route the path should resolve to, "no match",
	// "method not allowed" or "redirect".
	// If empty the result is reported but not checked.
	Expect string `yaml:"expect,omitempty"`
}

// Config is the route table file.
type Config struct {
	Routes []Route `yaml:"routes"`
	Checks []Check `yaml:"checks,omitempty"`
}

// Load reads and validates the route table at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return &cfg, nil
}

// Validate fills in defaults and reports routes that cannot be registered.
func (c *Config) Validate() error {
	for i := range c.Routes {
		r := &c.Routes[i]
		if r.Pattern == "" {
			return fmt.Errorf("routes[%d]: %w", i, errNoPattern)
		}
		if r.Method == "" {
			r.Method = http.MethodGet
		}
		r.Method = strings.ToUpper(r.Method)
		if r.Name == "" {
			r.Name = r.Pattern
		}
	}
	for i := range c.Checks {
		ch := &c.Checks[i]
		if ch.Method == "" {
			ch.Method = http.MethodGet
		}
		ch.Method = strings.ToUpper(ch.Method)
	}
	return nil
}

// Build registers every route on a new multiplexer.
// Registration panics, such as an invalid parameter type or argument, are
// returned as errors.
func (c *Config) Build(logger *slog.Logger) (m *mux.ServeMux, err error) {
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("building route table: %v", r)
		}
	}()

	opts := []mux.Option{
		mux.Logger(logger),
		mux.NotFound(http.HandlerFunc(noMatch)),
		mux.MethodNotAllowed(http.HandlerFunc(notAllowed)),
		mux.Options(nil),
	}
	for _, r := range c.Routes {
		opts = append(opts, mux.Handle(r.Method, r.Pattern, report(r.Name)))
	}
	return mux.New(opts...), nil
}

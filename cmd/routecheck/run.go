package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"code.soquee.net/convmux"
)

// routeHeader carries the name of the matched route from its handler back to
// the check.
const routeHeader = "Routecheck-Route"

// Run parses args, loads the route table and resolves every check against it.
// Results are written to stdout, logs to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := Load(opts.Config)
	if err != nil {
		return err
	}
	m, err := cfg.Build(logger)
	if err != nil {
		return err
	}

	checks := cfg.Checks[:len(cfg.Checks):len(cfg.Checks)]
	for _, p := range opts.Args.Paths {
		checks = append(checks, Check{Method: strings.ToUpper(opts.Method), Path: p})
	}

	var failed int
	for _, c := range checks {
		res := resolve(m, c.Method, c.Path)
		fmt.Fprintf(stdout, "%s %s -> %s\n", c.Method, c.Path, res)
		if c.Expect != "" && c.Expect != res.outcome {
			failed++
			logger.Error("check failed", "method", c.Method, "path", c.Path, "want", c.Expect, "got", res.outcome)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

// result is what a single request resolved to.
type result struct {
	// outcome is the route name, or one of the outcome constants.
	outcome string
	detail  string
}

func (r result) String() string {
	if r.detail == "" {
		return r.outcome
	}
	return r.outcome + " " + r.detail
}

func resolve(m *mux.ServeMux, method, path string) result {
	req := &http.Request{
		Method: method,
		URL:    &url.URL{Path: path},
		Header: make(http.Header),
	}
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	if name := rec.Header().Get(routeHeader); name != "" {
		return result{outcome: name, detail: strings.TrimSpace(rec.Body.String())}
	}
	switch rec.Code {
	case http.StatusMethodNotAllowed:
		return result{outcome: outcomeNotAllowed}
	case http.StatusPermanentRedirect:
		return result{outcome: outcomeRedirect, detail: rec.Header().Get("Location")}
	}
	return result{outcome: outcomeNoMatch}
}

// report returns the handler registered for the named route.
// It writes the converted parameters of the request.
func report(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(routeHeader, name)
		params := mux.Params(r)
		fields := make([]string, 0, len(params))
		for _, p := range params {
			label := p.Name
			if label == "" {
				label = p.Type
			}
			fields = append(fields, label+"="+formatValue(p.Value))
		}
		io.WriteString(w, strings.Join(fields, " "))
	}
}

func noMatch(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

func notAllowed(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case string:
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprint(v)
}

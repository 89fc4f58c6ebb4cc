package mux

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// ctxRoute is a type used as the context key when storing a route on the HTTP
// context for future use.
type ctxRoute struct{}

// ServeMux is an HTTP request multiplexer.
// It matches the URL of each incoming request against a list of registered
// patterns and calls the handler for the pattern that most closely matches the
// URL.
type ServeMux struct {
	node             node
	notFound         http.Handler
	methodNotAllowed http.Handler
	options          func(node) http.Handler
	log              *slog.Logger
}

// New allocates and returns a new ServeMux.
// If any of the options registers an invalid route, New panics.
func New(opts ...Option) *ServeMux {
	mux := &ServeMux{
		node: node{
			name:     "/",
			typ:      typStatic,
			handlers: make(map[string]http.Handler),
		},
		notFound: http.HandlerFunc(http.NotFound),
		methodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}),
		options: defOptions,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(mux)
	}
	return mux
}

// ServeHTTP dispatches the request to the handler whose pattern most closely
// matches the request URL.
func (mux *ServeMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, newReq := mux.handler(r)
	h.ServeHTTP(w, newReq)
}

// Handler returns the handler to use for the given request, consulting
// r.URL.Path.
// It always returns a non-nil handler and request.
//
// The path used is unchanged for CONNECT requests.
//
// If there is no registered handler that applies to the request, Handler
// returns a page not found handler.
// If a new request is returned it uses a context that contains any route
// parameters that were matched against the request path.
func (mux *ServeMux) Handler(r *http.Request) (http.Handler, *http.Request) {
	return mux.handler(r)
}

// handler returns the handler to use for the given request and a new request
// with parameters set on the context.
func (mux *ServeMux) handler(r *http.Request) (http.Handler, *http.Request) {
	path := r.URL.Path

	// CONNECT requests are not canonicalized
	if r.Method != http.MethodConnect {
		path = cleanPath(r.URL.Path)
		if path != r.URL.Path {
			url := *r.URL
			url.Path = path
			return http.RedirectHandler(url.String(), http.StatusPermanentRedirect), r
		}
	}

	path = strings.TrimPrefix(path, "/")

	// Requests for /
	if path == "" {
		return mux.resolve(&mux.node, nil, r)
	}

	l := lookup{method: r.Method}
	if !l.walk(&mux.node, path, 1, nil) && l.alt != nil {
		l.node, l.params = l.alt, l.altParams
	}
	if l.node == nil {
		mux.log.Debug("no route matched", "method", r.Method, "path", r.URL.Path)
		return mux.notFound, r
	}
	mux.log.Debug("route matched", "method", r.Method, "path", r.URL.Path, "route", "/"+l.node.route)
	return mux.resolve(l.node, l.params, r)
}

// resolve picks the handler registered on n for the request method and stores
// the route and its parameters on the request context.
func (mux *ServeMux) resolve(n *node, params []ParamInfo, r *http.Request) (http.Handler, *http.Request) {
	h, ok := n.handlers[r.Method]
	if !ok {
		// A node without handlers, such as an unregistered root, is not a
		// route.
		switch {
		case len(n.handlers) == 0:
		case r.Method == http.MethodOptions && mux.options != nil:
			return mux.options(*n), r
		case mux.methodNotAllowed != nil:
			return mux.methodNotAllowed, r
		}
		return mux.notFound, r
	}

	ctx := context.WithValue(r.Context(), ctxRoute{}, n.route)
	ctx = context.WithValue(ctx, ctxParams{}, params)
	for _, p := range params {
		if p.Name != "" {
			ctx = context.WithValue(ctx, ctxParam(p.Name), p)
		}
	}
	return h, r.WithContext(ctx)
}

// parseParam splits a path component into its parts.
// Static components are returned as the name with type typStatic.
func parseParam(pattern string) (name, typ, args string) {
	// Static route components aren't patterns and must match exactly.
	if pattern[0] != '{' || pattern[len(pattern)-1] != '}' {
		if strings.ContainsAny(pattern, "{}") {
			panic(fmt.Sprintf("malformed path parameter: %q", pattern))
		}
		return pattern, typStatic, ""
	}

	// {} is an unnamed variable (it matches any single path component)
	if len(pattern) == 2 {
		return "", typString, ""
	}

	inner := pattern[1 : len(pattern)-1]
	head := inner
	if idx := strings.IndexByte(inner, '('); idx != -1 {
		if inner[len(inner)-1] != ')' {
			panic(fmt.Sprintf("unterminated argument list in path parameter: %q", pattern))
		}
		head = inner[:idx]
		args = strings.TrimSpace(inner[idx+1 : len(inner)-1])
	}

	// Variable matches ("{name type}" or "{type}")
	fields := strings.Fields(head)
	switch len(fields) {
	case 1:
		typ = fields[0]
	case 2:
		name, typ = fields[0], fields[1]
	default:
		panic(fmt.Sprintf("invalid path parameter: %q", pattern))
	}

	if _, ok := kinds[typ]; !ok {
		panic(fmt.Sprintf("invalid type: %q", typ))
	}
	return name, typ, args
}

func nextPart(path string) (string, string) {
	idx := strings.IndexByte(path, '/')
	if idx == -1 {
		return path, ""
	}
	return path[:idx], path[idx+1:]
}

// Code below this line was taken from the Go source and is used under the terms
// of Go's BSD license (see the file LICENSE-GO). Its copyright statement is
// below:
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Return the canonical path for p, eliminating . and .. elements.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes trailing slash except for root;
	// put the trailing slash back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}

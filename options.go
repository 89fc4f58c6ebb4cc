package mux

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Option is used to configure a ServeMux.
type Option func(*ServeMux)

// NotFound sets the handler to use when a request does not have a registered
// route.
//
// If the provided handler does not set the status code, it is set to 404 (Page
// Not Found) by default instead of 200.
// If the provided handler explicitly sets the status by calling
// "http.ResponseWriter".WriteHeader, that status code is used instead.
func NotFound(h http.Handler) Option {
	return func(mux *ServeMux) {
		mux.notFound = notFoundHandler(h)
	}
}

// Options changes the ServeMux's default OPTIONS request handling behavior.
// If you do not want options handling by default, set f to "nil".
//
// Registering handlers for OPTIONS requests on a specific path always overrides
// the default handler.
func Options(f func([]string) http.Handler) Option {
	return func(mux *ServeMux) {
		if f == nil {
			mux.options = nil
			return
		}

		mux.options = func(n node) http.Handler {
			return f(n.methods())
		}
	}
}

// MethodNotAllowed sets the default handler to call when a path is matched to a
// route, but there is no handler registered for the specific method.
//
// By default, http.Error with http.StatusMethodNotAllowed is used.
func MethodNotAllowed(h http.Handler) Option {
	return func(mux *ServeMux) {
		mux.methodNotAllowed = h
	}
}

// Logger sets the logger used to report route registration and matching at
// debug level.
// Options are applied in order, so Logger should come before any routes whose
// registration should be logged.
// By default nothing is logged.
func Logger(l *slog.Logger) Option {
	return func(mux *ServeMux) {
		if l != nil {
			mux.log = l
		}
	}
}

// HandleFunc registers the handler for the given pattern.
// If a handler already exists for pattern, Handle panics.
func HandleFunc(method, r string, h http.HandlerFunc) Option {
	return Handle(method, r, h)
}

// Handle registers the handler for the given pattern.
// If a handler already exists for pattern, or the pattern contains an invalid
// typed parameter, Handle panics.
func Handle(method, r string, h http.Handler) Option {
	method = strings.ToUpper(method)
	if rr := cleanPath(r); rr != r {
		panic(fmt.Sprintf("route %q is unclean, make sure it is rooted and remove any ., .., or //", r))
	}
	r = r[1:]

	const (
		alreadyRegistered = "route already registered for %s /%s"
	)

	return func(mux *ServeMux) {
		pointer := &mux.node

		// If we're registering a root handler
		if r == "" {
			// If it exists already
			if _, ok := pointer.handlers[method]; ok {
				panic(fmt.Sprintf(alreadyRegistered, method, r))
			}
			pointer.route = r
			pointer.handlers[method] = h
			mux.log.Debug("registered route", "method", method, "route", "/")
			return
		}

	pathloop:
		for part, remain := nextPart(r); remain != "" || part != ""; part, remain = nextPart(remain) {
			name, typ, literal := parseParam(part)

			if typ == typWild && remain != "" {
				panic(fmt.Sprintf("wildcards must be the last component in a route: /%s", r))
			}

			// Check if a node already exists in the tree for this component.
			for i, child := range pointer.child {
				switch {
				case typ == typStatic && child.typ == typStatic:
					if child.name != name {
						continue
					}
				case typ != typStatic && child.sameTemplate(typ, literal):
					if child.name != name {
						panic(fmt.Sprintf("conflicting variable name found, {%s %s} in route %q conflicts with existing registration of {%s %s}", name, typ, r, child.name, child.typ))
					}
				default:
					continue
				}

				if remain == "" {
					// If this is the path we want to register and no handler has been
					// registered for it, add one:
					if _, ok := child.handlers[method]; ok {
						// If one already exists and this is the path we were trying to
						// register, panic.
						panic(fmt.Sprintf(alreadyRegistered, method, r))
					}
					pointer.child[i].route = r
					pointer.child[i].handlers[method] = h
					continue pathloop
				}

				pointer = &pointer.child[i]
				continue pathloop
			}

			// Not found at this level. Add a new node.
			n := node{
				name:     name,
				typ:      typ,
				args:     literal,
				handlers: make(map[string]http.Handler),
			}
			if typ != typStatic {
				conv, err := newConverter(typ, literal)
				if err != nil {
					panic(fmt.Sprintf("invalid parameter %q in route %q: %v", part, "/"+r, err))
				}
				n.conv = conv
			}
			if remain == "" {
				n.route = r
				n.handlers[method] = h
			}
			pointer = pointer.insert(n)
		}
		mux.log.Debug("registered route", "method", method, "route", "/"+r)
	}
}

// insert adds c as a child of n and returns a pointer to it.
// Static children are kept ahead of variable children so that they are tried
// first.
func (n *node) insert(c node) *node {
	idx := len(n.child)
	if c.typ == typStatic {
		idx = 0
		for idx < len(n.child) && n.child[idx].typ == typStatic {
			idx++
		}
	}
	n.child = append(n.child, node{})
	copy(n.child[idx+1:], n.child[idx:])
	n.child[idx] = c
	return &n.child[idx]
}

// methods returns the methods that have a handler registered on n.
func (n node) methods() []string {
	var verbs []string
	for v := range n.handlers {
		verbs = append(verbs, v)
	}
	return verbs
}

// Package mux is a fast and safe HTTP request multiplexer with typed path
// parameters.
//
// The multiplexer in this package is capable of routing based on request method
// and a fixed rooted path (/favicon.ico) or subtree (/images/) which may
// include typed path parameters and wildcards (see "URL Parameters").
//
//	m := mux.New(
//		mux.Handle(http.MethodGet, "/profile/{username string}", http.NotFoundHandler()),
//		mux.HandleFunc(http.MethodGet, "/profile", http.RedirectHandler("/profile/me", http.StatusPermanentRedirect)),
//		mux.Handle(http.MethodPost, "/logout", logoutHandler()),
//	)
//
// URL Parameters
//
// Routes registered on the multiplexer may contain variable path parameters
// that comprise an optional name, followed by a type and an optional argument
// list.
//
//     /user/{id int}/edit
//     /archive/{year int(4, min=1970)}/{month int(num_digits=2, min=1, max=12)}
//
// Valid types include:
//
//     int    eg. 0, 007 (*big.Int in Go)
//     float  eg. 1, 1.123, -1.5e3 (float64 in Go)
//     dt     eg. 2017-07-03T14:30:01Z (time.Time in Go)
//     uuid   eg. 6ba7b810-9dad-11d1-80b4-00c04fd430c8 (uuid.UUID in Go)
//     string eg. anything ({string} is the same as {})
//     path   eg. files/123.png (must be the last path component)
//
// Arguments are passed by position or by name, and may be quoted with single
// or double quotes:
//
//     int(num_digits, min, max)  num_digits is the exact length of the input,
//                                min and max are inclusive bounds
//     float(min, max, finite)    finite=false also matches nan and inf
//     dt(format_string)          a strftime style format using %Y %y %m %d
//                                %H %M %S %f and %%, by default
//                                "%Y-%m-%dT%H:%M:%SZ"
//
// The format of a dt parameter may not contain a "/".
// Integers never carry a sign.
// UUIDs may be written with or without hyphens and may be prefixed with
// "urn:uuid:".
// Invalid types or arguments cause the route registration to panic.
// For the exact matching rules of each type see the converter package.
//
// Parameters of type "path" match the remainder of the input path and therefore
// may only appear as the final component of a route:
//
//     /file/{p path}
//
// To retrieve the value of named path parameters see the Param function and the
// examples.
//
// Matching
//
// Several routes may have different parameters, or a static component and
// parameters, in the same position.
// Static components are tried first, followed by parameters in the order they
// were registered.
// If a parameter does not match, or nothing further down the path matches, the
// next candidate is tried:
//
//     /user/me
//     /user/{id int}
//     /user/{id uuid}
//     /user/{name string}
//
// Registering the same parameter type and arguments under two different names
// in the same position panics, as does registering two handlers for the same
// method and route.
//
// When a route is matched, the value of each named path parameter is stored on
// the request context.
// To retrieve the value of named path parameters from within a handler, the
// Param function can be used.
//
//    pinfo := mux.Param(req, "username")
//    fmt.Println("Got username:", pinfo.Raw)
//
// For more information, see the ParamInfo type and the examples.
//
// Normalization
//
// It's common to normalize routes on HTTP servers.
// For example, a username may need to match the Username Case Mapped profile of
// PRECIS (RFC 8265), or the name of an identifier may need to always be lower
// cased.
// To make this easier, this package provides the Path and WithParam functions.
// WithParam is used to attach a new context to the context tree with
// replacement values for existing route parameters, and Path is used to
// re-render the path from the original route using the request context.
// If the resulting path is different from req.URL.Path, a redirect can be
// issued or some other corrective action can be applied.
//
//	serveMux := mux.New(
//		mux.HandleFunc(http.MethodGet, "/item/{id uuid}", func(w http.ResponseWriter, r *http.Request) {
//			id := mux.Param(r, "id")
//			canonical := id.Value.(uuid.UUID).String()
//
//			if canonical != id.Raw {
//				r = mux.WithParam(r, id.Name, canonical)
//				newPath, err := mux.Path(r)
//				if err != nil {
//					…
//				}
//				http.Redirect(w, r, newPath, http.StatusPermanentRedirect)
//				return
//			}
//
//			fmt.Fprintln(w, "Item", canonical)
//		}),
//	)
//
// For more information, see the examples.
package mux // import "code.soquee.net/convmux"

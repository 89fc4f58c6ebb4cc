package mux

import (
	"net/http"
)

type ctxParam string

// ctxParams is the context key for every parameter matched by a route, named
// or not, in path order.
type ctxParams struct{}

// ParamInfo represents a route parameter and related metadata.
type ParamInfo struct {
	// Value is the converted value of the parameter.
	// Its dynamic type depends on Type:
	//
	//	int    *big.Int
	//	float  float64
	//	dt     time.Time
	//	uuid   uuid.UUID (github.com/google/uuid)
	//	string string
	//	path   string
	Value interface{}

	// Raw is the path component that was matched.
	Raw string

	// Name is the name of the parameter in the route.
	Name string

	// Type is the kind of the parameter, eg. "int" or "uuid".
	Type string

	// Offset is the position of the matched component in the request path,
	// starting at 1.
	Offset uint
}

// Param returns the named route parameter from the requests context.
// If no parameter with that name was matched, the zero ParamInfo is returned.
func Param(r *http.Request, name string) ParamInfo {
	pinfo, _ := r.Context().Value(ctxParam(name)).(ParamInfo)
	return pinfo
}

// Params returns every parameter matched against the request path, including
// unnamed ones, in the order they appear in the path.
// Named parameters reflect any replacement made with WithParam.
func Params(r *http.Request) []ParamInfo {
	params, _ := r.Context().Value(ctxParams{}).([]ParamInfo)
	out := make([]ParamInfo, 0, len(params))
	for _, p := range params {
		if p.Name != "" {
			if shadow := Param(r, p.Name); shadow.Value != nil {
				p = shadow
			}
		}
		out = append(out, p)
	}
	return out
}

package mux_test

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"

	"code.soquee.net/convmux"
)

func TestInvalidType(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected an invalid type to cause a panic")
		}
	}()
	mux.New(mux.Handle("GET", "/{badtype}", failHandler(t)))
}

var paramsTests = [...]struct {
	routes  []string
	path    string
	params  map[string]interface{}
	noMatch bool
}{
	0: {
		routes: []string{"/user/{account int}/{name string}/{f float}"},
		path:   "/user/123/me/-1.123",
		params: map[string]interface{}{
			"account": big.NewInt(123),
			"name":    "me",
			"f":       float64(-1.123),
		},
	},
	1: {
		routes:  []string{"/{bad float}"},
		path:    "/notfloat",
		noMatch: true,
	},
	2: {
		routes: []string{"/one/{other path}"},
		path:   "/one/two/three",
		params: map[string]interface{}{
			"other": "two/three",
		},
	},
	3: {
		routes:  []string{"/a"},
		path:    "/b",
		noMatch: true,
	},
	4: {
		routes: []string{"/{}"},
		path:   "/b",
	},
	5: {
		routes: []string{"/{month int(2, min=1, max=12)}"},
		path:   "/12",
		params: map[string]interface{}{
			"month": big.NewInt(12),
		},
	},
	6: {
		routes:  []string{"/{month int(2, min=13, max=13)}"},
		path:    "/12",
		noMatch: true,
	},
	7: {
		routes: []string{"/{f float(min=0, max=10)}"},
		path:   "/0.5e1",
		params: map[string]interface{}{
			"f": float64(5),
		},
	},
	8: {
		routes:  []string{"/{f float(0, 1)}"},
		path:    "/1.5e100",
		noMatch: true,
	},
	9: {
		routes: []string{"/{when dt('%Y_%H')}"},
		path:   "/2017_19",
		params: map[string]interface{}{
			"when": time.Date(2017, 1, 1, 19, 0, 0, 0, time.UTC),
		},
	},
	10: {
		routes: []string{"/{id uuid}"},
		path:   "/urn:uuid:6ba7b8109dad11d180b400c04fd430c8",
		params: map[string]interface{}{
			"id": uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		},
	},
	11: {
		routes: []string{"/{when dt}"},
		path:   "/2017-07-03T14:30:01Z",
		params: map[string]interface{}{
			"when": time.Date(2017, 7, 3, 14, 30, 1, 0, time.UTC),
		},
	},
	12: {
		routes:  []string{"/{f float}"},
		path:    "/nan",
		noMatch: true,
	},
	13: {
		routes: []string{"/{f float(finite=false)}"},
		path:   "/-inf",
	},
	14: {
		routes: []string{
			"/item/{n int}",
			"/item/{id uuid}",
			"/item/{slug string}",
		},
		path: "/item/6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		params: map[string]interface{}{
			"id": uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		},
	},
	15: {
		routes: []string{
			"/item/{n int}",
			"/item/{id uuid}",
			"/item/{slug string}",
		},
		path: "/item/hello",
		params: map[string]interface{}{
			"slug": "hello",
		},
	},
}

// Used as an HTTP status code code to make sure the test path matches at
// least one of the routes. This is just a sanity check on the tests
// themselves.
const (
	testStatusCode     = 42
	notFoundStatusCode = 43
)

func paramsHandler(t *testing.T, params map[string]interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(testStatusCode)
		for k, v := range params {
			val := mux.Param(r, k)
			if !reflect.DeepEqual(val.Value, v) {
				t.Errorf("Params has wrong type for %[1]q, want=%[2]T(%[2]v), got=%[3]T(%[3]v)", k, v, val.Value)
			}
		}
	}
}

func TestParams(t *testing.T) {
	for i, tc := range paramsTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			var opts []mux.Option
			for _, route := range tc.routes {
				opts = append(opts, mux.HandleFunc("GET", route, paramsHandler(t, tc.params)))
			}
			opts = append(opts, mux.NotFound(codeHandler(t, notFoundStatusCode)))

			m := mux.New(opts...)
			rec := httptest.NewRecorder()
			m.ServeHTTP(rec, httptest.NewRequest("GET", tc.path, nil))
			switch {
			case tc.noMatch && rec.Code != notFoundStatusCode:
				t.Fatalf("Expected path to not be found, got code %d", rec.Code)
			case !tc.noMatch && rec.Code != testStatusCode:
				t.Fatalf("Test path (%q) did not match any route!", tc.path)
			}
		})
	}
}

func TestParamInfo(t *testing.T) {
	m := mux.New(
		mux.HandleFunc("GET", "/a/{b int}/{c path}", func(w http.ResponseWriter, r *http.Request) {
			b := mux.Param(r, "b")
			want := mux.ParamInfo{Value: big.NewInt(7), Raw: "007", Name: "b", Type: "int", Offset: 2}
			if !reflect.DeepEqual(b, want) {
				t.Errorf("Unexpected param: want=%+v, got=%+v", want, b)
			}
			c := mux.Param(r, "c")
			if c.Raw != "d/e" || c.Type != "path" || c.Offset != 3 {
				t.Errorf("Unexpected wildcard param: %+v", c)
			}
			if missing := mux.Param(r, "missing"); missing.Value != nil {
				t.Errorf("Expected missing param to be empty, got=%+v", missing)
			}
			w.WriteHeader(testStatusCode)
		}),
	)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/a/007/d/e", nil))
	if rec.Code != testStatusCode {
		t.Fatalf("Route did not match, got code %d", rec.Code)
	}
}

func TestParamsList(t *testing.T) {
	m := mux.New(
		mux.HandleFunc("GET", "/{int}/{name string}/{rest path}", func(w http.ResponseWriter, r *http.Request) {
			r = mux.WithParam(r, "name", "bob")
			params := mux.Params(r)
			if len(params) != 3 {
				t.Fatalf("Unexpected number of params: want=3, got=%d", len(params))
			}
			want := []string{"01", "bob", "x/y"}
			for i, p := range params {
				if p.Raw != want[i] {
					t.Errorf("Unexpected param %d: want=%q, got=%q", i, want[i], p.Raw)
				}
			}
			if params[0].Name != "" || params[0].Value.(*big.Int).Int64() != 1 {
				t.Errorf("Unexpected unnamed param: %+v", params[0])
			}
			w.WriteHeader(testStatusCode)
		}),
	)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/01/alice/x/y", nil))
	if rec.Code != testStatusCode {
		t.Fatalf("Route did not match, got code %d", rec.Code)
	}
	if params := mux.Params(httptest.NewRequest("GET", "/", nil)); len(params) != 0 {
		t.Errorf("Expected no params for an unrouted request, got=%+v", params)
	}
}

// The routecheck command builds a route table from a YAML file and reports
// which route, if any, each request path matches along with its converted
// parameters.
//
//	routecheck -f routes.yaml [-X METHOD] [path ...]
//
// The route table looks like this:
//
//	routes:
//	  - method: GET
//	    pattern: /users/{id int(min=1)}
//	    name: user
//	checks:
//	  - path: /users/12
//	    expect: user
//	  - path: /users/0
//	    expect: no match
//
// Checks with an expect field fail the command when they resolve to a
// different route.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "routecheck: %v\n", err)
		os.Exit(1)
	}
}

package main

// Options are the command line flags of routecheck.
// Struct tags are interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config  string `short:"f" long:"config" required:"true" description:"route table YAML path"`
	Method  string `short:"X" long:"method" default:"GET" description:"method used for paths given as arguments"`
	Verbose bool   `short:"v" long:"verbose" description:"log route registration and matching to stderr"`

	Args struct {
		Paths []string `positional-arg-name:"path" description:"extra request paths to check"`
	} `positional-args:"yes"`
}

package mux

import (
	"net/http"

	"code.soquee.net/convmux/converter"
)

type node struct {
	name     string
	typ      string
	args     string
	conv     converter.Converter
	handlers map[string]http.Handler
	route    string

	// Static children come first, followed by variable children in the order
	// they were registered.
	child []node
}

// sameTemplate reports whether n was registered from a component with the
// given type and arguments.
func (n *node) sameTemplate(typ, args string) bool {
	return n.typ == typ && n.args == args
}

// match attempts to match the first component of path.
// If the node matches, the unmatched remainder of the path and the parameter
// captured by the node are returned.
func (n *node) match(path string, offset uint) (remain string, p ParamInfo, ok bool) {
	// wildcards are a special case that always match the entire remainder of the
	// path.
	if n.typ == typWild {
		return "", n.param(path, path, offset), true
	}

	part, remain := nextPart(path)
	if part == "" {
		return path, ParamInfo{}, false
	}
	switch n.typ {
	case typStatic:
		if n.name == part {
			return remain, ParamInfo{}, true
		}
		return path, ParamInfo{}, false
	case typString:
		return remain, n.param(part, part, offset), true
	}

	v, ok := n.conv.Convert(part)
	if !ok {
		return path, ParamInfo{}, false
	}
	return remain, n.param(v, part, offset), true
}

func (n *node) param(v interface{}, raw string, offset uint) ParamInfo {
	return ParamInfo{
		Value:  v,
		Raw:    raw,
		Name:   n.name,
		Type:   n.typ,
		Offset: offset,
	}
}

// lookup is the state of a depth first search through the route tree.
type lookup struct {
	method string
	node   *node
	params []ParamInfo

	// alt is the first node that consumed the whole path but has no handler for
	// method. It is used to respond with 405 or OPTIONS.
	alt       *node
	altParams []ParamInfo
}

// walk searches the children of n for a route matching path.
// Candidates that fail deeper in the tree are abandoned and the next sibling
// is tried.
func (l *lookup) walk(n *node, path string, offset uint, params []ParamInfo) bool {
	for i := range n.child {
		child := &n.child[i]
		remain, p, ok := child.match(path, offset)
		if !ok {
			continue
		}

		ps := params
		if child.typ != typStatic {
			ps = append(params[:len(params):len(params)], p)
		}

		// The child matched and was the last thing in the path.
		if remain == "" {
			if _, ok := child.handlers[l.method]; ok {
				l.node, l.params = child, ps
				return true
			}
			if l.alt == nil && len(child.handlers) > 0 {
				l.alt, l.altParams = child, ps
			}
			continue
		}

		if l.walk(child, remain, offset+1, ps) {
			return true
		}
	}
	return false
}

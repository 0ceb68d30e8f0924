package tagparse

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Name returns the component name.
func (n *Node) Name() string {
	return n.name
}

// PropsSource returns the reconstructed props expression source, or "" when
// the tag has no with clause.
func (n *Node) PropsSource() string {
	return n.propsSrc
}

// ContainerSource returns the container expression source, or "" when the
// tag has no in clause.
func (n *Node) ContainerSource() string {
	return n.containerSrc
}

// ComponentRoot returns the stored componentRoot compile option.
func (n *Node) ComponentRoot() string {
	return n.componentRoot
}

// Eval evaluates the node's expressions against the template environment.
//
// A missing with clause (or a props expression evaluating to nil) yields an
// empty props object. A missing in clause yields a nil container; the caller
// substitutes its default. A props expression that evaluates to anything but
// an object is an error.
func (n *Node) Eval(env map[string]any) (name string, props map[string]any, container any, err error) {
	if env == nil {
		env = map[string]any{}
	}

	props = map[string]any{}
	if n.props != nil {
		out, runErr := expr.Run(n.props, env)
		if runErr != nil {
			return "", nil, nil, fmt.Errorf("props expression %q: %w", n.propsSrc, runErr)
		}
		switch v := out.(type) {
		case nil:
		case map[string]any:
			props = v
		default:
			return "", nil, nil, fmt.Errorf("props expression %q evaluated to %T, want object", n.propsSrc, out)
		}
	}

	if n.container != nil {
		container, err = expr.Run(n.container, env)
		if err != nil {
			return "", nil, nil, fmt.Errorf("container expression %q: %w", n.containerSrc, err)
		}
	}

	return n.name, props, container, nil
}

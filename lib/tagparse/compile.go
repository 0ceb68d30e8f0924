package tagparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Sentinel errors surfaced during tag compilation.
var (
	ErrMissingName        = errors.New("tagparse: missing component name")
	ErrReservedName       = errors.New("tagparse: component name collides with a keyword")
	ErrUnexpectedArgument = errors.New("tagparse: unexpected argument in tag")
	ErrMissingExpression  = errors.New("tagparse: keyword without expression")
	ErrUnbalancedBraces   = errors.New("tagparse: unbalanced braces in object literal")
)

// Options carries compile-time settings from the host integration.
type Options struct {
	// ComponentRoot is accepted for compatibility with existing templates
	// and stored on the node. It is not applied to name resolution.
	ComponentRoot string
}

// Node is one compiled tag occurrence. Its prop and container expressions
// are compiled expr-lang programs; Eval runs them against the template
// environment once per render pass.
type Node struct {
	name          string
	componentRoot string
	propsSrc      string
	containerSrc  string
	props         *vm.Program
	container     *vm.Program
}

// Compile turns the ordered argument list of one tag occurrence into a Node.
//
// The first argument is the component name, quotes stripped. A bare
// identifier equal to a keyword is rejected: `react with` is unresolvably
// ambiguous, while a quoted name ("with") stays usable. Remaining arguments
// must be `with` or `in` followed by one expression each; anything else
// fails with ErrUnexpectedArgument.
func Compile(args []string, opts Options) (*Node, error) {
	if len(args) == 0 {
		return nil, ErrMissingName
	}

	name, quoted := stripQuotes(args[0])
	if name == "" {
		return nil, ErrMissingName
	}
	if !quoted && (name == KeywordWith || name == KeywordIn) {
		return nil, fmt.Errorf("%q: %w", name, ErrReservedName)
	}

	node := &Node{name: name, componentRoot: opts.ComponentRoot}

	queue := args[1:]
	for len(queue) > 0 {
		keyword := queue[0]
		queue = queue[1:]

		switch keyword {
		case KeywordWith, KeywordIn:
			src, rest, err := collectExpression(queue)
			if err != nil {
				return nil, fmt.Errorf("after %q: %w", keyword, err)
			}
			queue = rest
			if keyword == KeywordWith {
				node.propsSrc = src
			} else {
				node.containerSrc = src
			}
		default:
			return nil, fmt.Errorf("%q: %w", keyword, ErrUnexpectedArgument)
		}
	}

	var err error
	if node.propsSrc != "" {
		if node.props, err = expr.Compile(node.propsSrc); err != nil {
			return nil, fmt.Errorf("props expression %q: %w", node.propsSrc, err)
		}
	}
	if node.containerSrc != "" {
		if node.container, err = expr.Compile(node.containerSrc); err != nil {
			return nil, fmt.Errorf("container expression %q: %w", node.containerSrc, err)
		}
	}
	return node, nil
}

// collectExpression consumes one expression from the argument queue.
//
// An opening brace starts balanced-brace reconstruction: host tokenizers
// split inline object literals into many small tokens, which are
// concatenated back into a single source fragment until opening and closing
// brace counts balance. Nested literals are handled by the counters - the
// scan does not stop at the first inner close brace.
//
// Otherwise a single token is taken, absorbing dotted member access so that
// `user . props` from symbol-splitting tokenizers becomes `user.props`.
func collectExpression(queue []string) (string, []string, error) {
	if len(queue) == 0 {
		return "", nil, ErrMissingExpression
	}

	if queue[0] == "{" {
		var b strings.Builder
		opens, closes := 0, 0
		for i, tok := range queue {
			b.WriteString(tok)
			switch tok {
			case "{":
				opens++
			case "}":
				closes++
				if closes == opens {
					return b.String(), queue[i+1:], nil
				}
			}
		}
		return "", nil, fmt.Errorf("%q: %w", b.String(), ErrUnbalancedBraces)
	}

	src := queue[0]
	rest := queue[1:]
	for len(rest) >= 2 && rest[0] == "." {
		src += "." + rest[1]
		rest = rest[2:]
	}
	return src, rest, nil
}

func stripQuotes(s string) (string, bool) {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1], true
		}
	}
	return s, false
}

// Package reactpongo registers the react tag with the pongo2 template
// engine.
//
//	reg := reactmount.NewRegistry()
//	reg.MustExtend(app.Components())
//	if err := reactpongo.Register(reg); err != nil {
//	    log.Fatal(err)
//	}
//
//	tpl := pongo2.Must(pongo2.FromString(`{% react 'Header' with hdr %}`))
//	out, err := tpl.Execute(pongo2.Context{"hdr": map[string]any{"title": "Hi"}})
//
// pongo2 tag registration is engine-global, so Register binds the tag name
// to one registry for the process; use WithTagName to register additional
// registries under distinct names.
//
// pongo2's lexer has no brace tokens, so inline object literals are not
// available in pongo2 templates; pass props and containers as template
// variables instead (`with hdr`, `in wrapper`). Dotted access such as
// `with page.header` works.
package reactpongo

import (
	"context"
	"strconv"

	"github.com/flosch/pongo2/v6"

	"github.com/reactmount/reactmount"
	"github.com/reactmount/reactmount/lib/tagparse"
)

// Option configures Register.
type Option func(*options)

type options struct {
	name string
}

// WithTagName overrides the default tag name ("react").
func WithTagName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// Register binds the react tag to a registry on the pongo2 engine.
func Register(reg *reactmount.Registry, opts ...Option) error {
	o := &options{name: reactmount.DefaultTagName}
	for _, opt := range opts {
		opt(o)
	}

	return pongo2.RegisterTag(o.name, func(doc *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
		parser := tagparse.NewArgParser()
		for arguments.Remaining() > 0 {
			tok := arguments.Current()
			arguments.Consume()
			// The adapter evaluates expressions itself, so the host-side
			// pass-through signal is not needed here.
			parser.Feed(mapToken(tok))
		}

		node, err := tagparse.Compile(parser.Args(), tagparse.Options{})
		if err != nil {
			return nil, arguments.Error(err.Error(), start)
		}
		return &tagNode{reg: reg, node: node}, nil
	})
}

// mapToken folds pongo2 token classes into tagparse token classes. pongo2
// strips the quotes off string tokens; they are restored so the captured
// argument stays valid expression source.
func mapToken(tok *pongo2.Token) tagparse.Token {
	switch tok.Typ {
	case pongo2.TokenString:
		return tagparse.Token{Type: tagparse.TokenString, Val: strconv.Quote(tok.Val)}
	case pongo2.TokenIdentifier, pongo2.TokenKeyword:
		return tagparse.Token{Type: tagparse.TokenIdent, Val: tok.Val}
	case pongo2.TokenNumber:
		return tagparse.Token{Type: tagparse.TokenNumber, Val: tok.Val}
	default:
		return tagparse.Token{Type: tagparse.TokenSymbol, Val: tok.Val}
	}
}

// tagNode is one compiled react tag occurrence in a pongo2 template.
type tagNode struct {
	reg  *reactmount.Registry
	node *tagparse.Node
}

// Execute evaluates the tag against the pongo2 execution context and writes
// the mounted component markup.
func (n *tagNode) Execute(ctx *pongo2.ExecutionContext, w pongo2.TemplateWriter) *pongo2.Error {
	env := make(map[string]any, len(ctx.Public)+len(ctx.Private))
	for k, v := range ctx.Public {
		env[k] = v
	}
	// Private holds loop variables and set-tag bindings; they shadow
	// public context values.
	for k, v := range ctx.Private {
		env[k] = v
	}

	name, props, containerVal, err := n.node.Eval(env)
	if err != nil {
		return ctx.Error(err.Error(), nil)
	}
	container, err := reactmount.ContainerFromValue(containerVal)
	if err != nil {
		return ctx.Error(err.Error(), nil)
	}

	if err := n.reg.Mount(name, reactmount.Props(props), container).Render(context.Background(), w); err != nil {
		return ctx.Error(err.Error(), nil)
	}
	return nil
}

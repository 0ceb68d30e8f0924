package reactmount

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/reactmount/reactmount/lib/tagparse"
)

// DefaultTagName is the tag name registered with host engines unless
// overridden by WithTagName or a UseTag argument.
const DefaultTagName = "react"

// Tag is the descriptor handed to a host template engine's tag extension
// point. The react tag is an inline tag: it has no end tag and is not
// block-level.
//
// For each tag occurrence the host calls Parse for a fresh argument parser,
// feeds it the occurrence's token stream, and passes the resulting argument
// list to Compile. The compiled tag is then rendered once per template
// render pass.
type Tag struct {
	Name       string
	Ends       bool
	BlockLevel bool

	// Parse returns a fresh argument parser for one tag occurrence.
	Parse func() *tagparse.ArgParser

	// Compile turns the captured argument list into a renderable node.
	Compile func(args []string) (*CompiledTag, error)
}

// RenderExtension is the render-time function registered alongside the tag
// under the same name. Hosts that evaluate prop and container expressions
// themselves call it directly instead of going through CompiledTag.
type RenderExtension func(name string, props Props, container Container) templ.Component

// Engine is the extension-point contract consumed from host template
// engines: a place to hang a named tag and a render-time extension function.
// Concrete engines (or adapters for them) implement it; see adapters/pongo2
// for an engine whose native contract is bridged instead.
type Engine interface {
	SetTag(name string, tag *Tag)
	SetExtension(name string, ext RenderExtension)
}

// NewTag builds the tag descriptor bound to this registry. An empty name
// uses the registry's configured tag name.
func (reg *Registry) NewTag(name string) *Tag {
	if name == "" {
		name = reg.tagName
	}
	return &Tag{
		Name:  name,
		Parse: tagparse.NewArgParser,
		Compile: func(args []string) (*CompiledTag, error) {
			node, err := tagparse.Compile(args, tagparse.Options{ComponentRoot: reg.componentRoot})
			if err != nil {
				return nil, err
			}
			return &CompiledTag{reg: reg, node: node}, nil
		},
	}
}

// UseTag registers both the render extension and the tag on a host engine,
// under name or the registry's default tag name.
//
//	reactmount.UseTag(engine, reg)           // registers "react"
//	reactmount.UseTag(engine, reg, "widget") // custom tag name
func UseTag(engine Engine, reg *Registry, name ...string) {
	tagName := reg.tagName
	if len(name) > 0 && name[0] != "" {
		tagName = name[0]
	}
	engine.SetExtension(tagName, reg.Mount)
	engine.SetTag(tagName, reg.NewTag(tagName))
}

// CompiledTag is one compiled tag occurrence, owned by the compiled
// template. Render evaluates the prop and container expressions against the
// template environment and writes the mounted component markup.
type CompiledTag struct {
	reg  *Registry
	node *tagparse.Node
}

// Node exposes the underlying compiled node (used by host adapters).
func (t *CompiledTag) Node() *tagparse.Node {
	return t.node
}

// Render writes the tag's output for one render pass.
func (t *CompiledTag) Render(ctx context.Context, w io.Writer, env map[string]any) error {
	name, props, containerVal, err := t.node.Eval(env)
	if err != nil {
		return err
	}
	container, err := ContainerFromValue(containerVal)
	if err != nil {
		return err
	}
	return t.reg.Mount(name, Props(props), container).Render(ctx, w)
}

package reactmount

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/a-h/templ"

	"github.com/reactmount/reactmount/lib/statetoken"
)

// Props is the property bag handed to a component at render time. It is the
// evaluated form of the tag's `with` expression and is serialized onto the
// container element for client-side hydration.
type Props map[string]any

// Component produces server-rendered markup for a set of props.
//
// Components are resolved by name through the Registry at render time. The
// returned templ.Component is rendered directly into the page output, with
// no additional escaping - component output is trusted markup.
type Component interface {
	Render(ctx context.Context, props Props) templ.Component
}

// ComponentFunc adapts a plain function to the Component interface.
type ComponentFunc func(ctx context.Context, props Props) templ.Component

// Render calls f.
func (f ComponentFunc) Render(ctx context.Context, props Props) templ.Component {
	return f(ctx, props)
}

// Markup adapts a renderer that produces a raw markup string.
//
// Use this for components backed by an external renderer that returns HTML
// text rather than a templ.Component:
//
//	reg.MustExtend(map[string]reactmount.Component{
//	    "Header": reactmount.Markup(func(ctx context.Context, props reactmount.Props) string {
//	        return "<h1>" + html.EscapeString(fmt.Sprint(props["title"])) + "</h1>"
//	    }),
//	})
func Markup(render func(ctx context.Context, props Props) string) Component {
	return ComponentFunc(func(ctx context.Context, props Props) templ.Component {
		return templ.Raw(render(ctx, props))
	})
}

// Registry maps component names to components and acts as the render bridge
// between compiled templates and component output.
//
// The registry is explicit state owned by whichever part of the application
// sets up the template engine - there is no process-global registry. Extend
// and Lookup are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Component

	logger        *slog.Logger
	codec         *statetoken.Codec
	sensitive     bool
	tagName       string
	componentRoot string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for render-time diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(reg *Registry) {
		reg.logger = logger
	}
}

// WithStateKey enables the data-react-state attribute: props are additionally
// sealed into a tamper-proof token so hydration endpoints can trust
// client-echoed state. The key should be 32 bytes; shorter keys are derived.
func WithStateKey(key []byte) Option {
	return func(reg *Registry) {
		codec, err := statetoken.NewCodec(key)
		if err != nil {
			panic(fmt.Sprintf("reactmount: failed to create state codec: %v", err))
		}
		reg.codec = codec
	}
}

// WithSensitiveState switches state tokens from signed to encrypted mode.
// Use when props carry values that should be opaque to clients.
func WithSensitiveState() Option {
	return func(reg *Registry) {
		reg.sensitive = true
	}
}

// WithTagName overrides the default tag name used by UseTag and host
// adapters.
func WithTagName(name string) Option {
	return func(reg *Registry) {
		reg.tagName = name
	}
}

// WithComponentRoot sets the componentRoot compile option passed to the tag
// compiler. The value is stored on compiled nodes but not applied to name
// resolution.
func WithComponentRoot(root string) Option {
	return func(reg *Registry) {
		reg.componentRoot = root
	}
}

// NewRegistry creates an empty component registry.
func NewRegistry(opts ...Option) *Registry {
	reg := &Registry{
		components: make(map[string]Component),
		logger:     slog.Default(),
		tagName:    DefaultTagName,
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Extend merges one or more name-to-component groups into the registry.
//
// Groups merge in argument order with last-write-wins semantics for
// duplicate names. A nil group, an empty name, or a nil component fails with
// ErrInvalidArgument; groups merged before the failing one stay merged.
func (reg *Registry) Extend(groups ...map[string]Component) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for i, group := range groups {
		if group == nil {
			return fmt.Errorf("group %d is not a component mapping: %w", i, ErrInvalidArgument)
		}
		for name, comp := range group {
			if name == "" {
				return fmt.Errorf("group %d has an empty component name: %w", i, ErrInvalidArgument)
			}
			if comp == nil {
				return fmt.Errorf("component %q is nil: %w", name, ErrInvalidArgument)
			}
		}
		for name, comp := range group {
			reg.components[name] = comp
		}
	}
	return nil
}

// MustExtend is Extend returning the registry for chained registration.
// Panics on invalid arguments.
//
//	reg := reactmount.NewRegistry().
//	    MustExtend(uikit.Components()).
//	    MustExtend(app.Components())
func (reg *Registry) MustExtend(groups ...map[string]Component) *Registry {
	if err := reg.Extend(groups...); err != nil {
		panic(err)
	}
	return reg
}

// Lookup returns the component registered under name.
func (reg *Registry) Lookup(name string) (Component, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	comp, ok := reg.components[name]
	return comp, ok
}

// Names returns the registered component names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.components))
	for name := range reg.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

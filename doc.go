// Package reactmount bridges server-side template engines to React-style UI
// components: a template author invokes a component by name with a custom
// tag, and the component's server-rendered markup is spliced into the page
// wrapped in a container element carrying data attributes that a client-side
// hydration script uses to re-mount it.
//
// The tag syntax is a small mini-language embedded in the host template:
//
//	{% react 'Header' %}
//	{% react 'Header' with {title: 'Welcome'} %}
//	{% react 'Header' with page.header in {tag: 'section', class: 'masthead'} %}
//
// # Registry
//
// Components are registered explicitly on a Registry - there is no global
// state. Groups of components merge with last-write-wins semantics:
//
//	reg := reactmount.NewRegistry()
//	reg.MustExtend(uikit.Components(), map[string]reactmount.Component{
//	    "Header": headerComponent,
//	})
//
// A Component renders props to a templ.Component; Markup adapts renderers
// that produce raw HTML strings.
//
// # Mounting
//
// Mount is the render bridge: it looks the component up, renders it, and
// wraps the markup in the container element:
//
//	<div data-react-props="{&quot;title&quot;:&quot;Welcome&quot;}" data-react-component="Header">
//	  <h1>Welcome</h1>
//	</div>
//
// An unregistered name degrades gracefully: the container and its attributes
// are still emitted with an empty body, and a diagnostic naming the missing
// component goes to the registry's logger. A single bad tag never fails the
// whole page render.
//
// Lazy mounts defer the component body to the client: the container carries
// a data-react-hydrate attribute and a placeholder, and the hydration script
// mounts the real component on load, visibility, or idle.
//
// # Tag compilation
//
// lib/tagparse handles the tag argument stream: the ArgParser decides per
// token whether it belongs to the tag grammar or to the host's expression
// grammar, and Compile reassembles inline object literals that the host
// tokenizer split apart (balanced-brace scanning) into single expression
// fragments. Expressions compile to expr-lang programs once at template
// compile time and are evaluated against the template environment on each
// render.
//
// # State tokens
//
// With a state key configured, mounted containers additionally carry a
// data-react-state attribute: props sealed with msgpack + HMAC (or AES-GCM
// for sensitive registries). Hydration endpoints verify the token with
// Registry.OpenState, so client-echoed state cannot be tampered with.
//
// # Host engines
//
// Engines that expose a tag/extension registration surface implement the
// Engine interface and are wired with UseTag. Engines with their own native
// contract get an adapter; see adapters/pongo2 for a complete integration
// with the pongo2 template engine.
package reactmount

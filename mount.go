package reactmount

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Mount returns a component that renders the named registered component
// inside its container element.
//
// The emitted markup is the container start tag carrying the extra container
// attributes, data-react-props, data-react-state (when the registry has a
// state key), and data-react-component; the component's server-rendered
// markup; and the close tag:
//
//	<div data-react-props="{&quot;title&quot;:&quot;Hi&quot;}" data-react-component="Header">...</div>
//
// An unregistered name does not fail the render: the container and its
// attributes are still emitted with an empty body, and a diagnostic naming
// the missing component goes to the registry's logger.
func (reg *Registry) Mount(name string, props Props, container Container) templ.Component {
	return reg.mount(name, props, container, nil, "")
}

// Lazy returns a mounted container whose body is a placeholder instead of
// the server-rendered component. The data-react-hydrate attribute tells the
// client runtime when to mount the real component (page load, viewport
// intersection, or idle). Use for below-the-fold or non-critical components
// to keep initial server render cheap.
//
//	reg.Lazy("Comments", props, reactmount.DefaultContainer(), spinner(), reactmount.HydrateVisible)
func (reg *Registry) Lazy(name string, props Props, container Container, placeholder templ.Component, mode HydrateMode) templ.Component {
	if mode == "" {
		mode = HydrateLoad
	}
	return reg.mount(name, props, container, placeholder, mode)
}

func (reg *Registry) mount(name string, props Props, container Container, placeholder templ.Component, mode HydrateMode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if props == nil {
			props = Props{}
		}
		if container.Tag == "" {
			container.Tag = DefaultTag
		}

		encoded, err := encodeProps(props)
		if err != nil {
			return err
		}

		if err := writeOpenTag(w, name, encoded, container, reg.stateToken(name, props), mode); err != nil {
			return err
		}

		switch {
		case mode != "":
			if placeholder != nil {
				if err := placeholder.Render(ctx, w); err != nil {
					return err
				}
			}
		default:
			comp, ok := reg.Lookup(name)
			if !ok {
				reg.logger.Warn("component not registered, rendering empty container",
					"component", name,
					"hint", "register it with Registry.Extend before rendering")
				break
			}
			if err := comp.Render(ctx, props).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</"+container.Tag+">")
		return err
	})
}

// stateToken seals props when the registry has a codec. Seal failures are
// logged and the attribute is omitted rather than failing the render.
func (reg *Registry) stateToken(name string, props Props) string {
	if reg.codec == nil {
		return ""
	}
	token, err := reg.codec.Seal(props, reg.sensitive)
	if err != nil {
		reg.logger.Error("state token seal failed, omitting attribute",
			"component", name,
			"error", err)
		return ""
	}
	return token
}

func writeOpenTag(w io.Writer, name, encodedProps string, container Container, state string, mode HydrateMode) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(container.Tag)

	for _, key := range sortedAttrKeys(container.Attrs) {
		// Reserved keys were rejected by ContainerFromValue; skip them here
		// for containers built directly, so user values can never clobber
		// the hydration attributes.
		if key == "tag" || reservedAttr(key) {
			continue
		}
		b.WriteString(` ` + key + `="` + escapeAttr(container.Attrs[key]) + `"`)
	}

	b.WriteString(` ` + AttrProps + `="` + encodedProps + `"`)
	if state != "" {
		b.WriteString(` ` + AttrState + `="` + state + `"`)
	}
	if mode != "" {
		b.WriteString(` ` + AttrHydrate + `="` + string(mode) + `"`)
	}
	// The component name comes from template source, not user input, and is
	// written as-is.
	b.WriteString(` ` + AttrComponent + `="` + name + `">`)

	_, err := io.WriteString(w, b.String())
	return err
}

func sortedAttrKeys(attrs map[string]string) []string {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// encodeProps serializes props to JSON with double quotes escaped to the
// HTML entity form, ready for use inside a double-quoted attribute.
func encodeProps(props Props) (string, error) {
	data, err := json.Marshal(props)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), `"`, "&quot;"), nil
}

// DecodeProps reverses the data-react-props encoding. Hydration endpoints
// and tests use it to recover the props object from a rendered attribute
// value.
func DecodeProps(attr string) (Props, error) {
	raw := strings.ReplaceAll(attr, "&quot;", `"`)
	var props Props
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		return nil, err
	}
	return props, nil
}

func escapeAttr(val string) string {
	return strings.ReplaceAll(val, `"`, "&quot;")
}

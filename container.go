package reactmount

import "fmt"

// DefaultTag is the container element used when a tag invocation has no
// `in` clause.
const DefaultTag = "div"

// Attribute names emitted on the container element. They are reserved:
// a container object may not supply them as extra attributes.
const (
	// AttrComponent carries the component name for the hydration script.
	AttrComponent = "data-react-component"

	// AttrProps carries the JSON-serialized props, double quotes escaped
	// to &quot;.
	AttrProps = "data-react-props"

	// AttrState carries the sealed state token when the registry has a
	// state key.
	AttrState = "data-react-state"

	// AttrHydrate carries the hydration mode for lazily mounted components.
	AttrHydrate = "data-react-hydrate"
)

// Container describes the wrapper element around rendered component output.
//
// A container is either a bare element name or an element name with extra
// attributes - the two shapes a tag's `in` expression may evaluate to.
type Container struct {
	Tag   string
	Attrs map[string]string
}

// TagName builds a container from a bare element name.
func TagName(tag string) Container {
	return Container{Tag: tag}
}

// TaggedAttributes builds a container with extra attributes.
func TaggedAttributes(tag string, attrs map[string]string) Container {
	return Container{Tag: tag, Attrs: attrs}
}

// DefaultContainer returns the container used when none is specified: a
// plain div.
func DefaultContainer() Container {
	return Container{Tag: DefaultTag}
}

// reservedAttr reports whether key is one of the data attributes the mount
// emits itself.
func reservedAttr(key string) bool {
	switch key {
	case AttrComponent, AttrProps, AttrState, AttrHydrate:
		return true
	}
	return false
}

// ContainerFromValue converts an evaluated container expression into a
// Container.
//
// A nil value yields the default div. A string names the element. A map must
// carry a string `tag` key naming the element; every other key becomes an
// attribute, with non-string values formatted via fmt.Sprint. Reserved
// data-react-* keys fail with ErrReservedAttribute.
func ContainerFromValue(v any) (Container, error) {
	switch val := v.(type) {
	case nil:
		return DefaultContainer(), nil

	case Container:
		if val.Tag == "" {
			val.Tag = DefaultTag
		}
		for key := range val.Attrs {
			if reservedAttr(key) {
				return Container{}, fmt.Errorf("%q: %w", key, ErrReservedAttribute)
			}
		}
		return val, nil

	case string:
		if val == "" {
			return Container{}, fmt.Errorf("empty tag name: %w", ErrInvalidContainer)
		}
		return TagName(val), nil

	case map[string]any:
		return containerFromMap(val)

	case map[string]string:
		m := make(map[string]any, len(val))
		for key, attr := range val {
			m[key] = attr
		}
		return containerFromMap(m)

	default:
		return Container{}, fmt.Errorf("container must be a tag name or an object with a tag key, got %T: %w", v, ErrInvalidContainer)
	}
}

func containerFromMap(m map[string]any) (Container, error) {
	tagVal, ok := m["tag"]
	if !ok {
		return Container{}, fmt.Errorf("container object missing tag key: %w", ErrInvalidContainer)
	}
	tag, ok := tagVal.(string)
	if !ok || tag == "" {
		return Container{}, fmt.Errorf("container tag must be a non-empty string, got %T: %w", tagVal, ErrInvalidContainer)
	}

	attrs := make(map[string]string, len(m)-1)
	for key, val := range m {
		if key == "tag" {
			continue
		}
		if reservedAttr(key) {
			return Container{}, fmt.Errorf("%q: %w", key, ErrReservedAttribute)
		}
		attrs[key] = fmt.Sprint(val)
	}
	return TaggedAttributes(tag, attrs), nil
}

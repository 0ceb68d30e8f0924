package reactmount

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds rendered markup for assertions in tests.
type TestResult struct {
	HTML string
}

// TestMount renders a mounted component to a string.
//
//	result, err := reactmount.TestMount(reg, "Header", props, reactmount.DefaultContainer())
//	if !result.HTMLContains("<h1>") {
//	    t.Fatal("missing heading")
//	}
func TestMount(reg *Registry, name string, props Props, container Container) (*TestResult, error) {
	return renderToResult(reg.Mount(name, props, container))
}

// TestLazy renders a lazily mounted component to a string.
func TestLazy(reg *Registry, name string, props Props, container Container, placeholder templ.Component, mode HydrateMode) (*TestResult, error) {
	return renderToResult(reg.Lazy(name, props, container, placeholder, mode))
}

func renderToResult(component templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		return nil, err
	}
	return &TestResult{HTML: buf.String()}, nil
}

// HTMLContains reports whether the rendered markup contains s.
func (tr *TestResult) HTMLContains(s string) bool {
	return strings.Contains(tr.HTML, s)
}

// Attr extracts an attribute value from the rendered markup. Attribute
// values never contain a raw double quote (they are entity-escaped), so a
// plain scan to the closing quote is sufficient.
func (tr *TestResult) Attr(key string) (string, bool) {
	marker := " " + key + `="`
	i := strings.Index(tr.HTML, marker)
	if i < 0 {
		return "", false
	}
	rest := tr.HTML[i+len(marker):]
	j := strings.Index(rest, `"`)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}

// Body returns the markup between the container start and end tags.
func (tr *TestResult) Body() (string, bool) {
	start := strings.Index(tr.HTML, ">")
	end := strings.LastIndex(tr.HTML, "</")
	if start < 0 || end < 0 || end < start {
		return "", false
	}
	return tr.HTML[start+1 : end], true
}

// DecodedProps reverses the data-react-props encoding on the rendered
// container, recovering the original props object.
func (tr *TestResult) DecodedProps() (Props, error) {
	val, ok := tr.Attr(AttrProps)
	if !ok {
		return nil, fmt.Errorf("no %s attribute in %q", AttrProps, tr.HTML)
	}
	return DecodeProps(val)
}

package reactpongo

import (
	"context"
	"fmt"
	"html"
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/reactmount/reactmount"
)

// pongo2 tag registration is engine-global, so every test registers under a
// unique tag name.

func testRegistry() *reactmount.Registry {
	return reactmount.NewRegistry().MustExtend(map[string]reactmount.Component{
		"Header": reactmount.Markup(func(ctx context.Context, props reactmount.Props) string {
			return "<h1>" + html.EscapeString(fmt.Sprint(props["title"])) + "</h1>"
		}),
	})
}

func TestRegisterAndRender(t *testing.T) {
	if err := Register(testRegistry(), WithTagName("react_basic")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tpl, err := pongo2.FromString(`{% react_basic 'Header' with hdr %}`)
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	out, err := tpl.Execute(pongo2.Context{"hdr": map[string]any{"title": "Hi"}})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, want := range []string{"<div ", `data-react-component="Header"`, "<h1>Hi</h1>", "</div>"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRenderWithContainerVariable(t *testing.T) {
	if err := Register(testRegistry(), WithTagName("react_container")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tpl, err := pongo2.FromString(`{% react_container 'Header' with page.header in wrapper %}`)
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	out, err := tpl.Execute(pongo2.Context{
		"page":    map[string]any{"header": map[string]any{"title": "Nested"}},
		"wrapper": map[string]any{"tag": "section", "class": "masthead"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.HasPrefix(out, "<section ") || !strings.HasSuffix(out, "</section>") {
		t.Errorf("container not applied: %q", out)
	}
	if !strings.Contains(out, `class="masthead"`) {
		t.Errorf("container attributes missing: %q", out)
	}
	if !strings.Contains(out, "<h1>Nested</h1>") {
		t.Errorf("props expression not evaluated: %q", out)
	}
}

func TestUnknownComponentRendersEmptyContainer(t *testing.T) {
	if err := Register(testRegistry(), WithTagName("react_unknown")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tpl, err := pongo2.FromString(`{% react_unknown 'Ghost' %}`)
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	out, err := tpl.Execute(pongo2.Context{})
	if err != nil {
		t.Fatalf("unknown component must not fail the render: %v", err)
	}
	if !strings.Contains(out, `data-react-component="Ghost"`) {
		t.Errorf("container attributes missing: %q", out)
	}
	if strings.Contains(out, "<h1>") {
		t.Errorf("unexpected body for unknown component: %q", out)
	}
}

func TestMalformedTagFailsCompilation(t *testing.T) {
	if err := Register(testRegistry(), WithTagName("react_malformed")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := pongo2.FromString(`{% react_malformed 'Header' garbage %}`); err == nil {
		t.Fatal("expected template compilation to fail on unexpected argument")
	}
}

package reactmount

import "testing"

func TestTestResultAttr(t *testing.T) {
	tr := &TestResult{HTML: `<div class="panel" data-react-component="Header">x</div>`}

	if val, ok := tr.Attr("class"); !ok || val != "panel" {
		t.Errorf("Attr(class) = %q, %v", val, ok)
	}
	if val, ok := tr.Attr(AttrComponent); !ok || val != "Header" {
		t.Errorf("Attr(component) = %q, %v", val, ok)
	}
	if _, ok := tr.Attr("missing"); ok {
		t.Error("Attr found a missing attribute")
	}
}

func TestTestResultBody(t *testing.T) {
	tr := &TestResult{HTML: `<div a="1"><h1>Hi</h1></div>`}
	body, ok := tr.Body()
	if !ok || body != "<h1>Hi</h1>" {
		t.Errorf("Body() = %q, %v", body, ok)
	}
}

func TestDecodeProps(t *testing.T) {
	props, err := DecodeProps("{&quot;a&quot;:&quot;b&quot;}")
	if err != nil {
		t.Fatalf("DecodeProps failed: %v", err)
	}
	if props["a"] != "b" {
		t.Errorf("unexpected props: %v", props)
	}
}

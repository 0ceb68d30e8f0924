package reactmount

import (
	"reflect"
	"testing"
)

func TestContainerFromValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Container
	}{
		{"nil defaults to div", nil, Container{Tag: "div"}},
		{"tag name string", "section", Container{Tag: "section"}},
		{
			"object with tag and attrs",
			map[string]any{"tag": "aside", "class": "panel", "id": "nav"},
			Container{Tag: "aside", Attrs: map[string]string{"class": "panel", "id": "nav"}},
		},
		{
			"non-string attr values are formatted",
			map[string]any{"tag": "div", "data-count": 3},
			Container{Tag: "div", Attrs: map[string]string{"data-count": "3"}},
		},
		{
			"string map",
			map[string]string{"tag": "span", "class": "badge"},
			Container{Tag: "span", Attrs: map[string]string{"class": "badge"}},
		},
		{"container passes through", Container{Tag: "main"}, Container{Tag: "main"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContainerFromValue(tt.value)
			if err != nil {
				t.Fatalf("ContainerFromValue failed: %v", err)
			}
			if got.Tag != tt.want.Tag {
				t.Errorf("Tag mismatch: got %q, want %q", got.Tag, tt.want.Tag)
			}
			if len(got.Attrs) != len(tt.want.Attrs) || (len(tt.want.Attrs) > 0 && !reflect.DeepEqual(got.Attrs, tt.want.Attrs)) {
				t.Errorf("Attrs mismatch: got %v, want %v", got.Attrs, tt.want.Attrs)
			}
		})
	}
}

func TestContainerFromValueErrors(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"empty string", ""},
		{"object without tag key", map[string]any{"class": "x"}},
		{"non-string tag", map[string]any{"tag": 7}},
		{"unsupported type", 42},
		{"reserved props attr", map[string]any{"tag": "div", AttrProps: "boom"}},
		{"reserved component attr", map[string]any{"tag": "div", AttrComponent: "boom"}},
		{"reserved attr on container", Container{Tag: "div", Attrs: map[string]string{AttrState: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ContainerFromValue(tt.value); err == nil {
				t.Fatal("expected error")
			} else if !IsInvalidContainer(err) {
				t.Errorf("expected container error, got %v", err)
			}
		})
	}
}

package reactmount

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

// static returns a component that renders fixed markup regardless of props.
func static(markup string) Component {
	return Markup(func(ctx context.Context, props Props) string {
		return markup
	})
}

func TestExtendMergesGroups(t *testing.T) {
	a := map[string]Component{"Header": static("<h1/>")}
	b := map[string]Component{"Footer": static("<footer/>")}

	first := NewRegistry()
	if err := first.Extend(a, b); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	second := NewRegistry()
	if err := second.Extend(b, a); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	want := []string{"Footer", "Header"}
	if !reflect.DeepEqual(first.Names(), want) {
		t.Errorf("Names mismatch: got %v, want %v", first.Names(), want)
	}
	if !reflect.DeepEqual(first.Names(), second.Names()) {
		t.Errorf("merge order changed result on disjoint keys: %v vs %v", first.Names(), second.Names())
	}
}

func TestExtendLastWriteWins(t *testing.T) {
	old := static("old")
	replacement := static("new")

	reg := NewRegistry()
	if err := reg.Extend(
		map[string]Component{"Header": old},
		map[string]Component{"Header": replacement},
	); err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	comp, ok := reg.Lookup("Header")
	if !ok {
		t.Fatal("Header not registered")
	}
	result, err := renderToResult(comp.Render(context.Background(), nil))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if result.HTML != "new" {
		t.Errorf("later registration did not win: got %q", result.HTML)
	}
}

func TestExtendRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		groups []map[string]Component
	}{
		{"nil group", []map[string]Component{nil}},
		{"empty component name", []map[string]Component{{"": static("x")}}},
		{"nil component", []map[string]Component{{"Header": nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Extend(tt.groups...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsInvalidArgument(err) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestExtendKeepsGroupsMergedBeforeFailure(t *testing.T) {
	reg := NewRegistry()
	err := reg.Extend(
		map[string]Component{"Header": static("<h1/>")},
		nil,
	)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := reg.Lookup("Header"); !ok {
		t.Error("group merged before the failing one was rolled back")
	}
}

func TestMustExtendChains(t *testing.T) {
	reg := NewRegistry().
		MustExtend(map[string]Component{"Header": static("<h1/>")}).
		MustExtend(map[string]Component{"Footer": static("<footer/>")})

	if len(reg.Names()) != 2 {
		t.Errorf("expected 2 components, got %v", reg.Names())
	}
}

func TestMustExtendPanicsOnInvalidArgument(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewRegistry().MustExtend(nil)
}

func TestLookupMissing(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Lookup("Missing"); ok {
		t.Error("Lookup returned a component for an unregistered name")
	}
}

func TestConcurrentExtendAndLookup(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("Component%d", n)
			if err := reg.Extend(map[string]Component{name: static("x")}); err != nil {
				t.Errorf("Extend failed: %v", err)
			}
		}(i)
		go func(n int) {
			defer wg.Done()
			reg.Lookup(fmt.Sprintf("Component%d", n))
		}(i)
	}
	wg.Wait()

	if len(reg.Names()) != 8 {
		t.Errorf("expected 8 components after concurrent Extend, got %d", len(reg.Names()))
	}
}

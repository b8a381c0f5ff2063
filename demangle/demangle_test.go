package demangle

import "testing"

func TestMissingToolFallsBack(t *testing.T) {
	d := New("/nonexistent/demangler")
	if got := d.Demangle("_ZN3FooC1Ev"); got != "_ZN3FooC1Ev" {
		t.Errorf("Demangle = %q, want the raw name back", got)
	}
}

func TestEmptyName(t *testing.T) {
	d := New("")
	if got := d.Demangle(""); got != "" {
		t.Errorf("Demangle(\"\") = %q", got)
	}
}

func TestCacheIsStable(t *testing.T) {
	d := New("/nonexistent/demangler")
	first := d.Demangle("_Z3barv")
	second := d.Demangle("_Z3barv")
	if first != second {
		t.Errorf("cached result differs: %q vs %q", first, second)
	}
}

func TestDefaultToolSelection(t *testing.T) {
	d := New("")
	if d.path != DefaultTool {
		t.Errorf("path = %q, want %q", d.path, DefaultTool)
	}
}

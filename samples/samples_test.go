package samples

import (
	"strings"
	"testing"
)

func TestFixtureRegistry(t *testing.T) {
	env := Fixture()

	want := []string{
		"simple-struct",
		"linked-chain",
		"self-loop",
		"shared-leaf",
		"typed-object",
		"string-table",
	}
	names := env.Names()
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("name %d = %q, want %q", i, names[i], n)
		}
	}
}

func TestLookup(t *testing.T) {
	env := Fixture()

	d, err := env.Lookup("self-loop")
	if err != nil {
		t.Fatal(err)
	}
	if d.Addr == 0 || d.MaxDepth != defaultDepth {
		t.Errorf("dump = %+v", d)
	}

	_, err = env.Lookup("no-such-sample")
	if err == nil {
		t.Fatal("expected error for unknown sample")
	}
	if !strings.Contains(err.Error(), "available:") {
		t.Errorf("error should list available samples: %v", err)
	}
}

func TestSelect(t *testing.T) {
	env := Fixture()

	for _, sel := range []string{"", "all"} {
		dumps, err := env.Select(sel)
		if err != nil {
			t.Fatal(err)
		}
		if len(dumps) != len(env.All()) {
			t.Errorf("Select(%q) = %d dumps", sel, len(dumps))
		}
	}

	dumps, err := env.Select("typed-object")
	if err != nil {
		t.Fatal(err)
	}
	if len(dumps) != 1 || dumps[0].Name != "typed-object" {
		t.Errorf("Select(typed-object) = %+v", dumps)
	}
}

func TestHeapRecordsFixtureBlocks(t *testing.T) {
	env := Fixture()

	simple, err := env.Lookup("simple-struct")
	if err != nil {
		t.Fatal(err)
	}
	if got := env.Heap.AllocationSize(simple.Addr); got != 24 {
		t.Errorf("AllocationSize = %d, want 24", got)
	}
	if got := env.Heap.AllocationSize(simple.Addr + 4); got != 0 {
		t.Errorf("mid-block AllocationSize = %d, want 0", got)
	}
	if env.Heap.Len() == 0 {
		t.Error("heap should hold the fixture blocks")
	}
}

func TestTypedObjectDescriptorRegistered(t *testing.T) {
	env := Fixture()
	if env.Types.Len() != 1 {
		t.Fatalf("Types.Len = %d, want 1", env.Types.Len())
	}
}

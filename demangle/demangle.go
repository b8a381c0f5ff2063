// Package demangle converts mangled symbol names to display names through an
// external demangler binary. Each lookup is an independent request/response
// conversion; failures of the external tool degrade to the raw mangled name,
// never to an error the traversal has to handle.
package demangle

import (
	"os/exec"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"memgraph/process"
)

// DefaultTool is the demangler binary consulted when none is configured.
const DefaultTool = "c++filt"

const cacheSize = 4096

// Tool shells out to a c++filt-style demangler, one name per invocation,
// with an LRU cache in front so each distinct name costs one subprocess.
type Tool struct {
	path  string
	cache *lru.Cache
}

var _ process.Demangler = (*Tool)(nil)

// New creates a demangler backed by the binary at path. An empty path selects
// DefaultTool.
func New(path string) *Tool {
	if path == "" {
		path = DefaultTool
	}
	cache, _ := lru.New(cacheSize)
	return &Tool{path: path, cache: cache}
}

// Demangle returns the display form of name, or name itself when the external
// tool is unavailable or produces nothing usable.
func (t *Tool) Demangle(name string) string {
	if name == "" {
		return name
	}
	if cached, ok := t.cache.Get(name); ok {
		return cached.(string)
	}

	out, err := exec.Command(t.path, name).Output()
	demangled := strings.TrimSpace(string(out))
	if err != nil || demangled == "" {
		demangled = name
	}

	t.cache.Add(name, demangled)
	return demangled
}

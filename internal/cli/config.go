package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"memgraph/demangle"
	"memgraph/process"
	"memgraph/region"
)

// Config is the tunable surface of the tool. Every field has a working
// default; a TOML file overrides defaults and flags override the file.
type Config struct {
	// MaxDepth is the default traversal depth bound.
	MaxDepth int `toml:"max_depth"`

	// ProbeLength is the best-effort read window for regions whose true size
	// is unknowable.
	ProbeLength int `toml:"probe_length"`

	// SymbolScanLimit bounds the forward walk that sizes a symbol against
	// its next distinct neighbor.
	SymbolScanLimit int `toml:"symbol_scan_limit"`

	// Demangler is the external demangler binary.
	Demangler string `toml:"demangler"`

	// BytesPerLine is the hex dump width in node labels and terminal output.
	BytesPerLine int `toml:"bytes_per_line"`

	// LabelBytes bounds the hex prefix embedded in each node label.
	LabelBytes int `toml:"label_bytes"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:        8,
		ProbeLength:     128,
		SymbolScanLimit: 4096,
		Demangler:       demangle.DefaultTool,
		BytesPerLine:    16,
		LabelBytes:      64,
	}
}

// LoadConfig returns the defaults overlaid with the TOML file at path, when
// one is given.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// apply pushes the region tunables into their package knobs.
func (cfg Config) apply() {
	if cfg.ProbeLength > 0 {
		region.ProbeLength = process.Size(cfg.ProbeLength)
	}
	if cfg.SymbolScanLimit > 0 {
		region.SymbolScanLimit = process.Size(cfg.SymbolScanLimit)
	}
}

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxDepth != 8 {
		t.Errorf("MaxDepth = %d", cfg.MaxDepth)
	}
	if cfg.ProbeLength != 128 || cfg.SymbolScanLimit != 4096 {
		t.Errorf("region tunables = %d, %d", cfg.ProbeLength, cfg.SymbolScanLimit)
	}
	if cfg.Demangler != "c++filt" {
		t.Errorf("Demangler = %q", cfg.Demangler)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memgraph.toml")
	content := "max_depth = 3\nprobe_length = 256\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 3 || cfg.ProbeLength != 256 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// untouched keys keep their defaults
	if cfg.SymbolScanLimit != 4096 || cfg.BytesPerLine != 16 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/memgraph.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

package cli

import (
	"testing"

	"memgraph/process"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in      string
		want    process.Address
		wantErr bool
	}{
		{"0x1000", 0x1000, false},
		{"1000", 0x1000, false},
		{"0X7FFF0000", 0x7fff0000, false},
		{" 0xdeadbeef ", 0xdeadbeef, false},
		{"", 0, true},
		{"0x", 0, true},
		{"nope", 0, true},
		{"-1", 0, true},
	}

	for _, tt := range tests {
		got, err := parseAddress(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAddress(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseAddress(%q) = %s, want %s", tt.in, got.Hex(), tt.want.Hex())
		}
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format  string
		path    string
		want    string
		wantErr bool
	}{
		{"", "", "dot", false},
		{"", "out.svg", "svg", false},
		{"", "out.PNG", "png", false},
		{"", "out.txt", "dot", false},
		{"svg", "out.png", "svg", false},
		{"dot", "", "dot", false},
		{"jpeg", "", "", true},
	}

	for _, tt := range tests {
		got, err := resolveFormat(tt.format, tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveFormat(%q, %q) err = %v", tt.format, tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveFormat(%q, %q) = %q, want %q", tt.format, tt.path, got, tt.want)
		}
	}
}

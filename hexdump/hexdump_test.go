package hexdump

import (
	"strings"
	"testing"
)

func TestPlain(t *testing.T) {
	lines := Plain([]byte("ABCDEFGH"), 4, 0)
	want := []string{
		"41 42 43 44  ABCD",
		"45 46 47 48  EFGH",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPlainEmpty(t *testing.T) {
	if lines := Plain(nil, 16, 0); lines != nil {
		t.Errorf("empty input produced %q", lines)
	}
}

func TestPlainMaxLines(t *testing.T) {
	lines := Plain(make([]byte, 64), 16, 2)
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 2 plus marker", len(lines))
	}
	if lines[2] != "... 32 more bytes" {
		t.Errorf("marker = %q", lines[2])
	}
}

func TestNonPrintableRendersDot(t *testing.T) {
	lines := Plain([]byte{0x41, 0x00, 0x7F, 0x42}, 4, 0)
	if lines[0] != "41 00 7f 42  A..B" {
		t.Errorf("line = %q", lines[0])
	}
}

func TestDumpOffsets(t *testing.T) {
	out := Dump(make([]byte, 24), Options{
		BytesPerLine: 16,
		ShowOffset:   true,
		StartOffset:  0x7f0000001000,
	})
	if !strings.HasPrefix(out, "7f0000001000  ") {
		t.Errorf("first line = %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "\n7f0000001010  ") {
		t.Errorf("second offset missing:\n%s", out)
	}
}

func TestColorDimsZeroBytes(t *testing.T) {
	out := Dump([]byte{0x00, 0x41}, Options{BytesPerLine: 2, Color: true})
	if !strings.Contains(out, "\x1b[") {
		t.Error("expected ANSI escapes in colored output")
	}
	if strings.Contains(strings.SplitN(out, "  ", 2)[0], "41\x1b") {
		t.Error("nonzero byte should not be colored")
	}
}

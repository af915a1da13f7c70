package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(path, []byte("hello")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("unexpected contents: %q", string(data))
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatalf("TruncateRunes(short) = %q", got)
	}
	if got := TruncateRunes("abcdefghij", 4); got != "abcd…" {
		t.Fatalf("TruncateRunes(long) = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Basic Switch (3 cases)": "basic-switch-3-cases",
		"Case:One":               "case_one",
		"  Mixed  Spaces  ":      "mixed-spaces",
		"Name--With!!Symbols":    "name-with-symbols",
	}
	for input, expected := range cases {
		if got := Slugify(input); got != expected {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, expected)
		}
	}
}

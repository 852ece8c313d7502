package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		input    string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"Chuck Norris", 6, "Chuck…"},
		{"ñandú", 3, "ña…"},
		{"anything", 0, "anything"},
	}
	for _, tc := range testCases {
		if got := Truncate(tc.input, tc.max); got != tc.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.expected)
		}
	}
}

func TestTOMLRecoveryHelpers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	content := "[server]\nmax_limit = 12\n\n[corpus]\npath = \"jokes.txt\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("ParseTOMLWithRecovery: %v", err)
	}

	server, ok := ExtractSection(data, "server")
	if !ok {
		t.Fatal("missing server section")
	}
	if v, ok := ExtractInt64(server, "max_limit"); !ok || v != 12 {
		t.Errorf("max_limit = %d, %v", v, ok)
	}

	corpus, _ := ExtractSection(data, "corpus")
	if v, ok := ExtractString(corpus, "path"); !ok || v != "jokes.txt" {
		t.Errorf("path = %q, %v", v, ok)
	}
	if _, ok := ExtractString(corpus, "missing"); ok {
		t.Error("missing key reported present")
	}
}

func TestResolveCorpus(t *testing.T) {
	dir := t.TempDir()
	pr := &PathResolver{executableDir: dir, configDir: filepath.Join(dir, "config")}

	corpus := filepath.Join(dir, "jokes.txt")
	if err := os.WriteFile(corpus, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := pr.ResolveCorpus(corpus); got != corpus {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := pr.ResolveCorpus("jokes.txt"); got != corpus {
		t.Errorf("ResolveCorpus(jokes.txt) = %q, want %q", got, corpus)
	}
}

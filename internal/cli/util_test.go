package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.xml", "a.XML", "notes.txt", "sub/c.xml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<x/>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := collectFiles([]string{dir})
	if err != nil {
		t.Fatalf("collectFiles: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.XML"),
		filepath.Join(dir, "b.xml"),
		filepath.Join(sub, "c.xml"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files = %v, want %v", files, want)
		}
	}

	// Explicit file arguments pass through regardless of extension.
	files, err = collectFiles([]string{filepath.Join(dir, "notes.txt")})
	if err != nil || len(files) != 1 {
		t.Fatalf("files = %v, err = %v", files, err)
	}

	if _, err := collectFiles([]string{t.TempDir()}); err == nil {
		t.Error("empty directory must fail")
	}
	if _, err := collectFiles([]string{filepath.Join(dir, "missing.xml")}); err == nil {
		t.Error("missing path must fail")
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "stats.csv")
	err := writeCSV(path, []string{"char", "count"}, [][]string{
		{"a", "3"},
		{"b;x", "1"},
	}, ';')
	if err != nil {
		t.Fatalf("writeCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "char;count\na;3\n\"b;x\";1\n"
	if string(data) != want {
		t.Errorf("csv = %q, want %q", data, want)
	}
}

func TestOutputPath(t *testing.T) {
	if got := outputPath("/data/in.xml", ""); got != "/data/in.xml" {
		t.Errorf("in place = %q", got)
	}
	if got := outputPath("/data/in.xml", "/out"); got != filepath.Join("/out", "in.xml") {
		t.Errorf("redirected = %q", got)
	}
}

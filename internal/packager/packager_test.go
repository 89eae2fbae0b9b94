package packager

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestPackBundleDir(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "frontend-design")
	if err := os.MkdirAll(filepath.Join(bundle, "examples"), 0o755); err != nil {
		t.Fatal(err)
	}
	skillPath := filepath.Join(bundle, "SKILL.md")
	files := map[string]string{
		skillPath: "---\ntriggers:\n  - word: x\n---\nbody",
		filepath.Join(bundle, "examples", "demo.md"): "example",
	}
	for p, c := range files {
		if err := os.WriteFile(p, []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := Pack("frontend-design", skillPath, &buf); err != nil {
		t.Fatalf("Pack: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	want := []string{"frontend-design/SKILL.md", "frontend-design/examples/demo.md"}
	sort.Strings(want)
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Fatalf("archive entries = %v, want %v", names, want)
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	if data, _ := io.ReadAll(rc); len(data) == 0 {
		t.Fatal("archived file is empty")
	}
}

func TestPackFlatSkill(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy-ops.md")
	if err := os.WriteFile(path, []byte("---\ntriggers:\n  - word: x\n---\nbody"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Pack("deploy-ops", path, &buf); err != nil {
		t.Fatalf("Pack: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 1 || zr.File[0].Name != "deploy-ops/deploy-ops.md" {
		t.Fatalf("entries = %v", zr.File)
	}
}

func TestPackMissingSource(t *testing.T) {
	if err := Pack("ghost", "", io.Discard); err == nil {
		t.Fatal("empty source path accepted")
	}
}

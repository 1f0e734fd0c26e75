package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shubham/carve/internal/filetype"
)

func TestSaveNamesFilesDeterministically(t *testing.T) {
	dir := t.TempDir()
	ft := &filetype.FileType{
		Ext:      "bmp",
		Category: filepath.Join(dir, "images", "bmp"),
	}

	path0, err := Save(ft, []byte("first"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path0) != "bmp_00000000.bmp" {
		t.Errorf("first save name = %q, want bmp_00000000.bmp", filepath.Base(path0))
	}

	path1, err := Save(ft, []byte("second"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path1) != "bmp_00000001.bmp" {
		t.Errorf("second save name = %q, want bmp_00000001.bmp", filepath.Base(path1))
	}

	got, err := os.ReadFile(path0)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "first" {
		t.Errorf("contents = %q, want %q", got, "first")
	}
}

func TestSaveCreatesCategoryDirectory(t *testing.T) {
	dir := t.TempDir()
	ft := &filetype.FileType{Ext: "wav", Category: filepath.Join(dir, "audio", "wav")}

	if _, err := Save(ft, []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if info, err := os.Stat(ft.Category); err != nil || !info.IsDir() {
		t.Fatalf("category directory %q was not created", ft.Category)
	}
}

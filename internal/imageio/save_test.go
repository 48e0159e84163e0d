package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveResult(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.White)
		}
	}

	dir := filepath.Join(t.TempDir(), "nested", "outputs")

	saved, err := SaveResult(img, "HELLO WORLD", dir)
	if err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	// Directory must have been created.
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("output directory not created: %v", err)
	}

	for _, path := range []string{saved.ImagePath, saved.TextPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("saved file missing: %v", err)
		}
		base := filepath.Base(path)
		if !strings.HasPrefix(base, "result_") {
			t.Errorf("file name %q should start with result_", base)
		}
	}

	data, err := os.ReadFile(saved.TextPath)
	if err != nil {
		t.Fatalf("failed to read saved text: %v", err)
	}
	if string(data) != "HELLO WORLD" {
		t.Errorf("saved text: got %q, want %q", string(data), "HELLO WORLD")
	}
}

func TestSaveResult_PairedNames(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))

	saved, err := SaveResult(img, "x", t.TempDir())
	if err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	imgBase := strings.TrimSuffix(filepath.Base(saved.ImagePath), ".png")
	txtBase := strings.TrimSuffix(filepath.Base(saved.TextPath), ".txt")
	if imgBase != txtBase {
		t.Errorf("image and text names should share a timestamp: %q vs %q", imgBase, txtBase)
	}
}

func TestSaveResult_NilImage(t *testing.T) {
	if _, err := SaveResult(nil, "text", t.TempDir()); err == nil {
		t.Error("SaveResult should fail for nil image")
	}
}

package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/ironsheep/ocr-annotate-mcp/internal/config"
	"github.com/ironsheep/ocr-annotate-mcp/internal/ocr"
)

func createWhiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Tier
	}{
		{100, TierHigh},
		{80, TierHigh},
		{79.9, TierMedium},
		{50, TierMedium},
		{49.9, TierLow},
		{0, TierLow},
	}

	for _, tt := range tests {
		if got := TierFor(tt.confidence); got != tt.want {
			t.Errorf("TierFor(%v): got %v, want %v", tt.confidence, got, tt.want)
		}
	}
}

func TestTierColor(t *testing.T) {
	if TierColor(TierHigh) != config.HighConfColor {
		t.Error("high tier should use the high confidence color")
	}
	if TierColor(TierMedium) != config.MediumConfColor {
		t.Error("medium tier should use the medium confidence color")
	}
	if TierColor(TierLow) != config.LowConfColor {
		t.Error("low tier should use the low confidence color")
	}
}

func TestBoxes_DrawsTierColoredOutline(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       color.RGBA
	}{
		{"high", 95, config.HighConfColor},
		{"boundary high", 80, config.HighConfColor},
		{"medium", 65, config.MediumConfColor},
		{"low", 30, config.LowConfColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createWhiteImage(200, 100)
			words := []ocr.Word{
				{Text: "word", Confidence: tt.confidence, X: 50, Y: 40, Width: 60, Height: 20},
			}

			out := Boxes(img, words, false)

			// Top edge of the box should carry the tier color.
			if got := out.RGBAAt(80, 40); got != tt.want {
				t.Errorf("box edge color: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxes_SkipsEmptyAndSentinelWords(t *testing.T) {
	img := createWhiteImage(200, 100)
	words := []ocr.Word{
		{Text: "", Confidence: 90, X: 10, Y: 10, Width: 50, Height: 20},
		{Text: "   ", Confidence: 90, X: 10, Y: 40, Width: 50, Height: 20},
		{Text: "ghost", Confidence: -1, X: 10, Y: 70, Width: 50, Height: 20},
	}

	out := Boxes(img, words, true)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if out.RGBAAt(x, y) != white {
				t.Fatalf("pixel (%d,%d) was drawn for a skipped record", x, y)
			}
		}
	}
}

func TestBoxes_PreservesDimensionsAndOutsidePixels(t *testing.T) {
	img := createWhiteImage(300, 200)
	words := []ocr.Word{
		{Text: "hello", Confidence: 85, X: 100, Y: 100, Width: 60, Height: 20},
	}

	out := Boxes(img, words, true)

	if out.Bounds() != img.Bounds() {
		t.Errorf("bounds changed: got %v, want %v", out.Bounds(), img.Bounds())
	}

	// A far corner should be untouched.
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if out.RGBAAt(299, 199) != white {
		t.Error("pixel outside drawn regions was modified")
	}
}

func TestBoxes_ConfidenceLabelAboveBox(t *testing.T) {
	img := createWhiteImage(300, 200)
	words := []ocr.Word{
		{Text: "hello", Confidence: 92, X: 100, Y: 100, Width: 80, Height: 20},
	}

	out := Boxes(img, words, true)

	// The label background sits immediately above the box top edge in the
	// tier color.
	if got := out.RGBAAt(102, 97); got != config.HighConfColor {
		t.Errorf("label background: got %v, want %v", got, config.HighConfColor)
	}
}

func TestBoxes_NoLabelWhenDisabled(t *testing.T) {
	img := createWhiteImage(300, 200)
	words := []ocr.Word{
		{Text: "hello", Confidence: 92, X: 100, Y: 100, Width: 80, Height: 20},
	}

	out := Boxes(img, words, false)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Just above the box (beyond the outline thickness) stays white.
	if got := out.RGBAAt(102, 95); got != white {
		t.Errorf("label drawn despite showConfidence=false: %v", got)
	}
}

func TestBoxes_WordAtImageEdge(t *testing.T) {
	img := createWhiteImage(100, 50)
	words := []ocr.Word{
		// Box touching the top-left corner: label background would fall
		// outside the image and must be clipped, not panic.
		{Text: "edge", Confidence: 60, X: 0, Y: 0, Width: 40, Height: 15},
	}

	out := Boxes(img, words, true)
	if out == nil {
		t.Fatal("Boxes returned nil")
	}
}

// Package render draws recognized words back onto the source image as
// color-coded bounding boxes with optional confidence labels.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/ocr-annotate-mcp/internal/config"
	"github.com/ironsheep/ocr-annotate-mcp/internal/ocr"
)

// Tier is a word's confidence band, used only for display coloring.
type Tier int

const (
	TierLow    Tier = iota // confidence below 50
	TierMedium             // 50 to just under 80
	TierHigh               // 80 and above
)

// labelFace is the fixed small font used for confidence labels.
var labelFace = basicfont.Face7x13

// TierFor classifies a confidence score against the fixed thresholds.
func TierFor(confidence float64) Tier {
	switch {
	case confidence >= config.ConfidenceHigh:
		return TierHigh
	case confidence >= config.ConfidenceMedium:
		return TierMedium
	default:
		return TierLow
	}
}

// TierColor returns the display color for a tier.
func TierColor(tier Tier) color.RGBA {
	switch tier {
	case TierHigh:
		return config.HighConfColor
	case TierMedium:
		return config.MediumConfColor
	default:
		return config.LowConfColor
	}
}

// Boxes returns a copy of img with a rectangle drawn around every real word
// record, colored by confidence tier. Records with empty trimmed text or the
// -1 sentinel confidence are skipped.
//
// When showConfidence is true, each box also gets a filled label immediately
// above its top edge showing the confidence as an integer percentage in white
// text on the tier color. The output has the same dimensions as the input;
// pixels outside drawn regions are untouched.
func Boxes(img image.Image, words []ocr.Word, showConfidence bool) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	for _, w := range words {
		if w.Empty() {
			continue
		}

		col := TierColor(TierFor(w.Confidence))
		box := image.Rect(w.X, w.Y, w.X+w.Width, w.Y+w.Height)
		drawRectOutline(out, box, col, config.BoxThickness)

		if showConfidence {
			drawConfidenceLabel(out, w, col)
		}
	}

	return out
}

// drawRectOutline draws an unfilled rectangle of the given line thickness,
// clamped to the image bounds.
func drawRectOutline(img *image.RGBA, rect image.Rectangle, col color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		r := rect.Inset(-t) // grow outward so the box hugs the word

		for x := r.Min.X; x < r.Max.X; x++ {
			setClamped(img, x, r.Min.Y, col)
			setClamped(img, x, r.Max.Y-1, col)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setClamped(img, r.Min.X, y, col)
			setClamped(img, r.Max.X-1, y, col)
		}
	}
}

// drawConfidenceLabel draws the "NN%" label on a filled background of the
// tier color, sitting immediately above the word's box.
func drawConfidenceLabel(img *image.RGBA, w ocr.Word, col color.RGBA) {
	label := fmt.Sprintf("%.0f%%", w.Confidence)

	textWidth := font.MeasureString(labelFace, label).Ceil()
	labelHeight := labelFace.Metrics().Height.Ceil()

	bg := image.Rect(w.X, w.Y-labelHeight-4, w.X+textWidth+4, w.Y)
	draw.Draw(img, bg.Intersect(img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(config.LabelTextColor),
		Face: labelFace,
		Dot: fixed.Point26_6{
			X: fixed.I(w.X + 2),
			Y: fixed.I(w.Y - 6),
		},
	}
	d.DrawString(label)
}

// setClamped sets a pixel if it falls inside the image bounds.
func setClamped(img *image.RGBA, x, y int, col color.RGBA) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

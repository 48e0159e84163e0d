// Package preprocess implements the optional image cleanup chain applied
// before OCR. Each filter is independently switchable; the application order
// is fixed because it matters for output fidelity: denoise runs first
// (denoising an already contrast-boosted image amplifies artifacts) and
// grayscale runs last (it discards channel information the other filters
// rely on).
package preprocess

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/ocr-annotate-mcp/internal/config"
)

// denoiseWindow is the fixed median filter window size in pixels.
const denoiseWindow = 3.0

// Options selects which filters to apply. Filters whose flag is false are
// skipped entirely; with all flags false Apply returns the input unchanged.
type Options struct {
	// Denoise applies a fixed-strength spatial smoothing filter. Runs first.
	Denoise bool

	// Contrast multiplies contrast by ContrastFactor.
	Contrast bool

	// Sharpness sharpens by SharpnessFactor.
	Sharpness bool

	// Grayscale collapses the image to gray. Runs last.
	Grayscale bool

	// ContrastFactor is the contrast enhancement factor; 1.0 is identity.
	// Zero means the default (2.0).
	ContrastFactor float64

	// SharpnessFactor is the sharpness enhancement factor; 1.0 is identity.
	// Zero means the default (2.0).
	SharpnessFactor float64
}

// Apply runs the enabled filters over img in fixed order and returns the
// result. The input image is never modified; each enabled stage produces a
// new image.
func Apply(img image.Image, opts Options) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to preprocess")
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("cannot preprocess empty %dx%d image", bounds.Dx(), bounds.Dy())
	}

	contrastFactor := opts.ContrastFactor
	if contrastFactor == 0 {
		contrastFactor = config.DefaultEnhanceFactor
	}
	sharpnessFactor := opts.SharpnessFactor
	if sharpnessFactor == 0 {
		sharpnessFactor = config.DefaultEnhanceFactor
	}

	out := img

	if opts.Denoise {
		out = effect.Median(out, denoiseWindow)
	}

	if opts.Contrast {
		out = imaging.AdjustContrast(out, contrastPercentage(contrastFactor))
	}

	if opts.Sharpness && sharpnessFactor > 1.0 {
		out = imaging.Sharpen(out, sharpnessFactor-1.0)
	}

	if opts.Grayscale {
		out = imaging.Grayscale(out)
	}

	return out, nil
}

// contrastPercentage maps a multiplicative enhancement factor (1.0 identity,
// 2.0 default boost) onto the -100..100 percentage scale the imaging library
// uses.
func contrastPercentage(factor float64) float64 {
	pct := (factor - 1.0) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < -100 {
		pct = -100
	}
	return pct
}

// Package config defines the immutable lookup tables and fixed settings for
// the OCR pipeline: the language selection table, the page segmentation mode
// table, confidence thresholds, and bounding box colors.
//
// The tables are built once at package init and never mutated afterwards.
// Callers resolve a user selection (display label or raw engine code) through
// the lookup helpers rather than reading the slices by index.
package config

import (
	"image/color"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/otiai10/gosseract/v2"
)

// Language pairs a display label with its Tesseract language code.
// Multi-language codes join identifiers with "+" (e.g. "eng+jpn"), which
// Tesseract treats as "recognize using all of these".
type Language struct {
	Label string `json:"label"` // Display label shown in a selection menu
	Code  string `json:"code"`  // Tesseract language code, "+"-joined for multi-language
}

// Languages is the fixed set of selectable OCR languages, in menu order.
var Languages = []Language{
	{Label: "English", Code: "eng"},
	{Label: "Japanese", Code: "jpn"},
	{Label: "English+Japanese", Code: "eng+jpn"},
}

// PSMMode pairs a display label with a Tesseract page segmentation mode.
type PSMMode struct {
	Label string               `json:"label"` // Display label with the numeric code prefix
	Code  string               `json:"code"`  // Numeric code as a string ("3", "6", ...)
	Mode  gosseract.PageSegMode `json:"-"`
}

// PSMModes is the fixed set of selectable page segmentation modes, in menu
// order. The modes are passed through to the engine verbatim; their semantic
// effect is the engine's business.
var PSMModes = []PSMMode{
	{Label: "3: Fully automatic page segmentation (default)", Code: "3", Mode: gosseract.PSM_AUTO},
	{Label: "6: Assume a single uniform block of text", Code: "6", Mode: gosseract.PSM_SINGLE_BLOCK},
	{Label: "7: Treat the image as a single text line", Code: "7", Mode: gosseract.PSM_SINGLE_LINE},
	{Label: "8: Treat the image as a single word", Code: "8", Mode: gosseract.PSM_SINGLE_WORD},
	{Label: "11: Sparse text - find as much text as possible", Code: "11", Mode: gosseract.PSM_SPARSE_TEXT},
}

// Default settings.
const (
	// DefaultLanguage is "eng": English data ships with most Tesseract installs.
	DefaultLanguage = "eng"

	// DefaultEnhanceFactor is the multiplicative factor applied by the
	// contrast and sharpness filters. 1.0 is identity.
	DefaultEnhanceFactor = 2.0

	// DefaultOutputDir is where saved results land unless overridden.
	DefaultOutputDir = "outputs"
)

// DefaultPSM is fully automatic page segmentation.
const DefaultPSM = gosseract.PSM_AUTO

// Confidence thresholds separating the three display tiers.
const (
	ConfidenceHigh   = 80.0 // >= 80 is high confidence
	ConfidenceMedium = 50.0 // >= 50 is medium confidence
)

// SentinelConfidence is Tesseract's "no applicable confidence" marker on
// structural placeholder records. It is never a real 0% score.
const SentinelConfidence = -1.0

// BoxThickness is the bounding box line thickness in pixels.
const BoxThickness = 2

// Tier colors, parsed once from hex at init.
var (
	HighConfColor   = mustHex("#00FF00") // green
	MediumConfColor = mustHex("#FFA500") // orange
	LowConfColor    = mustHex("#FF0000") // red

	// LabelTextColor is the confidence label text color, chosen for
	// contrast against all three tier colors.
	LabelTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// LanguageCode resolves a language selection to a Tesseract code.
// The selection may be a display label ("English+Japanese") or a raw
// code ("eng+jpn"); raw codes pass through so scripted callers can skip
// the menu labels.
func LanguageCode(selection string) (string, bool) {
	for _, l := range Languages {
		if selection == l.Label || selection == l.Code {
			return l.Code, true
		}
	}
	return "", false
}

// PSM resolves a page segmentation mode selection to the engine mode.
// The selection may be a display label or the bare numeric code ("3").
func PSM(selection string) (gosseract.PageSegMode, bool) {
	for _, m := range PSMModes {
		if selection == m.Label || selection == m.Code {
			return m.Mode, true
		}
	}
	if n, err := strconv.Atoi(selection); err == nil {
		for _, m := range PSMModes {
			if gosseract.PageSegMode(n) == m.Mode {
				return m.Mode, true
			}
		}
	}
	return 0, false
}

// mustHex parses a "#RRGGBB" constant into an opaque RGBA color.
func mustHex(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("config: bad color constant " + hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

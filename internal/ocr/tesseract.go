package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/ocr-annotate-mcp/internal/config"
)

// Word is one recognized token with its location and confidence.
//
// Coordinates are pixels with origin at the image's top-left. Confidence is
// on Tesseract's native 0..100 scale; config.SentinelConfidence (-1) marks
// structural placeholder records that carry no text.
type Word struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

// Empty reports whether the record should be ignored everywhere: trimmed
// text is empty or the confidence is the -1 sentinel.
func (w Word) Empty() bool {
	return strings.TrimSpace(w.Text) == "" || w.Confidence == config.SentinelConfidence
}

// Result contains the outputs of one OCR invocation.
//
// Text and Words come from two independent engine passes over the same
// input; the engine does not guarantee identical token sets between them, and
// the adapter makes no attempt to reconcile the two.
type Result struct {
	// Text is the plain-text extraction, trimmed.
	Text string `json:"text"`

	// Words are the structured per-word records in the engine's scan order
	// (not guaranteed reading order).
	Words []Word `json:"words"`

	// AvgConfidence is the arithmetic mean over words with non-empty trimmed
	// text and a real confidence score. 0.0 when no such word exists.
	AvgConfidence float64 `json:"avg_confidence"`
}

// AvailableLanguages returns the identifiers of the language data installed
// alongside the engine.
func AvailableLanguages() ([]string, error) {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return nil, &EngineError{Op: "list languages", Err: err}
	}
	return langs, nil
}

// CheckLanguages verifies that every identifier in langCode (one or more
// codes joined by "+") has installed engine data. It returns a
// *MissingLanguageError naming the missing codes and the installed list when
// any is absent. The check runs before OCR so a misconfigured language is
// reported as such, not as an opaque engine failure.
func CheckLanguages(langCode string) error {
	installed, err := AvailableLanguages()
	if err != nil {
		return err
	}
	return checkAgainst(langCode, installed)
}

// checkAgainst is the pure part of CheckLanguages, split out for testing
// without a Tesseract install.
func checkAgainst(langCode string, installed []string) error {
	have := make(map[string]bool, len(installed))
	for _, l := range installed {
		have[l] = true
	}

	var missing []string
	for _, required := range strings.Split(langCode, "+") {
		if required == "" {
			continue
		}
		if !have[required] {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return &MissingLanguageError{Missing: missing, Installed: installed}
	}
	return nil
}

// Run performs OCR on img and returns the plain text, the per-word records,
// and the average confidence.
//
// Plain-text extraction and structured per-word extraction are two separate
// engine calls on the same image. langCode is passed as its "+"-separated
// identifiers; psm is handed to the engine verbatim. Run assumes
// CheckLanguages has already vetted langCode.
func Run(img image.Image, langCode string, psm gosseract.PageSegMode) (*Result, error) {
	if img == nil {
		return nil, ErrNoImage
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(strings.Split(langCode, "+")...); err != nil {
		return nil, &EngineError{Op: "set language", Err: err}
	}
	if err := client.SetPageSegMode(psm); err != nil {
		return nil, &EngineError{Op: "set page segmentation mode", Err: err}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, &EngineError{Op: "set image", Err: err}
	}

	text, err := client.Text()
	if err != nil {
		return nil, &EngineError{Op: "extract text", Err: err}
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, &EngineError{Op: "extract word data", Err: err}
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		words = append(words, Word{
			Text:       box.Word,
			Confidence: box.Confidence,
			X:          box.Box.Min.X,
			Y:          box.Box.Min.Y,
			Width:      box.Box.Dx(),
			Height:     box.Box.Dy(),
		})
	}

	return &Result{
		Text:          strings.TrimSpace(text),
		Words:         words,
		AvgConfidence: AverageConfidence(words),
	}, nil
}

// AverageConfidence computes the arithmetic mean confidence over the words
// that carry real text and a real score. Sentinel (-1) records and records
// with empty trimmed text are excluded; an empty set yields exactly 0.0.
func AverageConfidence(words []Word) float64 {
	var sum float64
	var n int
	for _, w := range words {
		if w.Empty() {
			continue
		}
		sum += w.Confidence
		n++
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

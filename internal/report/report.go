// Package report shapes OCR results for display: a formatted confidence
// string and a row-oriented detail table.
package report

import (
	"fmt"
	"strings"

	"github.com/ironsheep/ocr-annotate-mcp/internal/config"
	"github.com/ironsheep/ocr-annotate-mcp/internal/ocr"
)

// Row is one detail-table entry for a recognized word.
type Row struct {
	Text       string `json:"text"`
	Confidence string `json:"confidence"` // formatted, e.g. "83.5%" or "N/A"
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// FormatConfidence renders a confidence value for display: the -1 sentinel
// becomes "N/A", anything else is one decimal place with a percent sign.
func FormatConfidence(confidence float64) string {
	if confidence == config.SentinelConfidence {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", confidence)
}

// Table converts word records into display rows, one per record with
// non-empty trimmed text. Empty-text records are dropped entirely rather
// than represented as blank rows; order follows the input (the engine's scan
// order).
func Table(words []ocr.Word) []Row {
	rows := make([]Row, 0, len(words))
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		rows = append(rows, Row{
			Text:       text,
			Confidence: FormatConfidence(w.Confidence),
			X:          w.X,
			Y:          w.Y,
			Width:      w.Width,
			Height:     w.Height,
		})
	}
	return rows
}

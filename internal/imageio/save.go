package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

// SavedResult contains the paths of a persisted OCR result pair.
type SavedResult struct {
	ImagePath string `json:"image_path"` // Rendered image (PNG)
	TextPath  string `json:"text_path"`  // Extracted text (UTF-8)
}

// SaveResult writes the rendered image and extracted text to timestamp-named
// files in dir, creating the directory if it does not exist.
//
// Files are named result_YYYYMMDD_HHMMSS.png and result_YYYYMMDD_HHMMSS.txt
// so one OCR run's outputs sort together. Two runs within the same second
// overwrite each other; saving is an explicit user action, so this is
// acceptable.
func SaveResult(img image.Image, text string, dir string) (*SavedResult, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to save")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	imagePath := filepath.Join(dir, fmt.Sprintf("result_%s.png", stamp))
	textPath := filepath.Join(dir, fmt.Sprintf("result_%s.txt", stamp))

	if err := imaging.Save(img, imagePath); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	if err := os.WriteFile(textPath, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("failed to save text: %w", err)
	}

	return &SavedResult{
		ImagePath: imagePath,
		TextPath:  textPath,
	}, nil
}

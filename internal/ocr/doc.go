// Package ocr adapts the Tesseract OCR engine (via gosseract/v2) for the
// annotation pipeline.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// Multi-language recognition joins codes with "+" (e.g. "eng+jpn"); every
// joined identifier needs its own data file. CheckLanguages verifies this
// against the engine's installed list before any OCR call so a missing
// language surfaces as a MissingLanguageError with guidance rather than a
// downstream engine failure.
//
// # Invocation shape
//
// Run makes two independent engine calls on the same input: one for the plain
// text and one for structured per-word data (text, bounding box, confidence).
// Tesseract's internal passes may differ slightly between the two, so the
// outputs are not cross-validated. The column-oriented data Tesseract
// produces is converted to row-oriented Word records at this boundary; the
// rest of the pipeline never deals with parallel arrays.
//
// # Error handling
//
// All failures are explicit error values: ErrNoImage for absent input,
// *MissingLanguageError from the pre-check, *EngineError for engine call
// failures. Engine failures are deterministic given the same input and
// configuration, so nothing here retries.
package ocr

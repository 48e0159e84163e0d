package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/ironsheep/ocr-annotate-mcp/internal/config"
	"github.com/ironsheep/ocr-annotate-mcp/internal/imageio"
	"github.com/ironsheep/ocr-annotate-mcp/internal/ocr"
	"github.com/ironsheep/ocr-annotate-mcp/internal/preprocess"
	"github.com/ironsheep/ocr-annotate-mcp/internal/render"
	"github.com/ironsheep/ocr-annotate-mcp/internal/report"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "ocr_process").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// noTextPlaceholder is returned as the text output when recognition yields
// zero words; an empty result is a valid outcome, not an error.
const noTextPlaceholder = "(no text detected)"

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "ocr_process":
		return s.handleOCRProcess(args)
	case "ocr_languages":
		return s.handleOCRLanguages(args)
	case "image_preprocess":
		return s.handleImagePreprocess(args)
	case "image_info":
		return s.handleImageInfo(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === OCR Pipeline Handler ===

type ocrProcessArgs struct {
	Path           string `json:"path"`
	Language       string `json:"language"`
	PSM            string `json:"psm"`
	Grayscale      bool   `json:"grayscale"`
	Contrast       bool   `json:"contrast"`
	Sharpness      bool   `json:"sharpness"`
	Denoise        bool   `json:"denoise"`
	ShowConfidence *bool  `json:"show_confidence,omitempty"`
	SaveOutput     bool   `json:"save_output"`
	OutputDir      string `json:"output_dir"`
}

// ProcessResult is the complete outcome of one OCR pipeline run.
//
// On failure, ErrorKind names the failure class, Text carries the guidance
// message, and the image and table fields are left empty. A run that finds
// no text at all is a success with the placeholder text and an empty table.
type ProcessResult struct {
	ImageBase64        string               `json:"image_base64,omitempty"`
	MimeType           string               `json:"mime_type,omitempty"`
	Text               string               `json:"text"`
	AvgConfidence      float64              `json:"avg_confidence"`
	AvgConfidenceLabel string               `json:"avg_confidence_label"`
	Words              []report.Row         `json:"words"`
	WordCount          int                  `json:"word_count"`
	Saved              *imageio.SavedResult `json:"saved,omitempty"`
	ErrorKind          string               `json:"error_kind,omitempty"`
}

// handleOCRProcess runs the full pipeline: selection lookup, language
// availability check, preprocessing, OCR, box rendering, and tabulation.
//
// Every failure is recovered here and mapped to a readable ProcessResult;
// nothing is retried (the failures are either configuration problems needing
// user action or deterministic engine failures).
func (s *Server) handleOCRProcess(args json.RawMessage) (interface{}, error) {
	var a ocrProcessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if strings.TrimSpace(a.Path) == "" {
		return failureResult(ocr.ErrNoImage), nil
	}

	langCode := config.DefaultLanguage
	if a.Language != "" {
		code, ok := config.LanguageCode(a.Language)
		if !ok {
			return &ProcessResult{
				ErrorKind: "processing_failure",
				Text:      fmt.Sprintf("Unknown language selection %q. Use one of the entries from ocr_languages.", a.Language),
				Words:     []report.Row{},
			}, nil
		}
		langCode = code
	}

	psm := config.DefaultPSM
	if a.PSM != "" {
		mode, ok := config.PSM(a.PSM)
		if !ok {
			return &ProcessResult{
				ErrorKind: "processing_failure",
				Text:      fmt.Sprintf("Unknown page segmentation mode %q. Use one of the entries from ocr_languages.", a.PSM),
				Words:     []report.Row{},
			}, nil
		}
		psm = mode
	}

	// Language data must be verified before any OCR call so a missing
	// language surfaces as guidance, not an engine exception.
	if err := ocr.CheckLanguages(langCode); err != nil {
		return failureResult(err), nil
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return failureResult(err), nil
	}

	processed, err := preprocess.Apply(img, preprocess.Options{
		Denoise:   a.Denoise,
		Contrast:  a.Contrast,
		Sharpness: a.Sharpness,
		Grayscale: a.Grayscale,
	})
	if err != nil {
		return failureResult(err), nil
	}

	ocrResult, err := ocr.Run(processed, langCode, psm)
	if err != nil {
		return failureResult(err), nil
	}

	showConfidence := true
	if a.ShowConfidence != nil {
		showConfidence = *a.ShowConfidence
	}

	annotated := render.Boxes(processed, ocrResult.Words, showConfidence)

	imageBase64, err := encodePNGBase64(annotated)
	if err != nil {
		return failureResult(err), nil
	}

	text := ocrResult.Text
	if text == "" {
		text = noTextPlaceholder
	}

	result := &ProcessResult{
		ImageBase64:        imageBase64,
		MimeType:           "image/png",
		Text:               text,
		AvgConfidence:      ocrResult.AvgConfidence,
		AvgConfidenceLabel: report.FormatConfidence(ocrResult.AvgConfidence),
		Words:              report.Table(ocrResult.Words),
	}
	result.WordCount = len(result.Words)

	if a.SaveOutput {
		dir := a.OutputDir
		if dir == "" {
			dir = config.DefaultOutputDir
		}
		saved, err := imageio.SaveResult(annotated, ocrResult.Text, dir)
		if err != nil {
			return failureResult(err), nil
		}
		result.Saved = saved
	}

	return result, nil
}

// failureResult maps a pipeline error onto a user-readable ProcessResult.
// The rendered image and table stay empty; the message goes in the text
// output so the caller always has something actionable to show.
func failureResult(err error) *ProcessResult {
	result := &ProcessResult{Words: []report.Row{}}

	var missingErr *ocr.MissingLanguageError
	var engineErr *ocr.EngineError

	switch {
	case errors.Is(err, ocr.ErrNoImage):
		result.ErrorKind = "empty_input"
		result.Text = "No image provided. Upload an image and try again."

	case errors.As(err, &missingErr):
		result.ErrorKind = "missing_language_data"
		result.Text = fmt.Sprintf(
			"Language data not installed for: %s.\n"+
				"Installed languages: %s.\n"+
				"On Ubuntu/Debian run: sudo apt-get install tesseract-ocr-%s",
			strings.Join(missingErr.Missing, ", "),
			strings.Join(missingErr.Installed, ", "),
			missingErr.Missing[0])

	case errors.As(err, &engineErr):
		result.ErrorKind = "ocr_engine_failure"
		result.Text = fmt.Sprintf("OCR engine failed: %v", err)

	default:
		result.ErrorKind = "processing_failure"
		result.Text = fmt.Sprintf("Processing failed: %v", err)
	}

	return result
}

// encodePNGBase64 encodes an image as a base64 PNG payload.
func encodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// === Language / Mode Listing Handler ===

// LanguagesResult lists what the engine has installed alongside the fixed
// selection tables this server exposes.
type LanguagesResult struct {
	Installed []string          `json:"installed"`
	Choices   []config.Language `json:"choices"`
	PSMModes  []config.PSMMode  `json:"psm_modes"`
}

func (s *Server) handleOCRLanguages(args json.RawMessage) (interface{}, error) {
	installed, err := ocr.AvailableLanguages()
	if err != nil {
		return nil, err
	}
	return &LanguagesResult{
		Installed: installed,
		Choices:   config.Languages,
		PSMModes:  config.PSMModes,
	}, nil
}

// === Preprocessing Handler ===

type imagePreprocessArgs struct {
	Path            string  `json:"path"`
	Grayscale       bool    `json:"grayscale"`
	Contrast        bool    `json:"contrast"`
	Sharpness       bool    `json:"sharpness"`
	Denoise         bool    `json:"denoise"`
	ContrastFactor  float64 `json:"contrast_factor"`
	SharpnessFactor float64 `json:"sharpness_factor"`
}

// PreprocessResult contains the filtered image.
type PreprocessResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleImagePreprocess(args json.RawMessage) (interface{}, error) {
	var a imagePreprocessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	processed, err := preprocess.Apply(img, preprocess.Options{
		Denoise:         a.Denoise,
		Contrast:        a.Contrast,
		Sharpness:       a.Sharpness,
		Grayscale:       a.Grayscale,
		ContrastFactor:  a.ContrastFactor,
		SharpnessFactor: a.SharpnessFactor,
	})
	if err != nil {
		return nil, err
	}

	imageBase64, err := encodePNGBase64(processed)
	if err != nil {
		return nil, err
	}

	return &PreprocessResult{
		Width:       processed.Bounds().Dx(),
		Height:      processed.Bounds().Dy(),
		ImageBase64: imageBase64,
		MimeType:    "image/png",
	}, nil
}

// === Image Info Handler ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageio.Info(s.cache, a.Path)
}

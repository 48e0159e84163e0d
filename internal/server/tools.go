package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "ocr_process",
			Description: "Run OCR on an image and return the extracted text, an annotated " +
				"copy of the image with color-coded bounding boxes (green/orange/red by " +
				"confidence), the average confidence, and a per-word detail table. " +
				"Optional preprocessing filters run before recognition.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Recognition language: a label (English, Japanese, English+Japanese) or a Tesseract code like eng or eng+jpn. Default English.",
					},
					"psm": map[string]interface{}{
						"type":        "string",
						"description": "Page segmentation mode: a label from ocr_languages or a numeric code (3, 6, 7, 8, 11). Default 3 (automatic).",
					},
					"grayscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Convert to grayscale before recognition",
					},
					"contrast": map[string]interface{}{
						"type":        "boolean",
						"description": "Boost contrast before recognition",
					},
					"sharpness": map[string]interface{}{
						"type":        "boolean",
						"description": "Sharpen before recognition",
					},
					"denoise": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply denoising before recognition",
					},
					"show_confidence": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw a confidence percentage label above each box. Default true.",
						"default":     true,
					},
					"save_output": map[string]interface{}{
						"type":        "boolean",
						"description": "Save the annotated image and extracted text to disk",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for saved results. Default \"outputs\".",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "ocr_languages",
			Description: "List the Tesseract language packs installed on this machine, the " +
				"language selections this server accepts, and the supported page " +
				"segmentation modes.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name: "image_preprocess",
			Description: "Apply the OCR preprocessing filters to an image without running " +
				"recognition, returning the filtered image as base64-encoded PNG. Useful " +
				"for checking what the engine will actually see.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"grayscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Convert to grayscale",
					},
					"contrast": map[string]interface{}{
						"type":        "boolean",
						"description": "Boost contrast",
					},
					"sharpness": map[string]interface{}{
						"type":        "boolean",
						"description": "Sharpen",
					},
					"denoise": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply denoising",
					},
					"contrast_factor": map[string]interface{}{
						"type":        "number",
						"description": "Contrast enhancement factor (1.0 = unchanged). Default 2.0.",
						"default":     2.0,
					},
					"sharpness_factor": map[string]interface{}{
						"type":        "number",
						"description": "Sharpness enhancement factor (1.0 = unchanged). Default 2.0.",
						"default":     2.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the dimensions, format, and file size of an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

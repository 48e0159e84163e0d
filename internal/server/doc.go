// Package server implements the MCP (Model Context Protocol) server for OCR.
//
// This package provides a JSON-RPC 2.0 server that exposes the OCR pipeline
// through the MCP protocol. It's designed to work with Claude and other
// MCP-compatible clients, enabling AI systems to extract and verify text
// from images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - ocr_process: Full pipeline (preprocess, recognize, annotate, tabulate)
//   - ocr_languages: Installed language packs, selections, and PSM modes
//   - image_preprocess: Run the filters alone and return the result
//   - image_info: Dimensions, format, and file size
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Pipeline failures inside ocr_process (missing language data, engine
// failures, unreadable files) are NOT JSON-RPC errors: they come back as a
// normal result whose text field carries a human-readable explanation and
// whose image and table fields are empty, so a client can always show the
// user something actionable. JSON-RPC error responses are reserved for
// protocol-level problems:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

// Package server implements the MCP (Model Context Protocol) server for
// the palette tools.
//
// This package provides a JSON-RPC 2.0 server that exposes palette
// extraction and color analysis through the MCP protocol, so MCP-capable
// clients can pull color schemes out of images.
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
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get the color at a pixel
//   - image_dominant_colors: Top-N colors by frequency
//   - image_extract_palette: Background/primary/secondary/detail scheme
//   - color_convert: Hex string to structured RGBA/HSB
//
// # Image Caching
//
// Loaded images are cached by path for the lifetime of the process, so
// a load/sample/extract sequence decodes the file once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with
// code -32000 (or standard JSON-RPC codes for protocol-level problems);
// the Go error string travels in the error data field.
package server

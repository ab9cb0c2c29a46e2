package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/palette-tools-mcp/internal/colorutil"
	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_extract_palette").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the
// specified tool.
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

// executeTool dispatches tool execution to the appropriate handler.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_extract_palette":
		return s.handleImageExtractPalette(args)
	case "color_convert":
		return s.handleColorConvert(args)
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.Info(a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.Dimensions(a.Path)
}

// === Color Operation Handlers ===

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type dominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// DominantColorEntry is one color in a dominant-colors result.
type DominantColorEntry struct {
	Color      imaging.ColorResult `json:"color"`
	Count      int                 `json:"count"`
	Percentage float64             `json:"percentage"`
}

// DominantColorsResult lists colors by descending frequency.
type DominantColorsResult struct {
	Colors []DominantColorEntry `json:"colors"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	colors, err := palette.Dominant(img, a.Count)
	if err != nil {
		return nil, err
	}

	result := &DominantColorsResult{Colors: make([]DominantColorEntry, 0, len(colors))}
	for _, dc := range colors {
		result.Colors = append(result.Colors, DominantColorEntry{
			Color:      imaging.Describe(dc.Color),
			Count:      dc.Count,
			Percentage: dc.Percentage,
		})
	}
	return result, nil
}

type extractPaletteArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PaletteResult is the extracted color scheme with each slot in
// multi-format representation.
type PaletteResult struct {
	Background imaging.ColorResult `json:"background"`
	Primary    imaging.ColorResult `json:"primary"`
	Secondary  imaging.ColorResult `json:"secondary"`
	Detail     imaging.ColorResult `json:"detail"`
}

func (s *Server) handleImageExtractPalette(args json.RawMessage) (interface{}, error) {
	var a extractPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var size *palette.Size
	if a.Width > 0 || a.Height > 0 {
		size = &palette.Size{Width: a.Width, Height: a.Height}
	}

	pal, err := palette.Extract(img, size)
	if err != nil {
		return nil, err
	}

	return &PaletteResult{
		Background: imaging.Describe(pal.Background),
		Primary:    imaging.Describe(pal.Primary),
		Secondary:  imaging.Describe(pal.Secondary),
		Detail:     imaging.Describe(pal.Detail),
	}, nil
}

type colorConvertArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	result := imaging.Describe(colorutil.ParseHex(a.Hex))
	return &result, nil
}

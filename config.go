package graphics

import (
	"fmt"
	"strconv"
)

// Font describes the typeface used by Text and Entry objects.
type Font struct {
	Face  string // helvetica, arial, courier, times roman
	Size  int    // point size, 5..36
	Style string // bold, normal, italic, bold italic
}

// styleMap renders the font as CSS properties.
func (f Font) styleMap() map[string]string {
	style := map[string]string{
		"font-family": f.Face,
		"font-size":   strconv.Itoa(f.Size) + "px",
	}
	switch f.Style {
	case "bold":
		style["font-weight"] = "bold"
	case "italic":
		style["font-style"] = "italic"
	case "bold italic":
		style["font-weight"] = "bold"
		style["font-style"] = "italic"
	}
	return style
}

// Configuration option names. Each object supports a subset.
const (
	optFill    = "fill"
	optOutline = "outline"
	optWidth   = "width"
	optArrow   = "arrow"
	optText    = "text"
	optJustify = "justify"
	optFont    = "font"
)

// defaultConfig holds the default value for each option an object may
// carry. Only the subset named at construction ends up in an object's
// config table.
var defaultConfig = map[string]any{
	optFill:    "",
	optOutline: "black",
	optWidth:   1,
	optArrow:   "none",
	optText:    "",
	optJustify: "center",
	optFont:    Font{Face: "helvetica", Size: 12, Style: "normal"},
}

// Permitted values for validated options.
var (
	validArrows = map[string]bool{"first": true, "last": true, "both": true, "none": true}
	validFaces  = map[string]bool{"helvetica": true, "arial": true, "courier": true, "times roman": true}
	validStyles = map[string]bool{"bold": true, "normal": true, "italic": true, "bold italic": true}
)

const (
	minFontSize = 5
	maxFontSize = 36
)

func checkFontSize(size int) error {
	if size < minFontSize || size > maxFontSize {
		return fmt.Errorf("%w: font size %d", ErrBadOption, size)
	}
	return nil
}

// anchorMap translates justify option values to SVG text-anchor values.
var anchorMap = map[string]string{
	"left":   "start",
	"center": "middle",
	"right":  "end",
}

func textAnchor(justify string) string {
	if a, ok := anchorMap[justify]; ok {
		return a
	}
	return "middle"
}

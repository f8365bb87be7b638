package graphics

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorRGB formats r, g, b components (each 0..255) as a hex color
// string accepted by the color setters.
func ColorRGB(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

var (
	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbColorRe = regexp.MustCompile(`^rgb\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*\)$`)
)

// IsColor reports whether value is an accepted color: a CSS named color,
// a #RGB/#RRGGBB/#RRGGBBAA hex form, or rgb(r,g,b).
func IsColor(value string) bool {
	if hexColorRe.MatchString(value) || rgbColorRe.MatchString(value) {
		return true
	}
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "transparent" {
		return true
	}
	_, ok := colornames.Map[name]
	return ok
}

// checkColor validates a color option value. The empty string is
// allowed where it means "no paint" (an unfilled interior).
func checkColor(value string) error {
	if value == "" || IsColor(value) {
		return nil
	}
	return fmt.Errorf("%w: color %q", ErrBadOption, value)
}

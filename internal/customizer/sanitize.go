package customizer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color schemes.
const (
	ColorschemeLight  = "light"
	ColorschemeDark   = "dark"
	ColorschemeCustom = "custom"
)

// Page layouts.
const (
	LayoutOneColumn = "one-column"
	LayoutTwoColumn = "two-column"
)

// HeaderTextBlank hides the site title and description.
const HeaderTextBlank = "blank"

var hexColorRe = regexp.MustCompile(`^([A-Fa-f0-9]{3}){1,2}$`)

// SanitizeColorscheme falls back to the light scheme for unknown input.
func SanitizeColorscheme(in string) string {
	switch in {
	case ColorschemeLight, ColorschemeDark, ColorschemeCustom:
		return in
	}
	return ColorschemeLight
}

// SanitizePageLayout returns "" for unknown layouts.
func SanitizePageLayout(in string) string {
	switch in {
	case LayoutOneColumn, LayoutTwoColumn:
		return in
	}
	return ""
}

// AbsInt returns the absolute value of the leading integer in in, or "0".
// Values beyond the int64 range are clamped to math.MaxInt64.
func AbsInt(in string) string {
	s := strings.TrimSpace(in)
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return "0"
	}
	n, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil || n > math.MaxInt64 {
		n = math.MaxInt64
	}
	return strconv.FormatUint(n, 10)
}

// SanitizeHeaderTextColor accepts "blank" or a 3/6 digit hex color
// without the leading hash. Anything else resets to the default.
func SanitizeHeaderTextColor(in string) string {
	s := strings.TrimPrefix(strings.TrimSpace(in), "#")
	if s == HeaderTextBlank || hexColorRe.MatchString(s) {
		return s
	}
	return ""
}

// SanitizeText trims surrounding whitespace and drops control characters.
func SanitizeText(in string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(in))
}

package main

import (
	"regexp"
	"strconv"
	"strings"
)

// --- Helper Functions for Effective Styles ---

// Helper to get value from pointer or default
func getString(ptr *string, def string) string {
	if ptr != nil {
		return *ptr
	}
	return def
}
func getInt(ptr *int, def int) int {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getEffectiveStyle(defaults Style, override *StyleOverride) Style {
	if override == nil {
		return defaults
	}
	effective := defaults
	effective.TextFontFamily = getString(override.TextFontFamily, defaults.TextFontFamily)
	effective.CalendarFontFamily = getString(override.CalendarFontFamily, defaults.CalendarFontFamily)
	effective.TextFill = getString(override.TextFill, defaults.TextFill)
	effective.CalendarWeekdayFill = getString(override.CalendarWeekdayFill, defaults.CalendarWeekdayFill)
	effective.CalendarSundayFill = getString(override.CalendarSundayFill, defaults.CalendarSundayFill)
	// Sizes must stay positive, otherwise the layout collapses onto the anchor point
	if size := getInt(override.TextFontSize, defaults.TextFontSize); size > 0 {
		effective.TextFontSize = size
	}
	if size := getInt(override.TitleFontSize, defaults.TitleFontSize); size > 0 {
		effective.TitleFontSize = size
	}
	if size := getInt(override.CalendarFontSize, defaults.CalendarFontSize); size > 0 {
		effective.CalendarFontSize = size
	}
	return effective
}

// escapeXML escapes the five XML special characters for use in text content.
// Characters XML 1.0 does not allow, such as most C0 controls, are dropped.
func escapeXML(s string) string {
	return escape(s, false)
}

// escapeAttr is escapeXML for attribute values, where literal tabs and line breaks
// would be normalized to spaces by the parser.
func escapeAttr(s string) string {
	return escape(s, true)
}

func escape(s string, inAttr bool) string {
	var buf strings.Builder
	for _, r := range s {
		switch {
		case r == '&':
			buf.WriteString("&amp;")
		case r == '<':
			buf.WriteString("&lt;")
		case r == '>':
			buf.WriteString("&gt;")
		case r == '"':
			buf.WriteString("&quot;")
		case r == '\'':
			buf.WriteString("&apos;")
		case r == '\r':
			buf.WriteString("&#13;")
		case inAttr && r == '\n':
			buf.WriteString("&#10;")
		case inAttr && r == '\t':
			buf.WriteString("&#9;")
		case !isXMLChar(r):
			// dropped
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

// formatNumber renders a coordinate without trailing zeros ("192", "-180", "1440.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(positiveZero(v), 'f', -1, 64)
}

// --- File Name Derivation ---

var trailingExtension = regexp.MustCompile(`\.\w+$`)

const (
	decoratedSuffix = "-decorated"
	svgExt          = ".svg"
	pngExt          = ".png"
	jpgExt          = ".jpg"
)

// svgFileName derives the decorated SVG name from the photo name:
// "photo.jpg" becomes "photo-decorated.svg". A name without extension is returned as is.
func svgFileName(photoFileName string) string {
	return trailingExtension.ReplaceAllLiteralString(photoFileName, decoratedSuffix+svgExt)
}

// pngFileName swaps a trailing ".svg" for ".png". Other names are returned as is.
func pngFileName(svgName string) string {
	return replaceSuffix(svgName, svgExt, pngExt)
}

// jpgFileName swaps a trailing ".png" for ".jpg". Other names are returned as is.
func jpgFileName(pngName string) string {
	return replaceSuffix(pngName, pngExt, jpgExt)
}

func replaceSuffix(s, old, repl string) string {
	if !strings.HasSuffix(s, old) {
		return s
	}
	return strings.TrimSuffix(s, old) + repl
}

package main

import "fmt"

// --- Input Structs ---

// CanvasSpec is the size of the wallpaper being produced.
type CanvasSpec struct {
	Width  int
	Height int
}

func (c CanvasSpec) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", c.Width, c.Height, ErrInvalidDimensions)
	}
	return nil
}

// PhotoInfo describes one photo and the caption shown on top of it.
type PhotoInfo struct {
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Source   string `json:"source"`
	RefURL   string `json:"ref_url"`
}

// --- Style Structs ---

// Style holds the fonts, colors and sizes used for the caption and the calendar.
type Style struct {
	TextFontFamily      string `json:"text_font_family"`
	CalendarFontFamily  string `json:"calendar_font_family"`
	TextFill            string `json:"text_fill"`
	CalendarWeekdayFill string `json:"calendar_weekday_fill"`
	CalendarSundayFill  string `json:"calendar_sunday_fill"`
	TextFontSize        int    `json:"text_font_size"`
	TitleFontSize       int    `json:"title_font_size"`
	CalendarFontSize    int    `json:"calendar_font_size"`
}

// DefaultStyle returns the stock wallpaper style.
func DefaultStyle() Style {
	return Style{
		TextFontFamily:      "FranklinGothic",
		CalendarFontFamily:  "Franklin Gothic Heavy",
		TextFill:            "#FFCC11",
		CalendarWeekdayFill: "#FFCC11",
		CalendarSundayFill:  "#FF0000",
		TextFontSize:        12,
		TitleFontSize:       16,
		CalendarFontSize:    32,
	}
}

// StyleOverride allows overriding individual style properties from the settings file.
type StyleOverride struct {
	TextFontFamily      *string `json:"text_font_family,omitempty"`
	CalendarFontFamily  *string `json:"calendar_font_family,omitempty"`
	TextFill            *string `json:"text_fill,omitempty"`
	CalendarWeekdayFill *string `json:"calendar_weekday_fill,omitempty"`
	CalendarSundayFill  *string `json:"calendar_sunday_fill,omitempty"`
	TextFontSize        *int    `json:"text_font_size,omitempty"`
	TitleFontSize       *int    `json:"title_font_size,omitempty"`
	CalendarFontSize    *int    `json:"calendar_font_size,omitempty"`
}

// --- Settings Structs ---

// Settings is the on-disk configuration of the decorator.
type Settings struct {
	Dimensions  []int          `json:"dimensions"`             // [width, height]
	Rasterizer  string         `json:"rasterizer,omitempty"`   // "rsvg" (default) or "chrome"
	RsvgConvert string         `json:"rsvg_convert,omitempty"` // path to the rsvg-convert binary
	Timeout     string         `json:"timeout,omitempty"`      // e.g. "30s"; empty means no timeout
	Strict      bool           `json:"strict,omitempty"`       // fail when the rasterizer fails
	Format      string         `json:"format,omitempty"`       // "png" (default) or "jpg"
	JPEGQuality int            `json:"jpeg_quality,omitempty"` // only used with format "jpg"
	Style       *StyleOverride `json:"style,omitempty"`
}

// Canvas returns the canvas described by Dimensions.
func (s Settings) Canvas() (CanvasSpec, error) {
	if len(s.Dimensions) != 2 {
		return CanvasSpec{}, fmt.Errorf("settings: dimensions must be [width, height], got %v", s.Dimensions)
	}
	canvas := CanvasSpec{Width: s.Dimensions[0], Height: s.Dimensions[1]}
	if err := canvas.validate(); err != nil {
		return CanvasSpec{}, fmt.Errorf("settings: %w", err)
	}
	return canvas, nil
}

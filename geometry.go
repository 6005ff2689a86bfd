package main

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions is returned when a canvas or photo has a non-positive size.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Calendar grid shape: 7 day columns, 4 week rows (last week, this week, next two weeks).
const (
	daysOfTheWeek    = 7
	calendarRows     = 4
	calendarSpacing  = 1.4
	sundayColumn     = 7
	lastWeekRow      = 0
	thisWeekRow      = 1
	firstUpcomingRow = 2
)

// Fit is the result of a cover-fit computation: the uniform scale applied to the photo
// and the overflow on each side that gets cropped away.
type Fit struct {
	Scale   float64
	XOffset float64
	YOffset float64

	canvas CanvasSpec
}

// X is the horizontal position of the image node.
func (f Fit) X() float64 { return positiveZero(-f.XOffset) }

// Y is the vertical position of the image node.
func (f Fit) Y() float64 { return positiveZero(-f.YOffset) }

// Width is the rendered width of the image node.
func (f Fit) Width() float64 { return float64(f.canvas.Width) + 2*f.XOffset }

// Height is the rendered height of the image node.
func (f Fit) Height() float64 { return float64(f.canvas.Height) + 2*f.YOffset }

// coverFit scales the photo so it fills the canvas completely, preserving aspect ratio,
// and centers it so that the longer dimension is cropped symmetrically.
func coverFit(canvas CanvasSpec, photoW, photoH int) (Fit, error) {
	if err := canvas.validate(); err != nil {
		return Fit{}, err
	}
	if photoW <= 0 || photoH <= 0 {
		return Fit{}, fmt.Errorf("photo %dx%d: %w", photoW, photoH, ErrInvalidDimensions)
	}

	w, h := float64(photoW), float64(photoH)
	cw, ch := float64(canvas.Width), float64(canvas.Height)

	scale := math.Max(cw/w, ch/h)
	return Fit{
		Scale:   scale,
		XOffset: positiveZero((scale*w - cw) / 2),
		YOffset: positiveZero((scale*h - ch) / 2),
		canvas:  canvas,
	}, nil
}

// positiveZero turns -0 into 0 so it never shows up as "-0" in the markup.
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// CalendarCell is the position and color of one day in the calendar grid.
type CalendarCell struct {
	Column int // 1..7, 7 is Sunday
	Row    int // 0..3
	X, Y   int
	Fill   string
}

// calendarX returns the horizontal offset of day column i (1-based) relative to the
// calendar origin. Column 7 sits at the origin; earlier days grow leftwards.
// The conversion truncates toward zero (-268.8 becomes -268). Do not round: existing
// calendar layouts depend on these exact offsets.
func calendarX(fontSize, i int) int {
	return int(float64(fontSize*(i-sundayColumn)) * calendarSpacing)
}

// calendarY returns the vertical offset of week row j (0-based), truncated like calendarX.
func calendarY(fontSize, j int) int {
	return int(float64(fontSize*j) * calendarSpacing)
}

func calendarFill(style Style, i int) string {
	if i == sundayColumn {
		return style.CalendarSundayFill
	}
	return style.CalendarWeekdayFill
}

func calendarCell(style Style, i, j int) CalendarCell {
	return CalendarCell{
		Column: i,
		Row:    j,
		X:      calendarX(style.CalendarFontSize, i),
		Y:      calendarY(style.CalendarFontSize, j),
		Fill:   calendarFill(style, i),
	}
}

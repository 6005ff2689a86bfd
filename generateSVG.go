package main

import (
	"fmt"
)

const bold = "bold"

// Group ids used in the decorated document.
const (
	photoInfoID    = "photo_info"
	calendarID     = "calendar"
	lastWeekID     = "last_week"
	thisWeekID     = "this_week"
	nextTwoWeeksID = "next_two_weeks"
)

// buildDocument lays out the wallpaper: the photo covering the whole canvas, the caption in
// the lower left and the calendar grid in the upper right. It does no I/O.
func buildDocument(canvas CanvasSpec, style Style, photo PhotoInfo) (Document, error) {
	fit, err := coverFit(canvas, photo.Width, photo.Height)
	if err != nil {
		return Document{}, fmt.Errorf("layout %q: %w", photo.FileName, err)
	}

	svg := newNode("svg",
		attr("version", "1.1"),
		attr("xmlns", svgNamespace),
		attr("xmlns:xlink", xlinkNamespace),
		attr("width", canvas.Width),
		attr("height", canvas.Height),
	).WithChildren(
		createImage(fit, photo),
		createPhotoInfoGroup(canvas, style, photo),
		createCalendarGroup(canvas, style),
	)
	return Document{Root: svg}, nil
}

func createImage(fit Fit, photo PhotoInfo) Node {
	return newNode("image",
		attr("x", fit.X()),
		attr("y", fit.Y()),
		attr("width", fit.Width()),
		attr("height", fit.Height()),
		attr("xlink:href", photo.FileName),
	)
}

// --- Caption ---

// captionBaseline is the y coordinate of the last caption line (the URL).
func captionBaseline(canvas CanvasSpec) int {
	return 9 * canvas.Height / 10
}

func createText(canvas CanvasSpec, style Style, fontSize, y int) Node {
	return newNode("text",
		attr("font-family", style.TextFontFamily),
		attr("fill", style.TextFill),
		attr("font-size", fontSize),
		attr("x", canvas.Width/10),
		attr("y", y),
	)
}

func createTitleText(canvas CanvasSpec, style Style, photo PhotoInfo) Node {
	y := captionBaseline(canvas) - style.TitleFontSize - style.TextFontSize
	return createText(canvas, style, style.TitleFontSize, y).
		WithAttrs(attr("font-weight", bold)).
		WithText(photo.Title)
}

func createAuthorSourceText(canvas CanvasSpec, style Style, photo PhotoInfo) Node {
	y := captionBaseline(canvas) - style.TextFontSize
	return createText(canvas, style, style.TextFontSize, y).
		WithText(fmt.Sprintf("%s @ %s", photo.Author, photo.Source))
}

func createURLText(canvas CanvasSpec, style Style, photo PhotoInfo) Node {
	return createText(canvas, style, style.TextFontSize, captionBaseline(canvas)).
		WithText(photo.RefURL)
}

func createPhotoInfoGroup(canvas CanvasSpec, style Style, photo PhotoInfo) Node {
	return newNode("g", attr("id", photoInfoID)).WithChildren(
		createTitleText(canvas, style, photo),
		createAuthorSourceText(canvas, style, photo),
		createURLText(canvas, style, photo),
	)
}

// --- Calendar ---

// createCalendarDay positions one day of the grid. Day numbers are not filled in yet:
// the node only carries its position and color.
func createCalendarDay(cell CalendarCell) Node {
	return newNode("text",
		attr("fill", cell.Fill),
		attr("x", cell.X),
		attr("y", cell.Y),
	)
}

// createWeekRows builds the days of rows [first, first+count), weeks outer, days inner.
func createWeekRows(style Style, id string, first, count int) Node {
	days := make([]Node, 0, count*daysOfTheWeek)
	for j := first; j < first+count; j++ {
		for i := 1; i <= daysOfTheWeek; i++ {
			days = append(days, createCalendarDay(calendarCell(style, i, j)))
		}
	}
	return newNode("g", attr("id", id)).WithChildren(days...)
}

func createCalendarGroup(canvas CanvasSpec, style Style) Node {
	horizontalTranslation := 9 * canvas.Width / 10
	verticalTranslation := canvas.Height / 10
	return newNode("g",
		attr("id", calendarID),
		attr("transform", fmt.Sprintf("translate(%d,%d)", horizontalTranslation, verticalTranslation)),
		attr("font-family", style.CalendarFontFamily),
		attr("font-size", style.CalendarFontSize),
	).WithChildren(
		createWeekRows(style, lastWeekID, lastWeekRow, 1),
		createWeekRows(style, thisWeekID, thisWeekRow, 1),
		createWeekRows(style, nextTwoWeeksID, firstUpcomingRow, calendarRows-firstUpcomingRow),
	)
}

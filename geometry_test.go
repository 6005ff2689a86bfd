package main

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestCoverFitFillsCanvas(t *testing.T) {
	cases := []struct {
		name           string
		canvas         CanvasSpec
		photoW, photoH int
	}{
		{"landscape photo on landscape canvas", CanvasSpec{1920, 1080}, 4000, 3000},
		{"wide panorama", CanvasSpec{1920, 1080}, 6000, 1000},
		{"portrait photo", CanvasSpec{1920, 1080}, 2000, 3000},
		{"square photo", CanvasSpec{1366, 768}, 1024, 1024},
		{"tiny photo upscaled", CanvasSpec{2560, 1440}, 3, 7},
		{"exact match", CanvasSpec{800, 600}, 800, 600},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fit, err := coverFit(tc.canvas, tc.photoW, tc.photoH)
			if err != nil {
				t.Fatalf("coverFit returned error: %v", err)
			}
			w, h := float64(tc.photoW), float64(tc.photoH)
			W, H := float64(tc.canvas.Width), float64(tc.canvas.Height)

			wantScale := math.Max(W/w, H/h)
			if fit.Scale != wantScale {
				t.Errorf("scale = %v, want %v", fit.Scale, wantScale)
			}
			if got := fit.Scale*w - 2*fit.XOffset; math.Abs(got-W) > epsilon {
				t.Errorf("scale*w - 2*xOffset = %v, want %v", got, W)
			}
			if got := fit.Scale*h - 2*fit.YOffset; math.Abs(got-H) > epsilon {
				t.Errorf("scale*h - 2*yOffset = %v, want %v", got, H)
			}
			if fit.XOffset < -epsilon || fit.YOffset < -epsilon {
				t.Errorf("offsets must not be negative (letterboxing): x=%v y=%v", fit.XOffset, fit.YOffset)
			}
			if fit.XOffset > epsilon && fit.YOffset > epsilon {
				t.Errorf("only one dimension may be cropped: x=%v y=%v", fit.XOffset, fit.YOffset)
			}
			// The image node keeps the photo's aspect ratio.
			if got, want := fit.Width()/fit.Height(), w/h; math.Abs(got-want) > 1e-6 {
				t.Errorf("aspect ratio = %v, want %v", got, want)
			}
		})
	}
}

func TestCoverFitCropsVertically(t *testing.T) {
	fit, err := coverFit(CanvasSpec{1920, 1080}, 4000, 3000)
	if err != nil {
		t.Fatalf("coverFit returned error: %v", err)
	}
	if math.Abs(fit.Scale-0.48) > epsilon {
		t.Errorf("scale = %v, want 0.48", fit.Scale)
	}
	if fit.XOffset != 0 {
		t.Errorf("xOffset = %v, want 0", fit.XOffset)
	}
	if math.Abs(fit.YOffset-180) > epsilon {
		t.Errorf("yOffset = %v, want 180", fit.YOffset)
	}
	if fit.X() != 0 || math.Signbit(fit.X()) {
		t.Errorf("image x = %v, want +0", fit.X())
	}
	if math.Abs(fit.Y()+180) > epsilon {
		t.Errorf("image y = %v, want -180", fit.Y())
	}
	if math.Abs(fit.Width()-1920) > epsilon || math.Abs(fit.Height()-1440) > epsilon {
		t.Errorf("image size = %vx%v, want 1920x1440", fit.Width(), fit.Height())
	}
}

func TestCoverFitRejectsInvalidDimensions(t *testing.T) {
	cases := []struct {
		name           string
		canvas         CanvasSpec
		photoW, photoH int
	}{
		{"zero photo width", CanvasSpec{1920, 1080}, 0, 3000},
		{"zero photo height", CanvasSpec{1920, 1080}, 4000, 0},
		{"negative photo size", CanvasSpec{1920, 1080}, -4, 3},
		{"missing canvas", CanvasSpec{}, 4000, 3000},
		{"zero canvas height", CanvasSpec{1920, 0}, 4000, 3000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coverFit(tc.canvas, tc.photoW, tc.photoH)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestCalendarCoordinates(t *testing.T) {
	wantX := map[int]int{1: -268, 2: -224, 3: -179, 4: -134, 5: -89, 6: -44, 7: 0}
	for i, want := range wantX {
		if got := calendarX(32, i); got != want {
			t.Errorf("calendarX(32, %d) = %d, want %d", i, got, want)
		}
	}
	wantY := []int{0, 44, 89, 134}
	for j, want := range wantY {
		if got := calendarY(32, j); got != want {
			t.Errorf("calendarY(32, %d) = %d, want %d", j, got, want)
		}
	}
}

func TestCalendarCellIsPure(t *testing.T) {
	style := DefaultStyle()
	for j := 0; j < calendarRows; j++ {
		for i := 1; i <= daysOfTheWeek; i++ {
			first := calendarCell(style, i, j)
			second := calendarCell(style, i, j)
			if first != second {
				t.Errorf("calendarCell(%d, %d) not deterministic: %+v vs %+v", i, j, first, second)
			}
			// x depends only on the column, y only on the row
			if first.X != calendarCell(style, i, 0).X {
				t.Errorf("x of column %d changes with row %d", i, j)
			}
			if first.Y != calendarCell(style, 1, j).Y {
				t.Errorf("y of row %d changes with column %d", j, i)
			}
		}
	}
}

func TestCalendarFillSundayOnly(t *testing.T) {
	style := DefaultStyle()
	style.CalendarWeekdayFill = "#111111"
	style.CalendarSundayFill = "#222222"
	for i := 1; i <= daysOfTheWeek; i++ {
		got := calendarFill(style, i)
		isSunday := got == style.CalendarSundayFill
		if isSunday != (i == 7) {
			t.Errorf("calendarFill(%d) = %s", i, got)
		}
	}
}

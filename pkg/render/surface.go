// Package render defines the drawing surface interface effects render
// into, plus the two implementations shipped with the pack: an Ebitengine
// backend for the live preview tool and a call recorder for tests.
//
// The host framework owns compositing, scheduling and file output; effects
// only ever see this primitive surface.
package render

// Point is a 2D position in surface pixel coordinates.
type Point struct {
	X, Y float64
}

// Surface is the opaque drawing target handed to an effect for one frame.
// Colors are "#rrggbb" strings; SetAlpha scales the opacity of subsequent
// draw calls (it is per-surface state, reset by the host between layers).
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (width, height float64)

	// SetAlpha sets the opacity multiplier in [0, 1] for subsequent calls.
	SetAlpha(alpha float64)

	// StrokeLine draws a line segment of the given stroke width.
	StrokeLine(x0, y0, x1, y1, width float64, hexColor string)

	// StrokeCircle outlines a circle (a "ring").
	StrokeCircle(cx, cy, r, width float64, hexColor string)

	// FillCircle draws a filled disc.
	FillCircle(cx, cy, r float64, hexColor string)

	// StrokePolygon outlines a closed polygon.
	StrokePolygon(pts []Point, width float64, hexColor string)

	// FillPolygon fills a convex closed polygon.
	FillPolygon(pts []Point, hexColor string)
}

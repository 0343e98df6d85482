package mot

import (
	"image"
)

// Rectangle is a bounding box in top-left-width-height (tlwh) form.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a tlwh rectangle.
func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// NewRectFrom converts an integer image rectangle.
func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X:      float64(rect.Min.X),
		Y:      float64(rect.Min.Y),
		Width:  float64(rect.Dx()),
		Height: float64(rect.Dy()),
	}
}

// NewRectFromXYWH creates a rectangle from center-width-height form.
func NewRectFromXYWH(cx, cy, width, height float64) Rectangle {
	return Rectangle{
		X:      cx - width/2.0,
		Y:      cy - height/2.0,
		Width:  width,
		Height: height,
	}
}

// NewRectFromMeasurement is NewRectFromXYWH for a filter measurement.
func NewRectFromMeasurement(m Measurement) Rectangle {
	return NewRectFromXYWH(m[0], m[1], m[2], m[3])
}

// Center returns rectangle's center
func (r Rectangle) Center() Point {
	return Point{
		X: r.X + r.Width/2.0,
		Y: r.Y + r.Height/2.0,
	}
}

// Area returns width*height
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Measurement returns the rectangle in center-width-height form, as consumed by KalmanFilter.
func (r Rectangle) Measurement() Measurement {
	c := r.Center()
	return Measurement{c.X, c.Y, r.Width, r.Height}
}

// Point is a point on image plane
type Point struct {
	X float64
	Y float64
}

// NewPoint creates Point from coordinates
func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// NewPointFrom converts image.Point to Point
func NewPointFrom(point image.Point) Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

package document

// PointF is a point in page space.
type PointF struct {
	X float64
	Y float64
}

// RectF is an axis-aligned rectangle in page space. The zero value (empty
// rectangle) stands for "whole page" wherever a viewport region is expected.
type RectF struct {
	X  float64
	Y  float64
	Dx float64
	Dy float64
}

// RectFromPoint wraps a point into a zero-size rectangle.
func RectFromPoint(p PointF) RectF {
	return RectF{X: p.X, Y: p.Y}
}

func (r RectF) IsEmpty() bool {
	return r.Dx == 0 || r.Dy == 0
}

// TL returns the top-left corner.
func (r RectF) TL() PointF {
	return PointF{X: r.X, Y: r.Y}
}

package engine

import (
	"docview/document"
)

// affine matrix in the usual 2x3 layout:
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
type matrix struct {
	a, b, c, d, tx, ty float64
}

func (m matrix) apply(p document.PointF) document.PointF {
	return document.PointF{
		X: m.a*p.X + m.c*p.Y + m.tx,
		Y: m.b*p.X + m.d*p.Y + m.ty,
	}
}

func (m matrix) invert() matrix {
	det := m.a*m.d - m.b*m.c
	if det == 0 {
		// this should never happen
		panic("engine: singular view matrix")
	}
	inv := matrix{
		a: m.d / det,
		b: -m.b / det,
		c: -m.c / det,
		d: m.a / det,
	}
	inv.tx = -(inv.a*m.tx + inv.c*m.ty)
	inv.ty = -(inv.b*m.tx + inv.d*m.ty)
	return inv
}

// viewMatrix maps page space to view space: rotate the page by rotation
// degrees clockwise, shift the rotated page back into the positive
// quadrant, then scale by zoom.
func viewMatrix(mbox document.RectF, zoom float64, rotation int) matrix {
	rotation = ((rotation % 360) + 360) % 360
	var sin, cos float64
	switch rotation {
	case 90:
		sin, cos = 1, 0
	case 180:
		sin, cos = 0, -1
	case 270:
		sin, cos = -1, 0
	default:
		sin, cos = 0, 1
	}
	m := matrix{a: cos, b: sin, c: -sin, d: cos}

	switch rotation {
	case 90:
		m.tx = mbox.Y + mbox.Dy
	case 180:
		m.tx = mbox.X + mbox.Dx
		m.ty = mbox.Y + mbox.Dy
	case 270:
		m.ty = mbox.X + mbox.Dx
	}

	if zoom <= 0 {
		zoom = 1
	}
	m.a *= zoom
	m.b *= zoom
	m.c *= zoom
	m.d *= zoom
	m.tx *= zoom
	m.ty *= zoom
	return m
}

// Transform maps a rectangle between page space and view space for the
// given zoom and rotation. Backends with their own coordinate systems
// override this.
func (b *Base) Transform(r document.RectF, pageNo int, zoom float64, rotation int, inverse bool) document.RectF {
	m := viewMatrix(b.PageMediabox(pageNo), zoom, rotation)
	if inverse {
		m = m.invert()
	}
	p1 := m.apply(document.PointF{X: r.X, Y: r.Y})
	p2 := m.apply(document.PointF{X: r.X + r.Dx, Y: r.Y + r.Dy})
	res := document.RectF{
		X:  min(p1.X, p2.X),
		Y:  min(p1.Y, p2.Y),
		Dx: max(p1.X, p2.X) - min(p1.X, p2.X),
		Dy: max(p1.Y, p2.Y) - min(p1.Y, p2.Y),
	}
	return res
}

// TransformPoint derives a point transform from the rectangle form: the
// point is wrapped into a zero-size rectangle and the transformed top-left
// is taken. Backends only ever implement the rectangle form.
func TransformPoint(e Engine, p document.PointF, pageNo int, zoom float64, rotation int, inverse bool) document.PointF {
	r := e.Transform(document.RectFromPoint(p), pageNo, zoom, rotation, inverse)
	return r.TL()
}

package storyview

import "github.com/hajimehoshi/ebiten/v2"

// Transform places a page in viewport coordinates. The page rectangle
// (0,0)-(Width,Height) is scaled about its top-left corner, then translated
// by (X, Y). RotateY is the cube angle in radians; it is already reflected in
// ScaleX and is kept for renderers that can draw real perspective.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	RotateY        float64
}

// IdentityTransform is the transform of the centred, settled page.
var IdentityTransform = Transform{ScaleX: 1, ScaleY: 1}

// Matrix returns the affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t Transform) Matrix() [6]float64 {
	return [6]float64{t.ScaleX, 0, 0, t.ScaleY, t.X, t.Y}
}

// Then returns the transform that applies t first and then parent.
func (t Transform) Then(parent [6]float64) [6]float64 {
	return multiplyAffine(parent, t.Matrix())
}

// GeoM converts an [a, b, c, d, tx, ty] matrix to an ebiten.GeoM. Scale a
// 1x1 source to the page size first, then concatenate this.
func GeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Visible reports whether any part of the transformed page intersects the
// viewport of the given layout.
func (t Transform) Visible(page Layout) bool {
	m := t.Matrix()
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, page.Width, page.Height)
	if x1 <= x0 || y1 <= y0 {
		return false
	}
	return x0 < page.Width && x1 > 0 && y0 < page.Height && y1 > 0
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// translateMatrix returns a pure translation matrix.
func translateMatrix(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

package pinchzoom

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
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

// invertAffine computes the inverse of a 2D affine matrix.
// ok is false if the matrix is singular (determinant ≈ 0), in which case the
// identity matrix is returned.
func invertAffine(m [6]float64) (inv [6]float64, ok bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// RectTransform is an anchored rectangle inside a parent rectangle.
//
// The rectangle's size is the parent's size scaled by (AnchorMax-AnchorMin)
// plus SizeDelta. Pivot is the normalized point inside the rectangle that
// AnchoredPosition places, measured from the anchor reference point (the
// anchors interpolated by the pivot). Scale is applied around the pivot.
// A RectTransform without a Parent sits in world space.
type RectTransform struct {
	Parent *RectTransform

	AnchorMin Vec2
	AnchorMax Vec2
	Pivot     Vec2

	AnchoredPosition Vec2
	SizeDelta        Vec2
	Scale            Vec3
}

// NewRectTransform creates a w x h rectangle with centered anchors and pivot
// and identity scale.
func NewRectTransform(w, h float64) *RectTransform {
	return &RectTransform{
		AnchorMin: Vec2{0.5, 0.5},
		AnchorMax: Vec2{0.5, 0.5},
		Pivot:     Vec2{0.5, 0.5},
		SizeDelta: Vec2{w, h},
		Scale:     Vec3One,
	}
}

func (r *RectTransform) parentRect() Rect {
	if r.Parent == nil {
		return Rect{}
	}
	return r.Parent.Rect()
}

// Size returns the unscaled width and height.
func (r *RectTransform) Size() Vec2 {
	p := r.parentRect()
	return Vec2{
		X: p.Width*(r.AnchorMax.X-r.AnchorMin.X) + r.SizeDelta.X,
		Y: p.Height*(r.AnchorMax.Y-r.AnchorMin.Y) + r.SizeDelta.Y,
	}
}

// Rect returns the unscaled rectangle in local space, where the pivot is the
// origin.
func (r *RectTransform) Rect() Rect {
	s := r.Size()
	return Rect{X: -r.Pivot.X * s.X, Y: -r.Pivot.Y * s.Y, Width: s.X, Height: s.Y}
}

func (r *RectTransform) anchorReference() Vec2 {
	p := r.parentRect()
	ref := lerp2(r.AnchorMin, r.AnchorMax, r.Pivot)
	return Vec2{p.X + p.Width*ref.X, p.Y + p.Height*ref.Y}
}

// LocalPosition returns the pivot's position in the parent's local space.
func (r *RectTransform) LocalPosition() Vec2 {
	return r.anchorReference().Add(r.AnchoredPosition)
}

// SetLocalPosition moves the rectangle so that its pivot sits at p in the
// parent's local space, keeping the current anchors and pivot.
func (r *RectTransform) SetLocalPosition(p Vec2) {
	r.AnchoredPosition = p.Sub(r.anchorReference())
}

// localMatrix maps local space into the parent's local space.
func (r *RectTransform) localMatrix() [6]float64 {
	lp := r.LocalPosition()
	return [6]float64{r.Scale.X, 0, 0, r.Scale.Y, lp.X, lp.Y}
}

// WorldMatrix maps local space into world space.
func (r *RectTransform) WorldMatrix() [6]float64 {
	m := r.localMatrix()
	if r.Parent != nil {
		m = multiplyAffine(r.Parent.WorldMatrix(), m)
	}
	return m
}

// LocalToWorld converts a local-space point to world space.
func (r *RectTransform) LocalToWorld(p Vec2) Vec2 {
	x, y := transformPoint(r.WorldMatrix(), p.X, p.Y)
	return Vec2{x, y}
}

// WorldToLocal converts a world-space point to local space. ok is false when
// the transform is degenerate (a zero scale axis).
func (r *RectTransform) WorldToLocal(p Vec2) (local Vec2, ok bool) {
	inv, ok := invertAffine(r.WorldMatrix())
	if !ok {
		return Vec2{}, false
	}
	x, y := transformPoint(inv, p.X, p.Y)
	return Vec2{x, y}, true
}

// ScreenPointToLocalPoint projects a screen point through cam into local
// space. ok is false when the transform is degenerate or the point falls
// outside Rect. A nil cam means screen space equals world space.
func (r *RectTransform) ScreenPointToLocalPoint(screen Vec2, cam *Camera) (local Vec2, ok bool) {
	world := screen
	if cam != nil {
		world.X, world.Y = cam.ScreenToWorld(screen.X, screen.Y)
	}
	local, ok = r.WorldToLocal(world)
	if !ok {
		return Vec2{}, false
	}
	return local, r.Rect().Contains(local.X, local.Y)
}

// WorldBounds returns the axis-aligned bounding rect of the scaled rectangle
// in world space.
func (r *RectTransform) WorldBounds() Rect {
	rc := r.Rect()
	m := r.WorldMatrix()
	x0, y0 := transformPoint(m, rc.X, rc.Y)
	x1, y1 := transformPoint(m, rc.X+rc.Width, rc.Y+rc.Height)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

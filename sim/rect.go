package sim

// Rect is an axis-aligned box in world coordinates. Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports strict overlap; boxes that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

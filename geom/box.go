package geom

// Box2 is an axis-aligned bounding rectangle, used as the envelope for
// spatial-index queries (component C) and for polygon/element overlap
// pruning (component H).
type Box2 struct {
	Min, Max V2
}

// BoundingBox returns the axis-aligned envelope of a point set.
func BoundingBox(pts V2Set) Box2 {
	return Box2{Min: pts.Min(), Max: pts.Max()}
}

// Size returns the (width, height) of the box.
func (b Box2) Size() V2 {
	return V2{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y}
}

// Center returns the box's center point.
func (b Box2) Center() V2 {
	return V2{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Intersects reports whether b and o share any area (touching counts as
// intersecting, matching the envelope-query contract of spec.md §4.3).
func (b Box2) Intersects(o Box2) bool {
	if b.Max.X < o.Min.X || o.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y {
		return false
	}
	return true
}

// Contains reports whether p lies inside or on the boundary of b.
func (b Box2) Contains(p V2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Union returns the smallest box containing both b and o.
func (b Box2) Union(o Box2) Box2 {
	u := b
	if o.Min.X < u.Min.X {
		u.Min.X = o.Min.X
	}
	if o.Min.Y < u.Min.Y {
		u.Min.Y = o.Min.Y
	}
	if o.Max.X > u.Max.X {
		u.Max.X = o.Max.X
	}
	if o.Max.Y > u.Max.Y {
		u.Max.Y = o.Max.Y
	}
	return u
}

package geometry

import "iter"

// Polyline is a sequence of vertices connected by line segments.
type Polyline []Point

// Segments returns an iterator over the polyline's line segments. A polyline
// with fewer than two vertices has no segments.
func (p Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(Line{p[i-1], p[i]}) {
				return
			}
		}
	}
}

// Length returns the sum of the lengths of the polyline's segments.
func (p Polyline) Length() float64 {
	var length float64
	for seg := range p.Segments() {
		length += seg.Length()
	}
	return length
}

// BoundingBox returns the smallest axis-aligned rectangle containing every
// vertex. The zero Rect is returned for an empty polyline.
func (p Polyline) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Reverse returns a new polyline with the vertices in reverse order.
func (p Polyline) Reverse() Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

func (p Polyline) Translate(v Vec2) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

func (p Polyline) RotateAround(center Point, angle float64) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.RotateAround(center, angle)
	}
	return out
}

func (p Polyline) ScaleAbout(center Point, factor float64) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.ScaleAbout(center, factor)
	}
	return out
}

// PlaceIn converts a polyline expressed in the local coordinates of frame to
// global coordinates.
func (p Polyline) PlaceIn(frame Frame) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = frame.PlacePoint(pt)
	}
	return out
}

// RelativeTo converts a polyline expressed in global coordinates to the local
// coordinates of frame.
func (p Polyline) RelativeTo(frame Frame) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = frame.RelativePoint(pt)
	}
	return out
}

package geom

// Extent is an axis-aligned bounding envelope.
type Extent struct {
	MinX, MaxX, MinY, MaxY float64
}

// Merge folds the other extent into e, coordinate-wise.
func (e *Extent) Merge(other Extent) {
	if other.MinX < e.MinX {
		e.MinX = other.MinX
	}
	if other.MaxX > e.MaxX {
		e.MaxX = other.MaxX
	}
	if other.MinY < e.MinY {
		e.MinY = other.MinY
	}
	if other.MaxY > e.MaxY {
		e.MaxY = other.MaxY
	}
}

// MergePoint grows the extent to include the point (x, y).
func (e *Extent) MergePoint(x, y float64) {
	e.Merge(Extent{MinX: x, MaxX: x, MinY: y, MaxY: y})
}

// Swapped returns the extent with its X and Y axes exchanged.
func (e Extent) Swapped() Extent {
	return Extent{MinX: e.MinY, MaxX: e.MaxY, MinY: e.MinX, MaxY: e.MaxX}
}

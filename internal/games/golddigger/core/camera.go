package core

// CameraOffset returns the scroll offset on one axis that centres the avatar,
// clamped so the view never leaves the world. All values are in display units
// (pixels, terminal columns or rows).
func CameraOffset(avatarCell, cellSize, viewport, worldCells int) int {
	off := avatarCell*cellSize - viewport/2
	off = min(off, worldCells*cellSize-viewport)
	return max(off, 0)
}

// VisibleRange returns the half-open cell range [start, end) on one axis that
// overlaps the viewport, with one cell of margin on each side.
func VisibleRange(offset, cellSize, viewport, worldCells int) (start, end int) {
	start = max(0, offset/cellSize-1)
	end = min(worldCells, (offset+viewport)/cellSize+1)
	return start, end
}

// View is the camera placement for one frame.
type View struct {
	OffsetX, OffsetY int // Scroll offset in display units
	MinX, MaxX       int // Visible columns, half-open
	MinY, MaxY       int // Visible rows, half-open
	CellW, CellH     int
}

// NewView places the camera over a world of the given size.
func NewView(avatar Coord, cellW, cellH, viewW, viewH, worldSize int) View {
	v := View{
		OffsetX: CameraOffset(avatar.X, cellW, viewW, worldSize),
		OffsetY: CameraOffset(avatar.Y, cellH, viewH, worldSize),
		CellW:   cellW,
		CellH:   cellH,
	}
	v.MinX, v.MaxX = VisibleRange(v.OffsetX, cellW, viewW, worldSize)
	v.MinY, v.MaxY = VisibleRange(v.OffsetY, cellH, viewH, worldSize)
	return v
}

// ToScreen converts a world cell to the display position of its top-left corner.
func (v View) ToScreen(c Coord) (x, y int) {
	return c.X*v.CellW - v.OffsetX, c.Y*v.CellH - v.OffsetY
}

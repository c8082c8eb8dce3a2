package render

import (
	"math"

	"github.com/lixenwraith/ant-colony/core"
)

// Projection maps viewport coordinates onto a cols x rows cell grid, y axis up
type Projection struct {
	viewPort   core.ViewPort
	cols, rows int

	// Cells per simulation unit on each axis
	scaleX, scaleY float64
}

// NewProjection stretches vp over the grid; a zero grid yields a projection that places nothing
func NewProjection(vp core.ViewPort, cols, rows int) Projection {
	cols, rows = max(cols, 0), max(rows, 0)
	return Projection{
		viewPort: vp,
		cols:     cols,
		rows:     rows,
		scaleX:   float64(cols) / vp.Width(),
		scaleY:   float64(rows) / vp.Height(),
	}
}

// Size returns grid dimensions
func (p Projection) Size() (cols, rows int) { return p.cols, p.rows }

// Cell returns the cell containing pt; may lie outside the grid
func (p Projection) Cell(pt core.Point) (x, y int) {
	x = int(math.Floor((pt.X - p.viewPort.MinX) * p.scaleX))
	y = int(math.Floor((p.viewPort.MaxY - pt.Y) * p.scaleY))
	return x, y
}

// CellCenter returns the simulation point at the center of cell (x, y)
func (p Projection) CellCenter(x, y int) core.Point {
	return core.Point{
		X: p.viewPort.MinX + (float64(x)+0.5)/p.scaleX,
		Y: p.viewPort.MaxY - (float64(y)+0.5)/p.scaleY,
	}
}

// InBounds reports whether (x, y) is on the grid
func (p Projection) InBounds(x, y int) bool {
	return x >= 0 && x < p.cols && y >= 0 && y < p.rows
}

// Clamp pulls (x, y) onto the grid
func (p Projection) Clamp(x, y int) (int, int) {
	return max(0, min(x, p.cols-1)), max(0, min(y, p.rows-1))
}

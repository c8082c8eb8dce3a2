package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ant-colony/core"
)

const dotRune = '•'

// TerminalRenderer draws onto a tcell screen, stretching the viewport over the whole terminal
type TerminalRenderer struct {
	screen     tcell.Screen
	viewPort   core.ViewPort
	proj       Projection
	background tcell.Color
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, vp core.ViewPort) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:     screen,
		viewPort:   vp,
		background: ToTcell(core.ColorBlack),
	}
	r.Resize()
	return r
}

// Resize recomputes the projection from the screen size
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.proj = NewProjection(r.viewPort, w, h)
}

// Projection returns the active viewport to cell mapping
func (r *TerminalRenderer) Projection() Projection {
	return r.proj
}

// Clear paints every cell with the background
func (r *TerminalRenderer) Clear() {
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.background))
}

// DrawCircleInPosition fills cells whose centers lie inside the circle
// A circle smaller than a cell becomes a single dot over the existing background
func (r *TerminalRenderer) DrawCircleInPosition(position core.Point, radius float64, color core.Color) {
	x0, y0 := r.proj.Cell(core.Point{X: position.X - radius, Y: position.Y + radius})
	x1, y1 := r.proj.Cell(core.Point{X: position.X + radius, Y: position.Y - radius})

	filled := 0
	if x1 > x0 || y1 > y0 {
		style := tcell.StyleDefault.Background(ToTcell(color))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if !r.proj.InBounds(x, y) {
					continue
				}
				if r.proj.CellCenter(x, y).DistanceTo(position) > radius {
					continue
				}
				r.screen.SetContent(x, y, ' ', nil, style)
				filled++
			}
		}
	}

	if filled == 0 {
		x, y := r.proj.Cell(position)
		r.put(x, y, dotRune, color)
	}
}

// DrawFrame outlines the rectangle with box-drawing runes, clamped to the screen
func (r *TerminalRenderer) DrawFrame(position core.Point, width, height float64, color core.Color) {
	cols, rows := r.proj.Size()
	if cols == 0 || rows == 0 {
		return
	}

	left, top := r.proj.Clamp(r.proj.Cell(core.Point{X: position.X - width/2, Y: position.Y + height/2}))
	right, bottom := r.proj.Clamp(r.proj.Cell(core.Point{X: position.X + width/2, Y: position.Y - height/2}))

	for x := left + 1; x < right; x++ {
		r.put(x, top, tcell.RuneHLine, color)
		r.put(x, bottom, tcell.RuneHLine, color)
	}
	for y := top + 1; y < bottom; y++ {
		r.put(left, y, tcell.RuneVLine, color)
		r.put(right, y, tcell.RuneVLine, color)
	}
	r.put(left, top, tcell.RuneULCorner, color)
	r.put(right, top, tcell.RuneURCorner, color)
	r.put(left, bottom, tcell.RuneLLCorner, color)
	r.put(right, bottom, tcell.RuneLRCorner, color)
}

// DrawText writes text from the cell at position, clipped at the right edge
// Terminal cells have a fixed size, so fontSize is ignored
func (r *TerminalRenderer) DrawText(position core.Point, text string, color core.Color, fontSize float64) {
	cols, _ := r.proj.Size()
	x, y := r.proj.Cell(position)
	x = max(x, 0)
	if !r.proj.InBounds(x, y) {
		return
	}

	text = runewidth.Truncate(text, cols-x, "")
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.put(x, y, ch, color)
		x += w
	}
}

// put draws a foreground rune, keeping whatever background the cell already has
func (r *TerminalRenderer) put(x, y int, ch rune, color core.Color) {
	if !r.proj.InBounds(x, y) {
		return
	}
	_, _, existing, _ := r.screen.GetContent(x, y)
	_, bg, _ := existing.Decompose()
	if bg == tcell.ColorDefault {
		bg = r.background
	}
	r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(ToTcell(color)).Background(bg))
}

// TerminalFrame is the FrameContext over a tcell screen
type TerminalFrame struct {
	screen   tcell.Screen
	renderer *TerminalRenderer
}

// NewTerminalFrame wraps screen for the viewport
func NewTerminalFrame(screen tcell.Screen, vp core.ViewPort) *TerminalFrame {
	return &TerminalFrame{screen: screen, renderer: NewTerminalRenderer(screen, vp)}
}

// BeforeRender tracks terminal size and clears the back buffer
func (f *TerminalFrame) BeforeRender() {
	f.renderer.Resize()
	f.renderer.Clear()
}

// AfterRender flushes to the terminal
func (f *TerminalFrame) AfterRender() {
	f.screen.Show()
}

// Renderer returns the terminal renderer
func (f *TerminalFrame) Renderer() Renderer {
	return f.renderer
}

// Terminal returns the concrete renderer for projection queries
func (f *TerminalFrame) Terminal() *TerminalRenderer {
	return f.renderer
}

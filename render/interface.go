// Package render draws simulation state; nothing here feeds back into the simulation.
package render

import "github.com/lixenwraith/ant-colony/core"

// Renderer is the drawing surface, in simulation coordinates
type Renderer interface {
	DrawCircleInPosition(position core.Point, radius float64, color core.Color)
	// DrawFrame outlines a width x height rectangle centered on position
	DrawFrame(position core.Point, width, height float64, color core.Color)
	// DrawText writes text starting at position; backends may ignore fontSize
	DrawText(position core.Point, text string, color core.Color, fontSize float64)
}

// FrameContext brackets one render pass and exposes its renderer
type FrameContext interface {
	BeforeRender()
	AfterRender()
	Renderer() Renderer
}

// Renderable is anything that can draw itself
type Renderable interface {
	Render(r Renderer)
}

// Draw runs one complete pass over items in order
func Draw(frame FrameContext, items ...Renderable) {
	frame.BeforeRender()
	r := frame.Renderer()
	for _, item := range items {
		item.Render(r)
	}
	frame.AfterRender()
}

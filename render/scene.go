package render

import (
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
)

// FrameLayer outlines the viewport
type FrameLayer struct {
	ViewPort core.ViewPort
}

func (l FrameLayer) Render(r Renderer) {
	vp := l.ViewPort
	r.DrawFrame(vp.Center(), vp.Width(), vp.Height(), core.ColorFrame)
}

// ColonyLayer draws the colony disk
type ColonyLayer struct {
	Colony component.Colony
}

func (l ColonyLayer) Render(r Renderer) {
	r.DrawCircleInPosition(l.Colony.Position, l.Colony.Radius(), l.Colony.Color)
}

// FoodLayer draws sources shrunk by their remaining capacity
type FoodLayer []component.Food

func (l FoodLayer) Render(r Renderer) {
	for i := range l {
		if l[i].Depleted() {
			continue
		}
		r.DrawCircleInPosition(l[i].Position, l[i].Radius(), l[i].Color)
	}
}

// PheromoneLayer draws markers faded by remaining strength
type PheromoneLayer []component.Pheromone

func (l PheromoneLayer) Render(r Renderer) {
	for i := range l {
		m := &l[i]
		t := 1.0
		if m.Initial > 0 {
			t = float64(m.Strength) / float64(m.Initial)
		}
		r.DrawCircleInPosition(m.Position, m.Size, Fade(m.Color, core.ColorBlack, t))
	}
}

// AntLayer draws ants; a carrying ant shows the load as an inner dot
type AntLayer []component.Ant

func (l AntLayer) Render(r Renderer) {
	for i := range l {
		a := &l[i]
		r.DrawCircleInPosition(a.Position, a.Size, a.Color)
		if a.CarryingFood {
			r.DrawCircleInPosition(a.Position, a.Size/2, core.ColorAntFood)
		}
	}
}

// CounterLayer draws the delivered food tally
type CounterLayer struct {
	Counter component.Counter
}

func (l CounterLayer) Render(r Renderer) {
	r.DrawText(l.Counter.Position, l.Counter.Text(), l.Counter.Color, l.Counter.Size)
}

// StatusLayer draws a free-form line, used for pause and tick readouts
type StatusLayer struct {
	Position core.Point
	Text     string
	Color    core.Color
}

func (l StatusLayer) Render(r Renderer) {
	if l.Text == "" {
		return
	}
	r.DrawText(l.Position, l.Text, l.Color, 0)
}

// Scene is an ordered stack of layers, painted back to front
type Scene struct {
	Layers []Renderable
}

// NewScene stacks frame, colony, food, pheromones, ants and counter
func NewScene(vp core.ViewPort, colony component.Colony, food []component.Food, pheromones []component.Pheromone, ants []component.Ant, counter component.Counter) Scene {
	return Scene{Layers: []Renderable{
		FrameLayer{ViewPort: vp},
		ColonyLayer{Colony: colony},
		FoodLayer(food),
		PheromoneLayer(pheromones),
		AntLayer(ants),
		CounterLayer{Counter: counter},
	}}
}

// Add appends a layer on top
func (s *Scene) Add(layer Renderable) {
	s.Layers = append(s.Layers, layer)
}

func (s Scene) Render(r Renderer) {
	for _, layer := range s.Layers {
		layer.Render(r)
	}
}

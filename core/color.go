package core

// Color is a 24-bit 0xRRGGBB tag, decoupled from any rendering backend
type Color uint32

// Entity palette
const (
	ColorAnt       Color = 0xfc6203
	ColorAntFood   Color = 0xadf542
	ColorFood      Color = 0x387d27
	ColorColony    Color = 0x7d4827
	ColorPheromone Color = 0x0335fc
	ColorCounter   Color = 0x7d4827
	ColorFrame     Color = 0x444444
	ColorBlack     Color = 0x000000
)

// RGB stores explicit 8-bit color channels
type RGB struct {
	R, G, B uint8
}

// RGB splits the tag into channels
func (c Color) RGB() RGB {
	return RGB{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// ColorFromRGB packs channels back into a tag
func ColorFromRGB(c RGB) Color {
	return Color(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

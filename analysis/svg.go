package analysis

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	lowDensity  = colorful.Color{R: 0.86, G: 0.90, B: 1.0}
	highDensity = colorful.Color{R: 0.10, G: 0.18, B: 0.55}
)

// SVGOptions controls the distribution plot
type SVGOptions struct {
	ColonyRadius float64
	PointRadius  float64
	Size         int // Output width and height in pixels
}

// WriteSVG plots rings shaded by density, the colony, every point and a legend
func (a *RadialAnalyzer) WriteSVG(w io.Writer, opts SVGOptions) error {
	if opts.Size <= 0 {
		opts.Size = 800
	}
	_, outer := a.Ring(a.Rings() - 1)
	extent := 1.25 * outer
	if opts.PointRadius <= 0 {
		opts.PointRadius = extent / 250
	}
	fontSize := extent / 40

	maxDensity := 0.0
	for i := range a.Rings() {
		maxDensity = max(maxDensity, a.Density(i))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	fmt.Fprintf(bw, "<svg width=\"%d\" height=\"%d\" viewBox=\"%g %g %g %g\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		opts.Size, opts.Size, a.center.X-extent, a.center.Y-extent, 2*extent, 2*extent)
	fmt.Fprintf(bw, "  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"#f0f0f0\" />\n",
		a.center.X-extent, a.center.Y-extent, 2*extent, 2*extent)

	// Outermost first so inner rings paint over
	for i := a.Rings() - 1; i >= 0; i-- {
		_, r := a.Ring(i)
		t := 0.0
		if maxDensity > 0 {
			t = a.Density(i) / maxDensity
		}
		fill := lowDensity.BlendLab(highDensity, t).Clamped().Hex()
		fmt.Fprintf(bw, "  <circle cx=\"%g\" cy=\"%g\" r=\"%g\" fill=\"%s\" fill-opacity=\"0.6\" stroke=\"#888\" stroke-width=\"%g\" />\n",
			a.center.X, a.center.Y, r, fill, extent/800)
	}
	inner, _ := a.Ring(0)
	fmt.Fprintf(bw, "  <circle cx=\"%g\" cy=\"%g\" r=\"%g\" fill=\"#f0f0f0\" />\n", a.center.X, a.center.Y, inner)

	if opts.ColonyRadius > 0 {
		fmt.Fprintf(bw, "  <circle cx=\"%g\" cy=\"%g\" r=\"%g\" fill=\"#7d4827\" stroke=\"#000\" stroke-width=\"%g\" />\n",
			a.center.X, a.center.Y, opts.ColonyRadius, extent/400)
	}

	// SVG y grows downward; flip around the center so the plot matches the plane
	for _, p := range a.points {
		fmt.Fprintf(bw, "  <circle cx=\"%g\" cy=\"%g\" r=\"%g\" fill=\"#387d27\" />\n",
			p.X, 2*a.center.Y-p.Y, opts.PointRadius)
	}

	x := a.center.X - extent + fontSize
	y := a.center.Y - extent + 2*fontSize
	fmt.Fprintf(bw, "  <text x=\"%g\" y=\"%g\" font-family=\"monospace\" font-size=\"%g\">CV %.4f, outside %d</text>\n",
		x, y, fontSize, a.CoefficientOfVariation(), a.outside)
	for i := range a.Rings() {
		lo, hi := a.Ring(i)
		fmt.Fprintf(bw, "  <text x=\"%g\" y=\"%g\" font-family=\"monospace\" font-size=\"%g\">ring %d [%.3g, %.3g): %d</text>\n",
			x, y+float64(i+1)*1.5*fontSize, fontSize, i+1, lo, hi, a.counts[i])
	}

	fmt.Fprintf(bw, "</svg>\n")
	return bw.Flush()
}

// SaveSVG writes the plot to path
func (a *RadialAnalyzer) SaveSVG(path string, opts SVGOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := a.WriteSVG(f, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

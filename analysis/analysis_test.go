package analysis

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/core"
)

func TestNewRadialAnalyzerRejectsBadInput(t *testing.T) {
	_, err := NewRadialAnalyzer(core.Point{}, 10, 5, 4)
	assert.Error(t, err)
	_, err = NewRadialAnalyzer(core.Point{}, 0, 5, 0)
	assert.Error(t, err)
}

func TestRingsHaveEqualArea(t *testing.T) {
	a, err := NewRadialAnalyzer(core.Point{}, 50, 250, 10)
	require.NoError(t, err)

	inner, outer := a.Ring(0)
	want := outer*outer - inner*inner
	for i := 1; i < a.Rings(); i++ {
		lo, hi := a.Ring(i)
		assert.InDelta(t, want, hi*hi-lo*lo, 1e-6, "ring %d", i)
	}
	_, last := a.Ring(a.Rings() - 1)
	assert.Equal(t, 250.0, last)
}

func TestAddBucketsByDistance(t *testing.T) {
	a, err := NewRadialAnalyzer(core.Point{X: 1, Y: 1}, 1, 3, 2)
	require.NoError(t, err)

	assert.True(t, a.Add(core.Point{X: 2.5, Y: 1}))  // d = 1.5, ring 0 ends at sqrt(5)
	assert.True(t, a.Add(core.Point{X: 1, Y: 3.5}))  // d = 2.5
	assert.False(t, a.Add(core.Point{X: 1, Y: 1.5})) // inside inner radius
	assert.False(t, a.Add(core.Point{X: 5, Y: 1}))   // beyond outer

	assert.Equal(t, []int{1, 1}, a.Counts())
	assert.Equal(t, 2, a.Outside())
	assert.Len(t, a.Points(), 4)
}

func TestCoefficientOfVariation(t *testing.T) {
	a, err := NewRadialAnalyzer(core.Point{}, 0, 2, 2)
	require.NoError(t, err)
	assert.Zero(t, a.CoefficientOfVariation())

	a.Add(core.Point{X: 0.5})
	a.Add(core.Point{X: 1.9})
	assert.Zero(t, a.CoefficientOfVariation())

	a.Add(core.Point{X: 1.8})
	a.Add(core.Point{X: 1.7})
	// counts {1, 3}: mean 2, stddev 1
	assert.InDelta(t, 0.5, a.CoefficientOfVariation(), 1e-12)
}

func TestDensityNormalizesByArea(t *testing.T) {
	a, err := NewRadialAnalyzer(core.Point{}, 0, 1, 1)
	require.NoError(t, err)
	a.Add(core.Point{X: 0.1})
	assert.InDelta(t, 1/math.Pi, a.Density(0), 1e-12)
}

func TestWriteSVG(t *testing.T) {
	a, err := NewRadialAnalyzer(core.Point{}, 50, 250, 3)
	require.NoError(t, err)
	a.Add(core.Point{X: 100, Y: 20})
	a.Add(core.Point{X: -200, Y: 10})

	var buf bytes.Buffer
	require.NoError(t, a.WriteSVG(&buf, SVGOptions{ColonyRadius: 50}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, "#7d4827")
	assert.Contains(t, out, "cy=\"-20\"")
	assert.Equal(t, 3, strings.Count(out, "ring "))
}

func TestSaveSVG(t *testing.T) {
	a, err := NewRadialAnalyzer(core.Point{}, 1, 2, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dist.svg")
	require.NoError(t, a.SaveSVG(path, SVGOptions{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	assert.Error(t, a.SaveSVG(filepath.Join(t.TempDir(), "missing", "x.svg"), SVGOptions{}))
}

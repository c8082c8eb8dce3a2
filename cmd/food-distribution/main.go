// food-distribution runs the food spawner alone and reports how evenly sources
// cover the area around the colony, ring by equal-area ring
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/lixenwraith/ant-colony/analysis"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/logging"
	"github.com/lixenwraith/ant-colony/system"
)

func main() {
	ticks := flag.Int("ticks", 10000, "Spawner updates to run")
	seed := flag.Uint64("seed", 1, "Random seed")
	rings := flag.Int("rings", 10, "Equal-area rings")
	half := flag.Float64("half", 250, "Half-width of the square viewport")
	colonyRadius := flag.Float64("colony", 50, "Colony radius")
	unitRadius := flag.Float64("unit", 5, "Food unit radius")
	svgPath := flag.String("svg", "food_distribution.svg", "SVG output path, empty to skip")
	flag.Parse()

	cfg := config.Default()
	cfg.World.MinX, cfg.World.MinY, cfg.World.MaxX, cfg.World.MaxY = -*half, -*half, *half, *half
	cfg.World.Seed = *seed
	cfg.Colony.Radius = *colonyRadius
	cfg.Food.UnitRadius = *unitRadius
	cfg.Food.SpawnChance = 1

	res, err := engine.NewResources(cfg, logging.Discard(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	food := system.NewFoodSystem(engine.NewWorld(res))
	for range *ticks {
		food.Update()
	}

	outer := math.Min(res.ViewPort.MaxX-cfg.Colony.X, res.ViewPort.MaxY-cfg.Colony.Y)
	analyzer, err := analysis.NewRadialAnalyzer(cfg.ColonyCenter(), cfg.Colony.Radius, outer, *rings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	for _, f := range food.Sources() {
		analyzer.Add(f.Position)
	}

	fmt.Printf("%d sources, %d outside r=%.1f\n", len(food.Sources()), analyzer.Outside(), outer)
	for i, n := range analyzer.Counts() {
		lo, hi := analyzer.Ring(i)
		fmt.Printf("ring %2d  [%6.1f, %6.1f)  %5d  density %.5f\n", i, lo, hi, n, analyzer.Density(i))
	}
	fmt.Printf("coefficient of variation: %.4f\n", analyzer.CoefficientOfVariation())

	if *svgPath == "" {
		return
	}
	opts := analysis.SVGOptions{ColonyRadius: cfg.Colony.Radius, PointRadius: cfg.Food.UnitRadius / 2, Size: 800}
	if err := analyzer.SaveSVG(*svgPath, opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *svgPath)
}

// Command mapviz dumps a generated map (and, optionally, a path across
// it) as an SVG file for visual debugging. Grounded on the teacher's
// cmd/scenario-viz debug tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ajstarks/svgo"

	"antcraft/pkg/pathfind"
	"antcraft/pkg/tilemap"
)

func main() {
	seed := flag.Uint64("seed", 1, "map generation seed")
	width := flag.Int("width", 100, "map width in tiles")
	height := flag.Int("height", 100, "map height in tiles")
	cell := flag.Int("cell", 6, "pixels per tile")
	out := flag.String("out", "map.svg", "output SVG path")
	pathFrom := flag.String("path-from", "", "x,y to start a debug path from")
	pathTo := flag.String("path-to", "", "x,y to end a debug path at")
	flag.Parse()

	m := tilemap.Generate(uint32(*seed), *width, *height)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mapviz:", err)
		os.Exit(1)
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(m.Width*(*cell), m.Height*(*cell))
	drawTiles(canvas, m, *cell)

	if *pathFrom != "" && *pathTo != "" {
		fx, fy, ferr := parsePoint(*pathFrom)
		tx, ty, terr := parsePoint(*pathTo)
		if ferr == nil && terr == nil {
			drawPath(canvas, m, fx, fy, tx, ty, *cell)
		}
	}

	canvas.End()
}

func drawTiles(canvas *svg.SVG, m *tilemap.TileMap, cellPx int) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			color := "white"
			if m.Get(x, y) == tilemap.Rock {
				color = "dimgray"
			}
			canvas.Rect(x*cellPx, y*cellPx, cellPx, cellPx, "fill:"+color+";stroke:lightgray")
		}
	}
	for _, p := range m.StartPositions {
		canvas.Circle(p.X*cellPx+cellPx/2, p.Y*cellPx+cellPx/2, cellPx/2, "fill:blue")
	}
	for _, p := range m.HiveSitePositions {
		canvas.Circle(p.X*cellPx+cellPx/2, p.Y*cellPx+cellPx/2, cellPx/2, "fill:green")
	}
}

func drawPath(canvas *svg.SVG, m *tilemap.TileMap, fx, fy, tx, ty, cellPx int) {
	path := pathfind.FindPath(m, fx, fy, tx, ty)
	xs := make([]int, 0, len(path)+1)
	ys := make([]int, 0, len(path)+1)
	xs = append(xs, fx*cellPx+cellPx/2)
	ys = append(ys, fy*cellPx+cellPx/2)
	for _, p := range path {
		xs = append(xs, p.X*cellPx+cellPx/2)
		ys = append(ys, p.Y*cellPx+cellPx/2)
	}
	canvas.Polyline(xs, ys, "fill:none;stroke:red;stroke-width:2")
}

func parsePoint(s string) (x, y int, err error) {
	_, err = fmt.Sscanf(s, "%d,%d", &x, &y)
	return x, y, err
}

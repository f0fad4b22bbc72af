package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/earclip"
)

// Demo of ear clipping triangulation. The polygon comes either from an SVG
// file's first <polygon> element, or from stdin as newline separated "x y"
// points. The mesh is rendered to a PNG, and optionally printed straight to
// the terminal (iTerm only).
//
// The polygon should be simple. Winding order doesn't matter. Holes and
// self-intersections are not supported, and are not validated.

var (
	svgPath = kingpin.Arg("svg", "SVG file to read the polygon from. Reads \"x y\" lines from stdin if omitted.").String()
	scale   = kingpin.Flag("scale", "Pixels per polygon unit in the rendering.").Default("10").Float64()
	outPath = kingpin.Flag("out", "Output PNG path.").Default("/tmp/earclip.png").String()
	cat     = kingpin.Flag("cat", "Print the rendering to the terminal (iTerm only).").Bool()
)

const drawPadding = 20

func main() {
	kingpin.Parse()

	var polygon earclip.Polygon
	if *svgPath != "" {
		polygon = readSVGPolygon(*svgPath)
	} else {
		polygon = readStdinPolygon(os.Stdin)
	}
	fmt.Printf("Read polygon with %s vertices\n", aurora.Bold(len(polygon.Points)))

	triangles := earclip.Triangulate(polygon)
	if len(triangles) == 0 {
		log.Fatalf("Polygon is degenerate; nothing to triangulate")
	}

	var totalArea float64
	for _, tri := range triangles {
		totalArea += tri.Area()
	}
	fmt.Printf("Produced %s triangles covering area %s\n",
		aurora.Green(len(triangles)), aurora.Cyan(fmt.Sprintf("%.3f", totalArea)))

	render(polygon, triangles)
}

func readStdinPolygon(in io.Reader) earclip.Polygon {
	points := []*earclip.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		point := parsePoint(line)
		points = append(points, &point)
	}
	return earclip.Polygon{Points: points}
}

func parsePoint(line string) earclip.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	return earclip.Point{X: x, Y: y}
}

func readSVGPolygon(path string) earclip.Polygon {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Could not open %q: %v", path, err)
	}
	defer file.Close()

	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse %q: %v", path, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in %q", path)
	}

	points := []*earclip.Point{}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &earclip.Point{X: x, Y: y})
	}
	return earclip.Polygon{Points: points}
}

func render(polygon earclip.Polygon, triangles earclip.TriangleList) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(*scale*(maxX-minX)) + drawPadding*2
	height := int(*scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(*scale, *scale)
	c.Translate(-minX, -minY)
	c.SetLineWidth(2)

	for _, tri := range triangles {
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}

	if err := c.SavePNG(*outPath); err != nil {
		log.Fatalf("Could not write %q: %v", *outPath, err)
	}
	fmt.Printf("Wrote %s\n", aurora.Bold(*outPath))
	if *cat {
		imgcat.CatFile(*outPath, os.Stdout)
	}
}

package main

import (
	"bufio"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	polyline "github.com/twpayne/go-polyline"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/giftwrap"
	"github.com/osuushi/giftwrap/hull"
)

// Demo of gift wrapping. Input on stdin should be newline separated points in
// the form "x y". The hull is printed one point per line, in hull order.

var (
	draw    = kingpin.Flag("draw", "Render the points and hull inline in the terminal (iTerm2 image protocol).").Bool()
	out     = kingpin.Flag("out", "Write a PNG of the points and hull to this path.").String()
	scale   = kingpin.Flag("scale", "Pixels per coordinate unit for rendering.").Default("10").Float64()
	random  = kingpin.Flag("random", "Seed each wrap iteration with a random candidate instead of the first free one.").Bool()
	seed    = kingpin.Flag("seed", "Seed for --random. Seeded once per invocation.").Default("10").Int64()
	trace   = kingpin.Flag("trace", "Narrate each wrap iteration to stderr.").Bool()
	encoded = kingpin.Flag("polyline", "Also print the hull as a Google encoded polyline.").Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	switch len(points) {
	case 0:
		log.Println("no data points to analyse")
	case 1:
		log.Println("only one data point to analyse")
	case 2:
		log.Println("only two data points to analyse")
	}

	var opts []hull.Option
	if *random {
		opts = append(opts, hull.WithSampler(hull.Random{Rand: rand.New(rand.NewSource(*seed))}))
	}
	if *trace {
		opts = append(opts, hull.WithTrace(os.Stderr))
	}

	boundary, err := giftwrap.ConvexHull(points, opts...)
	if err != nil {
		log.Fatalf("gift wrapping failed: %v", err)
	}

	for _, p := range boundary {
		fmt.Printf("%v %v\n", p.X, p.Y)
	}

	if *encoded {
		coords := make([][]float64, len(boundary))
		for i, p := range boundary {
			coords[i] = []float64{p.Y, p.X}
		}
		fmt.Printf("polyline: %s\n", polyline.EncodeCoords(coords))
	}

	if *out != "" || *draw {
		path := *out
		if path == "" {
			path = "/tmp/giftwrap.png"
		}
		if err := hull.Draw(points, boundary, *scale, path); err != nil {
			log.Fatalf("could not render %q: %v", path, err)
		}
		if *draw {
			hull.ShowTerminal(path)
		}
	}
}

func readPoints(in *os.File) []*giftwrap.Point {
	points := []*giftwrap.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point := parsePoint(line)
		points = append(points, &point)
	}
	return points
}

func parsePoint(line string) giftwrap.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return giftwrap.Point{X: x, Y: y}
}

// Command sketchdemo builds a small scene graph and prints the drawing
// commands it produces, optionally saving a pixel-art image object to a
// PNG along the way.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gocanvas/sketch"
	"github.com/gocanvas/sketch/scene"
)

func main() {
	var (
		output  = flag.String("output", "", "write the demo image object to this PNG file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	root := scene.NewCompound()

	sun := scene.NewOval(340, 20, 60, 60)
	sun.SetColor(sketch.Orange)
	sun.SetFillColor(sketch.Yellow)
	must(root.Add(sun))

	house := buildHouse()
	must(root.AddAt(house, 60, 120))

	label := scene.NewText("sketch demo", 20, 30)
	label.SetFont("SansSerif-18")
	must(root.Add(label))

	sprite, err := buildSprite()
	if err != nil {
		log.Fatalf("build sprite: %v", err)
	}
	must(root.AddAt(sprite, 300, 200))

	// Replay the scene onto a recording surface and dump it.
	rec := sketch.NewRecorder()
	root.Draw(rec)
	fmt.Println(rec)
	fmt.Printf("scene bounds: %v, %d commands\n", root.Bounds(), rec.Count())

	if *output != "" {
		if err := sprite.Pixmap().SavePNG(*output); err != nil {
			log.Fatalf("save %s: %v", *output, err)
		}
		log.Printf("sprite saved to %s", *output)
	}
}

// buildHouse assembles a nested compound: walls, roof and a door.
func buildHouse() *scene.Compound {
	house := scene.NewCompound()

	walls := scene.NewRect(0, 60, 120, 80)
	walls.SetFillColor(sketch.Hex("#d9c8a9"))
	must(house.Add(walls))

	roof := scene.NewPolygonFrom(sketch.Pt(0, 60), sketch.Pt(60, 0), sketch.Pt(120, 60))
	roof.SetFillColor(sketch.Brown)
	must(house.Add(roof))

	door, err := scene.NewRoundRectCorner(48, 95, 24, 45, 6)
	if err != nil {
		log.Fatalf("door: %v", err)
	}
	door.SetFillColor(sketch.DarkGray)
	must(house.Add(door))

	return house
}

// buildSprite draws a checkerboard into an image object pixel by pixel.
func buildSprite() (*scene.Image, error) {
	img, err := scene.NewImage(0, 0, 32, 32)
	if err != nil {
		return nil, err
	}
	a := sketch.Purple.Packed()
	b := sketch.Pink.Packed()
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := a
			if (x/4+y/4)%2 == 0 {
				c = b
			}
			if err := img.SetPixel(x, y, c); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

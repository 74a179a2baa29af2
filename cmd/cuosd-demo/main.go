// Command cuosd-demo exercises the cuosd compositor against a synthetic
// background: a filled rectangle, a hollow circle, and a blur redaction
// box, then saves the result as a PNG.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/cuosd"
	"github.com/gogpu/cuosd/command"
	"github.com/gogpu/cuosd/surface"
)

func main() {
	var (
		width  = flag.Int("width", 640, "image width")
		height = flag.Int("height", 480, "image height")
		output = flag.String("output", "demo.png", "output PNG path")
	)
	flag.Parse()

	s := surface.NewRGBASurface(*width, *height)
	drawCheckerboard(s)

	enc := command.NewEncoder()
	enc.AddRectangle(
		command.Header{Left: 40, Top: 40, Right: 240, Bottom: 180, C0: 220, C1: 40, C2: 40, C3: 180},
		[4]command.Point{{X: 40, Y: 40}, {X: 40, Y: 180}, {X: 240, Y: 180}, {X: 240, Y: 40}},
		[4]command.Point{},
		-1, false,
	)
	enc.AddCircle(
		command.Header{Left: 300, Top: 60, Right: 460, Bottom: 220, C0: 40, C1: 180, C2: 220, C3: 255},
		380, 140, 80, 6,
	)
	stream := enc.Build()

	blurEnc := command.NewEncoder()
	blurEnc.AddBoxBlur(command.Header{Left: 480, Top: 260, Right: 600, Bottom: 380}, 9)
	blurStream := blurEnc.Build()

	cuosd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	err := cuosd.Launch(context.Background(), cuosd.LaunchParams{
		Destination:  s,
		Commands:     stream,
		BlurCommands: blurStream,
	})
	if err != nil {
		log.Fatalf("cuosd.Launch: %v", err)
	}

	img := toRGBA(s)
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode png: %v", err)
	}

	log.Printf("demo saved to %s (%dx%d)", *output, *width, *height)
}

func drawCheckerboard(s *surface.RGBASurface) {
	const cell = 20
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if (x/cell+y/cell)%2 == 0 {
				s.WritePixel(x, y, 235, 235, 235, 255)
			} else {
				s.WritePixel(x, y, 200, 200, 200, 255)
			}
		}
	}
}

func toRGBA(s *surface.RGBASurface) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			r, g, b, a := s.ReadPixel(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}

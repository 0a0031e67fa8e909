// Command geomdemo warps a checkerboard through a rotation about the image
// centre and writes the result as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/damage"
	"github.com/gogpu/geom/warp"
)

const (
	checkerSize = 16
	tileSize    = 64
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		angle   = flag.Float64("angle", 30, "rotation in degrees")
		output  = flag.String("output", "geomdemo.png", "output file")
		verbose = flag.Bool("v", false, "log debug records")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	geom.SetLogger(logger)

	if err := run(logger, *width, *height, *angle, *output); err != nil {
		logger.Error("geomdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, w, h int, angle float64, output string) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid size %dx%d", w, h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{R: 24, G: 32, B: 48, A: 255}), image.Point{}, draw.Src)

	src := checkerboard(max(w/2, 1), max(h/2, 1))
	m := aboutCentre(src.Bounds(), dst.Bounds(), angle)

	dirty := damage.New(geom.IRectFromImage(dst.Bounds()), tileSize, tileSize)

	touched := warp.Draw(dst, m, src, src.Bounds())
	logger.Info("warped checkerboard", "angle", angle, "matrix", m, "touched", touched)
	dirty.Mark(touched)

	// A translucent band across the middle of the source, drawn with the
	// same matrix.
	sb := geom.RectFromIRect(geom.IRectFromImage(src.Bounds()))
	band := geom.R(sb.X0, sb.Y0+sb.Height()*0.4, sb.X1, sb.Y0+sb.Height()*0.6)
	filled := warp.FillRect(dst, m, band, image.NewUniform(color.RGBA{R: 20, G: 60, B: 120, A: 160}))
	logger.Info("filled band", "band", band, "touched", filled)
	dirty.MarkTransformed(band, m)

	logger.Info("damage", "tiles", dirty.Count(), "of", dirty.TilesX()*dirty.TilesY(), "bounds", dirty.Bounds())

	if err := writePNG(output, dst); err != nil {
		return err
	}
	logger.Info("demo saved", "path", output, "width", w, "height", h)
	return nil
}

// aboutCentre maps the centre of sr onto the centre of dr, rotated by angle
// degrees.
func aboutCentre(sr, dr image.Rectangle, angle float64) geom.Matrix {
	sc := geom.RectFromIRect(geom.IRectFromImage(sr))
	dc := geom.RectFromIRect(geom.IRectFromImage(dr))
	return geom.Translate(-(sc.X0+sc.X1)/2, -(sc.Y0+sc.Y1)/2).
		Concat(geom.Rotate(angle)).
		Concat(geom.Translate((dc.X0+dc.X1)/2, (dc.Y0+dc.Y1)/2))
}

func checkerboard(w, h int) *image.RGBA {
	light := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	dark := color.RGBA{R: 200, G: 60, B: 40, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := light
			if (x/checkerSize+y/checkerSize)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

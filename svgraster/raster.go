// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/benoitkugler/fenglogo/svgicon"
	"github.com/srwiley/rasterx"
)

var _ svgicon.Driver = (*Renderer)(nil) // assert interface conformance

// ErrEmptyImage is returned when the requested image has no pixel.
var ErrEmptyImage = errors.New("svgraster: empty image")

// Renderer paints on a rasterx scanner.
type Renderer struct {
	dasher stroker // to avoid shared state
	filler filler  // we use separated instance
}

// NewRenderer returns a renderer with default values.
// If scanner is nil, a default scanner rasterx.ScannerGV is used
// on a new image of the given size.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	}
	return &Renderer{
		dasher: stroker{rasterx.NewDasher(width, height, scanner)},
		filler: filler{rasterx.NewFiller(width, height, scanner)},
	}
}

// SetupDrawers implements svgicon.Driver.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgicon.Filler, s svgicon.Stroker) {
	if willFill {
		f = rd.filler
	}
	if willStroke {
		s = rd.dasher
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(color svgicon.Pattern, opacity float64) {
	setColorFromPattern(color, opacity, f.Scanner)
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(color svgicon.Pattern, opacity float64) {
	setColorFromPattern(color, opacity, s.Scanner)
}

func (s stroker) SetStrokeOptions(options svgicon.StrokeOptions) {
	lineCap := toCapFunc(options.Join.LineCap)
	s.SetStroke(
		options.LineWidth, options.Join.MiterLimit, lineCap, lineCap,
		rasterx.RoundGap, toJoinMode(options.Join.LineJoin), nil, 0,
	)
}

// resolve the color
func setColorFromPattern(color svgicon.Pattern, opacity float64, scanner rasterx.Scanner) {
	switch c := color.(type) {
	case svgicon.PlainColor:
		scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
	}
}

func toJoinMode(j svgicon.JoinMode) rasterx.JoinMode {
	switch j {
	case svgicon.Round:
		return rasterx.Round
	case svgicon.Bevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}

func toCapFunc(c svgicon.CapMode) rasterx.CapFunc {
	switch c {
	case svgicon.RoundCap:
		return rasterx.RoundCap
	case svgicon.SquareCap:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

// Rasterize renders the icon on a white background, scaled so that
// the image is `width` pixels wide. The height follows the icon aspect ratio.
// The icon transform is modified.
func Rasterize(icon *svgicon.SvgIcon, width int) (*image.RGBA, error) {
	if width <= 0 || icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, ErrEmptyImage
	}
	height := int(math.Round(float64(width) * icon.ViewBox.H / icon.ViewBox.W))
	if height <= 0 {
		return nil, ErrEmptyImage
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(NewRenderer(width, height, scanner), 1.0)
	return img, nil
}

// RasterSVGIconToImage parses the icon and renders it with `Rasterize`.
// A zero width uses the icon viewBox width.
func RasterSVGIconToImage(icon io.Reader, width int) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	if width == 0 {
		width = int(math.Ceil(parsedIcon.ViewBox.W))
	}
	return Rasterize(parsedIcon, width)
}

// WritePNG encodes the image as PNG into `w`.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// ConvertFile rasterizes the SVG file `src` into the PNG file `dst`.
func ConvertFile(src, dst string, width int) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := RasterSVGIconToImage(in, width)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err = WritePNG(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

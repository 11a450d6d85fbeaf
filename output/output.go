// Package output builds the logo files: the SVG document,
// and optionally a PNG preview and a PDF rendering of it.
//
// Only the SVG is required; the other artifacts are best effort
// and their outcome is reported in the Result.
package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/fenglogo/logo"
	"github.com/benoitkugler/fenglogo/svgdraw"
	"github.com/benoitkugler/fenglogo/svgpdf"
)

// DefaultOut is the SVG file written when Options.Out is empty.
const DefaultOut = "logo.svg"

// Title is the document title.
const Title = "FENG"

// previewScale is the pixel density of the PNG preview.
const previewScale = 2

// Options selects the files to write.
type Options struct {
	Out       string    // SVG file, DefaultOut if empty
	PNG       bool      // also write <base>.png
	PDF       bool      // also write <base>.pdf
	Converter Converter // used for the PNG, Builtin if nil
}

// State is the outcome of an optional artifact.
type State uint8

const (
	NotRequested State = iota
	Produced
	Skipped
)

func (s State) String() string {
	switch s {
	case NotRequested:
		return "not requested"
	case Produced:
		return "produced"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Outcome reports what happened to an optional artifact.
type Outcome struct {
	State  State
	Path   string // set when Produced
	Reason string // set when Skipped
}

func produced(path string) Outcome { return Outcome{State: Produced, Path: path} }

func skipped(err error) Outcome { return Outcome{State: Skipped, Reason: err.Error()} }

// Result describes a successful build.
type Result struct {
	SVGPath string
	Canvas  logo.Canvas
	Preview Outcome
	PDF     Outcome
}

// Run composes the logo and writes the SVG file, then the
// requested optional artifacts.
// An error is returned only when the SVG can't be produced.
func Run(ctx context.Context, p logo.Params, opts Options) (Result, error) {
	if opts.Out == "" {
		opts.Out = DefaultOut
	}
	canvas, strokes, err := logo.Compose(p)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err = WriteSVG(&buf, p, canvas, strokes); err != nil {
		return Result{}, err
	}
	if err = os.WriteFile(opts.Out, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing svg: %w", err)
	}
	Logger().Debug("svg written", "path", opts.Out, "width", canvas.Width, "height", canvas.Height, "strokes", len(strokes))

	res := Result{SVGPath: opts.Out, Canvas: canvas}
	base := strings.TrimSuffix(opts.Out, filepath.Ext(opts.Out))
	if opts.PNG {
		conv := opts.Converter
		if conv == nil {
			conv = Builtin{}
		}
		width := PreviewWidth(canvas)
		res.Preview = attempt(func() error { return conv.Convert(ctx, opts.Out, base+".png", width) }, base+".png")
		Logger().Debug("png preview", "converter", conv, "width", width, "state", res.Preview.State)
	}
	if opts.PDF {
		res.PDF = attempt(func() error { return writePDF(opts.Out, base+".pdf") }, base+".pdf")
		Logger().Debug("pdf rendering", "state", res.PDF.State)
	}
	return res, nil
}

// attempt runs `fn`, turning an error or a panic into a skipped outcome.
func attempt(fn func() error, path string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = skipped(fmt.Errorf("panic: %v", r))
		}
	}()
	if err := fn(); err != nil {
		return skipped(err)
	}
	return produced(path)
}

func writePDF(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	extent, err := svgpdf.RenderSVGIconToPDF(f, dst)
	if err != nil {
		return err
	}
	Logger().Debug("pdf extent", "x", extent.X, "y", extent.Y, "w", extent.W, "h", extent.H)
	return nil
}

// StyleOf returns the stroke style shared by every path.
func StyleOf(p logo.Params) svgdraw.Style {
	return svgdraw.Style{Color: p.StrokeColor, Width: p.Stroke, Cap: p.Cap, Join: p.Join}
}

// WriteSVG serializes the strokes into `w`, with one group
// per letter, in placement order.
func WriteSVG(w io.Writer, p logo.Params, canvas logo.Canvas, strokes []logo.Stroke) error {
	doc := svgdraw.New(w, canvas.Width, canvas.Height, Title)
	style := StyleOf(p)
	for _, pl := range canvas.Placements {
		doc.Group(pl.Glyph.String())
		for _, s := range strokes {
			if s.Glyph != pl.Glyph {
				continue
			}
			if err := doc.AddStroke(s.Points, style); err != nil {
				return fmt.Errorf("letter %s: %w", s.Glyph, err)
			}
		}
	}
	if err := doc.End(); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

// PreviewWidth returns the pixel width of the PNG preview.
func PreviewWidth(c logo.Canvas) int { return int(c.Width * previewScale) }

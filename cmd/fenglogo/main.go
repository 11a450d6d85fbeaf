// Command fenglogo writes the FENG logo as an SVG file,
// with an optional PNG preview and PDF rendering.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benoitkugler/fenglogo/logo"
	"github.com/benoitkugler/fenglogo/output"
	"github.com/benoitkugler/fenglogo/svgicon"
)

// errUsage flags bad command line arguments.
var errUsage = errors.New("usage")

// errFlags is a usage error already reported by the flag package.
var errFlags = fmt.Errorf("%w: invalid flags", errUsage)

type config struct {
	params  logo.Params
	opts    output.Options
	verbose bool
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	def := logo.DefaultParams()
	cfg := config{params: def}

	fs := flag.NewFlagSet("fenglogo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.opts.Out, "out", output.DefaultOut, "output SVG path")
	fs.BoolVar(&cfg.opts.PNG, "png", false, "also write a PNG preview next to the SVG")
	fs.BoolVar(&cfg.opts.PDF, "pdf", false, "also write a PDF rendering next to the SVG")
	converter := fs.String("converter", "builtin", "PNG converter: builtin, or an external program such as rsvg-convert")
	fs.Float64Var(&cfg.params.Height, "height", def.Height, "canvas height")
	fs.Float64Var(&cfg.params.Stroke, "stroke", def.Stroke, "stroke width")
	fs.Float64Var(&cfg.params.LetterWidth, "letterw", def.LetterWidth, "width of F, E and G")
	fs.Float64Var(&cfg.params.NRatio, "nratio", def.NRatio, "N width as a ratio of the letter width")
	fs.Float64Var(&cfg.params.GapRatio, "gapratio", def.GapRatio, "gap between letters as a ratio of the stroke width")
	fs.Float64Var(&cfg.params.Margin, "margin", def.Margin, "outer margin")
	fs.StringVar(&cfg.params.StrokeColor, "color", def.StrokeColor, "stroke color")
	lineCap := fs.String("cap", def.Cap.String(), "line cap: round, square or butt")
	lineJoin := fs.String("join", def.Join.String(), "line join: round, bevel or miter")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, errFlags
	}
	if fs.NArg() != 0 {
		return cfg, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}

	col, err := svgicon.ParseColor(cfg.params.StrokeColor)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s", errUsage, err)
	}
	plain, ok := col.(svgicon.PlainColor)
	if !ok {
		return cfg, fmt.Errorf("%w: stroke color can't be %q", errUsage, cfg.params.StrokeColor)
	}
	cfg.params.StrokeColor = plain.Hex()

	if cfg.params.Cap, ok = svgicon.ParseCapMode(*lineCap); !ok {
		return cfg, fmt.Errorf("%w: unknown cap %q", errUsage, *lineCap)
	}
	if cfg.params.Join, ok = svgicon.ParseJoinMode(*lineJoin); !ok {
		return cfg, fmt.Errorf("%w: unknown join %q", errUsage, *lineJoin)
	}
	cfg.opts.Converter = output.NewConverter(*converter)
	return cfg, nil
}

func report(w io.Writer, kind string, o output.Outcome) {
	switch o.State {
	case output.Produced:
		fmt.Fprintf(w, "Saved %s: %s\n", kind, o.Path)
	case output.Skipped:
		fmt.Fprintf(w, "%s export skipped: %s\n", kind, o.Reason)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errFlags) {
			fmt.Fprintln(stderr, err)
		}
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	output.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	res, err := output.Run(ctx, cfg.params, cfg.opts)
	if err != nil {
		output.Logger().Error("building logo", "err", err)
		return 1
	}
	fmt.Fprintf(stdout, "Saved SVG: %s\n", res.SVGPath)
	report(stdout, "PNG", res.Preview)
	report(stdout, "PDF", res.PDF)
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

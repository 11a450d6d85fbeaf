package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/benoitkugler/fenglogo/svgraster"
)

// ErrConverterUnavailable is returned when an external
// converter program can't be found.
var ErrConverterUnavailable = errors.New("converter not available")

// Converter rasterizes the SVG file `src` into the PNG file `dst`,
// `width` pixels wide.
type Converter interface {
	Convert(ctx context.Context, src, dst string, width int) error
}

// Builtin rasterizes in process, with svgraster.
type Builtin struct{}

func (Builtin) Convert(_ context.Context, src, dst string, width int) error {
	return svgraster.ConvertFile(src, dst, width)
}

func (Builtin) String() string { return "builtin" }

// External runs a command line converter accepting
// the rsvg-convert arguments: -w <width> -o <dst> <src>.
type External struct {
	Program string
}

func (e External) Convert(ctx context.Context, src, dst string, width int) error {
	path, err := exec.LookPath(e.Program)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrConverterUnavailable, e.Program)
	}

	cmd := exec.CommandContext(ctx, path, "-w", strconv.Itoa(width), "-o", dst, src)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	Logger().Debug("running converter", "cmd", cmd.String())
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", e.Program, err, msg)
		}
		return fmt.Errorf("%s: %w", e.Program, err)
	}
	return nil
}

func (e External) String() string { return e.Program }

// NewConverter returns the converter for the given name:
// "builtin" (or empty) for the in process rasterizer,
// any other name is an external program.
func NewConverter(name string) Converter {
	if name == "" || name == "builtin" {
		return Builtin{}
	}
	return External{Program: name}
}

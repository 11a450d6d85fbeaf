package output

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/benoitkugler/fenglogo/svgicon"
)

var loggerPtr atomic.Pointer[slog.Logger]

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func init() {
	loggerPtr.Store(discard())
}

// SetLogger sets the logger used for build diagnostics, and
// by the SVG reader used for previews. Pass nil to disable logging.
func SetLogger(l *slog.Logger) {
	svgicon.SetLogger(l)
	if l == nil {
		l = discard()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

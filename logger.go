package gamut

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Because Enabled reports false, a fill
// running with the default logger never builds its diagnostic attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// silent is returned by Logger until SetLogger installs a logger.
var silent = slog.New(nopHandler{})

// current is the installed logger, nil for silent. Fill workers may read
// it while SetLogger replaces it.
var current atomic.Pointer[slog.Logger]

// SetLogger routes render diagnostics to l. A nil l silences gamut again,
// which is also the state before the first call.
//
// Each Fill logs one debug record ("gamut: fill") carrying the plane,
// raster size, filled rows, band count and elapsed time. A reference
// that NewRGBTransform refuses is logged at warn level before Fill
// returns the error.
//
// For example, to see fill timings on stderr:
//
//	gamut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger gamut currently writes to. It may be called
// from any goroutine.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}

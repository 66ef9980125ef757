/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  string

	// structured is set once --log-fmt has been given. Until then every
	// call goes to glog.
	structured atomic.Bool

	// output is where the structured handler writes.
	output io.Writer = os.Stderr
)

// Init switches to structured logging when --log-fmt was set on fs.
// It is a no-op otherwise, leaving glog in charge.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	if f := fs.Lookup("log-fmt"); f == nil || !f.Changed {
		return nil
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	handler, err := newHandler(output, logFormat, &slog.HandlerOptions{AddSource: true, Level: level})
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	structured.Store(true)
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt":
		return slog.NewTextHandler(w, opts), nil
	case "color":
		return tint.NewHandler(w, &tint.Options{
			AddSource: opts.AddSource,
			Level:     opts.Level,
			NoColor:   !isTerminal(w),
		}), nil
	}
	return nil, fmt.Errorf("invalid log-fmt %q: expected json, logfmt or color", format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func emit(level slog.Level, msg string, args ...any) {
	// Skip runtime.Callers, emit and the exported wrapper.
	const skip = 3

	if !structured.Load() {
		line := glogMessage(msg, args)
		switch {
		case level >= slog.LevelError:
			glog.ErrorDepth(skip-1, line)
		case level >= slog.LevelWarn:
			glog.WarningDepth(skip-1, line)
		case level >= slog.LevelInfo:
			glog.InfoDepth(skip-1, line)
		default:
			if glog.V(1) {
				glog.InfoDepth(skip-1, line)
			}
		}
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

// glogMessage renders msg followed by its attributes as key=value pairs,
// pairing arguments the way slog.Logger does.
func glogMessage(msg string, args []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for len(args) > 0 {
		var attr slog.Attr
		switch a := args[0].(type) {
		case slog.Attr:
			attr, args = a, args[1:]
		case string:
			if len(args) == 1 {
				attr, args = slog.String(badKey, a), nil
			} else {
				attr, args = slog.Any(a, args[1]), args[2:]
			}
		default:
			attr, args = slog.Any(badKey, a), args[1:]
		}
		fmt.Fprintf(&b, " %s=%v", attr.Key, attr.Value)
	}
	return b.String()
}

// badKey is the key slog itself uses for an argument without one.
const badKey = "!BADKEY"

// Enabled reports whether a call at level would produce output. Under glog,
// debug output requires -v=1 or higher.
func Enabled(level slog.Level) bool {
	if structured.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return bool(glog.V(1))
	}
	return true
}

// DebugS logs msg and its key/value pairs at debug level.
func DebugS(msg string, args ...any) { emit(slog.LevelDebug, msg, args...) }

// InfoS logs msg and its key/value pairs at info level.
func InfoS(msg string, args ...any) { emit(slog.LevelInfo, msg, args...) }

// WarnS logs msg and its key/value pairs at warn level.
func WarnS(msg string, args ...any) { emit(slog.LevelWarn, msg, args...) }

// ErrorS logs msg and its key/value pairs at error level.
func ErrorS(msg string, args ...any) { emit(slog.LevelError, msg, args...) }

// SetLogger routes all calls to logger until the returned func is called.
func SetLogger(logger *slog.Logger) (restore func()) {
	if logger == nil {
		return func() {}
	}

	wasStructured := structured.Load()
	previous := slog.Default()
	slog.SetDefault(logger)
	structured.Store(true)

	return func() {
		slog.SetDefault(previous)
		structured.Store(wasStructured)
	}
}

// SetOutput changes where Init points the structured handler. It has no
// effect on a handler that is already installed.
func SetOutput(w io.Writer) {
	output = w
}

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

// Package log provides a thin adapter around glog with optional structured
// logging via slog.
//
// By default, it uses glog and its flags. Structured logging is enabled only
// when the --log-fmt flag is explicitly set.
package log

import (
	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"vitess.io/codepage/go/flagutil"
)

var (
	// Flush ensures any pending I/O is written.
	Flush = glog.Flush

	// Infof logs to the INFO log through glog.
	Infof = glog.Infof
	// Warningf logs to the WARNING and INFO logs through glog.
	Warningf = glog.Warningf
	// Errorf logs to the ERROR, WARNING, and INFO logs through glog.
	Errorf = glog.Errorf
)

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	flagutil.SetFlagStringVar(fs, &logFormat, "log-fmt", "json", "format for structured logging output: json, logfmt or color")
	flagutil.SetFlagStringVar(fs, &logLevel, "log-level", "info", "minimum structured logging level: info, warn, debug, or error")
}

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

// Package flagutil holds helpers for registering pflag flags with
// consistent naming across commands.
package flagutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

// warnings is where naming complaints are written.
var warnings io.Writer = os.Stderr

func warnUnderscores(name string) {
	if strings.Contains(name, "_") {
		fmt.Fprintf(warnings, "[WARNING] flag %q: use dashes instead of underscores in flag names\n", name)
	}
}

func setFlagVar[T any](fs *pflag.FlagSet, p *T, name string, def T, usage string,
	setFunc func(fs *pflag.FlagSet, p *T, name string, def T, usage string)) {
	warnUnderscores(name)
	setFunc(fs, p, name, def, usage)
}

func SetFlagIntVar(fs *pflag.FlagSet, p *int, name string, def int, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).IntVar)
}

func SetFlagBoolVar(fs *pflag.FlagSet, p *bool, name string, def bool, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).BoolVar)
}

func SetFlagStringVar(fs *pflag.FlagSet, p *string, name string, def string, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).StringVar)
}

var (
	deprecationMu      sync.Mutex
	deprecationEmitted = map[string]bool{}
)

// NormalizeUnderscoresToDashes is a pflag normalize func that accepts
// underscored spellings of dashed flags, warning once per name.
func NormalizeUnderscoresToDashes(f *pflag.FlagSet, name string) pflag.NormalizedName {
	// glog registers these with underscores.
	switch name {
	case "log_dir", "log_link", "log_backtrace_at":
		return pflag.NormalizedName(name)
	}

	if !strings.Contains(name, "_") || strings.Contains(name, "-") {
		return pflag.NormalizedName(name)
	}

	normalized := strings.ReplaceAll(name, "_", "-")

	deprecationMu.Lock()
	defer deprecationMu.Unlock()
	if !deprecationEmitted[name] {
		deprecationEmitted[name] = true
		fmt.Fprintf(warnings, "Flag --%s has been deprecated, use --%s instead\n", name, normalized)
	}
	return pflag.NormalizedName(normalized)
}

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

package command

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
)

const (
	formatHex = "hex"
	formatRaw = "raw"
)

func checkFormat(flag, format string) error {
	switch format {
	case formatHex, formatRaw:
		return nil
	}
	return fmt.Errorf("invalid --%s %q: expected %s or %s", flag, format, formatHex, formatRaw)
}

// readInput returns the arguments joined by sep, or all of r when there
// are none.
func readInput(r io.Reader, args []string, sep string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, sep)), nil
	}
	return io.ReadAll(r)
}

// parseHex decodes hex digits, ignoring any whitespace between them.
func parseHex(src []byte) ([]byte, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(src))

	out, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return out, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func writeBytes(w io.Writer, b []byte, format string) error {
	var err error
	switch format {
	case formatHex:
		_, err = fmt.Fprintln(w, hex.EncodeToString(b))
	default:
		_, err = w.Write(b)
	}
	return err
}

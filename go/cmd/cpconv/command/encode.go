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
	"github.com/spf13/cobra"

	"vitess.io/codepage/go/flagutil"
	"vitess.io/codepage/go/log"
)

var (
	encodeArgs = struct {
		Codepage int
		Output   string
	}{}

	Encode = &cobra.Command{
		Use:   "encode [text ...]",
		Short: "Encodes text into the bytes of a code page.",
		Long: "Encodes the arguments, joined by single spaces, or standard input when no arguments are given. " +
			"Output is hex by default, or the raw bytes with `--output raw`.",
		Example: "cpconv encode --codepage 869 αβ",
		RunE:    commandEncode,
	}
)

func commandEncode(cmd *cobra.Command, args []string) error {
	output := settings.GetString("output")
	if err := checkFormat("output", output); err != nil {
		return err
	}

	c, err := coding()
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args, " ")
	if err != nil {
		return err
	}

	out, err := c.Encode(string(text))
	if err != nil {
		log.WarnS("encode failed", "codepage", c.Codepage(), "error", err)
		return err
	}

	w := cmd.OutOrStdout()
	if output == formatRaw && isTerminal(w) {
		log.WarnS("writing raw bytes to a terminal", "codepage", c.Codepage(), "bytes", len(out))
	}
	return writeBytes(w, out, output)
}

func init() {
	registerCodepageFlag(Encode, &encodeArgs.Codepage)
	flagutil.SetFlagStringVar(Encode.Flags(), &encodeArgs.Output, "output", formatHex, "Output format: hex or raw.")

	Root.AddCommand(Encode)
}

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
	"fmt"

	"github.com/spf13/cobra"

	"vitess.io/codepage/go/flagutil"
	"vitess.io/codepage/go/log"
)

var (
	decodeArgs = struct {
		Codepage int
		Lossy    bool
		Input    string
	}{}

	Decode = &cobra.Command{
		Use:   "decode [hex ...]",
		Short: "Decodes the bytes of a code page into text.",
		Long: "Decodes hex digits given as arguments, or standard input when no arguments are given. " +
			"Standard input is read as hex by default, or as raw bytes with `--input raw`. " +
			"With `--lossy`, invalid input is replaced by U+FFFD instead of failing.",
		Example: "cpconv decode --codepage 1257 e0fe",
		RunE:    commandDecode,
	}
)

func commandDecode(cmd *cobra.Command, args []string) error {
	input := settings.GetString("input")
	if err := checkFormat("input", input); err != nil {
		return err
	}

	c, err := coding()
	if err != nil {
		return err
	}

	src, err := readInput(cmd.InOrStdin(), args, "")
	if err != nil {
		return err
	}
	if input == formatHex || len(args) > 0 {
		if src, err = parseHex(src); err != nil {
			return err
		}
	}

	var text string
	if settings.GetBool("lossy") {
		text = c.DecodeLossy(src)
	} else if text, err = c.Decode(src); err != nil {
		log.WarnS("decode failed", "codepage", c.Codepage(), "bytes", len(src), "error", err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func init() {
	registerCodepageFlag(Decode, &decodeArgs.Codepage)
	flagutil.SetFlagBoolVar(Decode.Flags(), &decodeArgs.Lossy, "lossy", false, "Replace invalid input with U+FFFD instead of failing.")
	flagutil.SetFlagStringVar(Decode.Flags(), &decodeArgs.Input, "input", formatHex, "Format of standard input: hex or raw.")

	Root.AddCommand(Decode)
}

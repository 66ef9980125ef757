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
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vitess.io/codepage/go/codepage"
)

var Resolve = &cobra.Command{
	Use:   "resolve <codepage> [<codepage> ...]",
	Short: "Shows how each code page would be transcoded.",
	Long: "Prints the backend and name chosen for each code page. " +
		"Code pages that are unknown or unsupported are listed too, and make the command fail.",
	Args: cobra.MinimumNArgs(1),
	RunE: commandResolve,
}

func commandResolve(cmd *cobra.Command, args []string) error {
	cps := make([]uint16, 0, len(args))
	for _, arg := range args {
		cp, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid code page %q: %w", arg, err)
		}
		cps = append(cps, uint16(cp))
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Code Page", "Kind", "Name")

	failed := 0
	for _, cp := range cps {
		var kind, name string
		c, err := codepage.New(cp)
		switch {
		case errors.Is(err, codepage.ErrUnsupportedCodepage):
			kind, name = "unsupported", codepage.UnsupportedName(cp)
		case errors.Is(err, codepage.ErrUnknownCodepage):
			kind, name = "unknown", "-"
		default:
			kind, name = c.Kind().String(), c.Name()
		}
		if err != nil {
			failed++
		}
		if err := table.Append([]string{strconv.Itoa(int(cp)), kind, name}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d code pages cannot be transcoded", failed, len(cps))
	}
	return nil
}

func init() {
	Root.AddCommand(Resolve)
}

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
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"vitess.io/codepage/go/codepage"
	"vitess.io/codepage/go/flagutil"
)

var (
	listArgs = struct {
		Unsupported bool
		Format      string
	}{}

	List = &cobra.Command{
		Use:   "list",
		Short: "Lists the supported code pages.",
		Long: "Lists every code page that can be transcoded, or with `--unsupported` those that are recognized but declined. " +
			"`--format` selects a table, JSON or YAML.",
		Args: cobra.NoArgs,
		RunE: commandList,
	}
)

type listEntry struct {
	Codepage uint16 `json:"codepage"`
	Kind     string `json:"kind,omitempty"`
	Name     string `json:"name"`
}

func catalog(unsupported bool) []listEntry {
	if unsupported {
		cps := codepage.Unsupported()
		entries := make([]listEntry, 0, len(cps))
		for _, cp := range cps {
			entries = append(entries, listEntry{Codepage: cp, Name: codepage.UnsupportedName(cp)})
		}
		return entries
	}

	cps := codepage.Codepages()
	entries := make([]listEntry, 0, len(cps))
	for _, cp := range cps {
		c := codepage.MustNew(cp)
		entries = append(entries, listEntry{Codepage: cp, Kind: c.Kind().String(), Name: c.Name()})
	}
	return entries
}

func commandList(cmd *cobra.Command, args []string) error {
	unsupported := settings.GetBool("unsupported")
	format := settings.GetString("format")

	entries := catalog(unsupported)
	w := cmd.OutOrStdout()

	switch format {
	case "table":
		return renderList(w, entries, !unsupported)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		out, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("invalid --format %q: expected table, json or yaml", format)
}

func renderList(w io.Writer, entries []listEntry, withKind bool) error {
	table := tablewriter.NewWriter(w)
	if withKind {
		table.Header("Code Page", "Kind", "Name")
	} else {
		table.Header("Code Page", "Name")
	}

	for _, e := range entries {
		row := []string{strconv.Itoa(int(e.Codepage)), e.Kind, e.Name}
		if !withKind {
			row = []string{row[0], e.Name}
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	flagutil.SetFlagBoolVar(List.Flags(), &listArgs.Unsupported, "unsupported", false, "List recognized code pages that cannot be transcoded.")
	flagutil.SetFlagStringVar(List.Flags(), &listArgs.Format, "format", "table", "Output format: table, json or yaml.")

	Root.AddCommand(List)
}

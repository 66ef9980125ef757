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
	goflag "flag"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vitess.io/codepage/go/codepage"
	"vitess.io/codepage/go/flagutil"
	"vitess.io/codepage/go/log"
)

var (
	configFile string

	// settings merges, in decreasing precedence, flags set on the command
	// line, CPCONV_* environment variables, the config file and flag
	// defaults.
	settings = viper.New()

	Root = &cobra.Command{
		Use:   "cpconv",
		Short: "cpconv converts text to and from Windows code pages.",
		Long: "`cpconv` encodes UTF-8 text into the byte form of a Windows code page, decodes such bytes back into text, " +
			"and reports which code pages are known.\n\n" +
			"Defaults for subcommand flags such as `--codepage`, `--lossy`, `--output`, `--input` and `--format` " +
			"may come from a config file (`--config`) or from `CPCONV_`-prefixed environment variables.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Flags()); err != nil {
				return err
			}
			return loadSettings(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}
)

func init() {
	// Applies to every subcommand's flags as well, including ones added later.
	Root.SetGlobalNormalizationFunc(flagutil.NormalizeUnderscoresToDashes)

	fs := Root.PersistentFlags()
	fs.AddGoFlagSet(goflag.CommandLine)
	log.RegisterFlags(fs)

	flagutil.SetFlagStringVar(fs, &configFile, "config", "", "Path to a YAML, TOML or JSON file with default settings.")
}

func loadSettings(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("CPCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("cannot read config %v: %w", configFile, err)
		}
		log.DebugS("loaded config", "path", v.ConfigFileUsed())
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	settings = v
	return nil
}

// registerCodepageFlag adds --codepage to a conversion command.
func registerCodepageFlag(cmd *cobra.Command, p *int) {
	flagutil.SetFlagIntVar(cmd.Flags(), p, "codepage", 65001, "Windows code page number.")
}

// coding resolves the effective --codepage setting.
func coding() (codepage.Coding, error) {
	cp := settings.GetInt("codepage")
	if cp < 0 || cp > math.MaxUint16 {
		return codepage.Coding{}, fmt.Errorf("code page %d: %w", cp, codepage.ErrUnknownCodepage)
	}

	c, err := codepage.New(uint16(cp))
	if err != nil {
		return codepage.Coding{}, err
	}
	log.DebugS("resolved code page", "codepage", cp, "kind", c.Kind().String(), "name", c.Name())
	return c, nil
}

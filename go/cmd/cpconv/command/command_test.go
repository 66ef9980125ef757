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
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"sigs.k8s.io/yaml"

	"vitess.io/codepage/go/codepage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("github.com/golang/glog.(*fileSink).flushDaemon"),
		goleak.IgnoreTopFunction("github.com/golang/glog.(*loggingT).flushDaemon"),
	)
}

// resetFlags puts every flag changed by a previous run back to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(Root)

	var out bytes.Buffer
	Root.SetIn(strings.NewReader(stdin))
	Root.SetOut(&out)
	Root.SetErr(io.Discard)
	Root.SetArgs(args)

	err := Root.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "greek",
			args: []string{"encode", "--codepage", "869", "αβ"},
			want: "d6d7\n",
		},
		{
			name: "arguments joined by spaces",
			args: []string{"encode", "--codepage", "1252", "a", "b"},
			want: "612062\n",
		},
		{
			name:  "raw from stdin",
			stdin: "A",
			args:  []string{"encode", "--codepage", "1201", "--output", "raw"},
			want:  "\x00A",
		},
		{
			name: "default code page is utf-8",
			args: []string{"encode", "é"},
			want: "c3a9\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := run(t, "", "encode", "--codepage", "1257", "😀")
	assert.ErrorIs(t, err, codepage.ErrStringEncoding)

	_, err = run(t, "", "encode", "--codepage", "12000", "x")
	assert.ErrorIs(t, err, codepage.ErrUnsupportedCodepage)

	_, err = run(t, "", "encode", "--codepage", "70000", "x")
	assert.ErrorIs(t, err, codepage.ErrUnknownCodepage)

	_, err = run(t, "", "encode", "--output", "base64", "x")
	assert.ErrorContains(t, err, "invalid --output")
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "baltic",
			args: []string{"decode", "--codepage", "1257", "e0fe"},
			want: "ąž\n",
		},
		{
			name: "hex split across arguments",
			args: []string{"decode", "--codepage", "1257", "e0", "fe"},
			want: "ąž\n",
		},
		{
			name:  "hex from stdin with whitespace",
			stdin: "d6 d7\n",
			args:  []string{"decode", "--codepage", "869"},
			want:  "αβ\n",
		},
		{
			name:  "raw from stdin",
			stdin: "h\xc3\xa9",
			args:  []string{"decode", "--input", "raw"},
			want:  "hé\n",
		},
		{
			name: "lossy",
			args: []string{"decode", "--codepage", "869", "--lossy", "d693"},
			want: "α\uFFFD\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := run(t, "", "decode", "--codepage", "869", "d693")
	assert.ErrorIs(t, err, codepage.ErrStringDecoding)

	_, err = run(t, "", "decode", "zz")
	assert.ErrorContains(t, err, "invalid hex input")

	_, err = run(t, "", "decode", "--input", "octal", "00")
	assert.ErrorContains(t, err, "invalid --input")
}

func TestSettingsFromEnvironment(t *testing.T) {
	t.Setenv("CPCONV_CODEPAGE", "1257")
	t.Setenv("CPCONV_LOSSY", "true")

	out, err := run(t, "", "decode", "e0a1")
	require.NoError(t, err)
	assert.Equal(t, "ą\uFFFD\n", out)

	// Flags win over the environment.
	out, err = run(t, "", "decode", "--codepage", "65001", "41")
	require.NoError(t, err)
	assert.Equal(t, "A\n", out)
}

func TestSettingsFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codepage: 869\noutput: hex\n"), 0o600))

	out, err := run(t, "", "encode", "--config", path, "αβ")
	require.NoError(t, err)
	assert.Equal(t, "d6d7\n", out)

	_, err = run(t, "", "encode", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "x")
	assert.ErrorContains(t, err, "cannot read config")
}

func TestResolve(t *testing.T) {
	out, err := run(t, "", "resolve", "1252", "869", "65001", "1201")
	require.NoError(t, err)
	for _, want := range []string{"windows-1252", "large-table", "ibm869", "oem-table", "identity", "UTF-16BE"} {
		assert.Contains(t, out, want)
	}

	out, err = run(t, "", "resolve", "869", "12000", "0")
	assert.ErrorContains(t, err, "2 of 3 code pages")
	assert.Contains(t, out, "UTF-32LE")
	assert.Contains(t, out, "unknown")

	_, err = run(t, "", "resolve", "65536")
	assert.ErrorContains(t, err, "invalid code page")

	_, err = run(t, "", "resolve")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	for _, cp := range []string{"437", "869", "1200", "20127", "65001"} {
		assert.Contains(t, out, cp)
	}
	assert.NotContains(t, out, "UTF-32LE")

	out, err = run(t, "", "list", "--unsupported")
	require.NoError(t, err)
	assert.Contains(t, out, "12000")
	assert.Contains(t, out, "UTF-32LE")
}

func TestListFormats(t *testing.T) {
	out, err := run(t, "", "list", "--format", "json")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, catalog(false), entries)

	out, err = run(t, "", "list", "--unsupported", "--format", "yaml")
	require.NoError(t, err)

	entries = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	assert.Equal(t, catalog(true), entries)
	assert.Contains(t, entries, listEntry{Codepage: 12000, Name: "UTF-32LE"})
	assert.Contains(t, out, "codepage: 12000")
	assert.NotContains(t, out, "kind:")

	_, err = run(t, "", "list", "--format", "csv")
	assert.ErrorContains(t, err, "invalid --format")
}

func TestRawOutputToBuffer(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

func TestUnderscoredFlagNames(t *testing.T) {
	out, err := run(t, "", "encode", "--log_level", "warn", "--codepage", "869", "αβ")
	require.NoError(t, err)
	assert.Equal(t, "d6d7\n", out)
}

func TestListSettingsFromEnvironment(t *testing.T) {
	t.Setenv("CPCONV_FORMAT", "json")
	t.Setenv("CPCONV_UNSUPPORTED", "true")

	out, err := run(t, "", "list")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, catalog(true), entries)
}

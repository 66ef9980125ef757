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

package flagutil

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := warnings
	warnings = &buf
	t.Cleanup(func() { warnings = prev })
	return &buf
}

func TestSetFlagVars(t *testing.T) {
	buf := captureWarnings(t)

	var (
		n int
		b bool
		s string
	)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	SetFlagIntVar(fs, &n, "codepage", 65001, "")
	SetFlagBoolVar(fs, &b, "lossy", false, "")
	SetFlagStringVar(fs, &s, "output", "raw", "")

	assert.Equal(t, 65001, n)
	assert.Equal(t, "raw", s)

	require.NoError(t, fs.Parse([]string{"--codepage=869", "--lossy", "--output", "hex"}))
	assert.Equal(t, 869, n)
	assert.True(t, b)
	assert.Equal(t, "hex", s)
	assert.Empty(t, buf.String())
}

func TestSetFlagVarWarnsOnUnderscores(t *testing.T) {
	buf := captureWarnings(t)

	var n int
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	SetFlagIntVar(fs, &n, "code_page", 0, "")
	assert.Contains(t, buf.String(), `flag "code_page"`)
}

func TestNormalizeUnderscoresToDashes(t *testing.T) {
	buf := captureWarnings(t)
	deprecationEmitted = map[string]bool{}

	testCases := []struct {
		in, want string
	}{
		{"log_dir", "log_dir"},
		{"log-level", "log-level"},
		{"log_level", "log-level"},
		{"mixed_name-here", "mixed_name-here"},
	}
	for _, tc := range testCases {
		assert.Equal(t, pflag.NormalizedName(tc.want), NormalizeUnderscoresToDashes(nil, tc.in), tc.in)
	}

	NormalizeUnderscoresToDashes(nil, "log_level")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("--log_level has been deprecated")))
}

func TestNormalizeOnFlagSet(t *testing.T) {
	captureWarnings(t)

	var s string
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(NormalizeUnderscoresToDashes)
	SetFlagStringVar(fs, &s, "log-fmt", "", "")

	require.NoError(t, fs.Parse([]string{"--log_fmt=json"}))
	assert.Equal(t, "json", s)
}

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

package codepage

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOEMTablesInLockstep(t *testing.T) {
	encode := oemEncodeTables()
	require.Len(t, encode, len(oemPages))

	for cp, page := range oemPages {
		fromUnicode, ok := encode[cp]
		require.True(t, ok, "cp%d has no encode table", cp)

		mapped := 0
		for b, r := range page.toUnicode {
			if r == RuneError {
				continue
			}
			mapped++
			assert.Equal(t, byte(b), fromUnicode[r], "cp%d U+%04X", cp, r)
		}
		assert.Len(t, fromUnicode, mapped, "cp%d", cp)
	}
}

func TestOEMEncodeTablesShared(t *testing.T) {
	a := MustNew(737)
	b := MustNew(737)
	assert.Same(t, a.toUnicode, b.toUnicode)

	// Both codings must see the very same lazily built map.
	assert.Equal(t, reflect.ValueOf(a.fromUnicode).Pointer(), reflect.ValueOf(b.fromUnicode).Pointer())
}

func TestOEMUnmapped(t *testing.T) {
	testCases := []struct {
		cp    uint16
		in    []byte
		lossy string
	}{
		{869, []byte{0x80, 'a'}, "�a"},
		{857, []byte{0xd5}, "�"},
		{20127, []byte("ok\x80\xff"), "ok��"},
		{864, []byte{0x25}, "٪"},
	}

	for _, tc := range testCases {
		c := MustNew(tc.cp)
		assert.Equal(t, tc.lossy, c.DecodeLossy(tc.in), "cp%d", tc.cp)

		_, err := c.Decode(tc.in)
		if tc.cp == 864 {
			assert.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, ErrStringDecoding, "cp%d", tc.cp)
	}
}

func TestOEMEncodeASCII(t *testing.T) {
	c := MustNew(20127)
	out, err := c.Encode("\x00\x7f")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x7f}, out)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF16ByteOrder(t *testing.T) {
	le := MustNew(1200)
	be := MustNew(1201)

	out, err := le.Encode("ąž")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x01, 0x7e, 0x01}, out)

	s, err := le.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "ąž", s)
	assert.Equal(t, "ąž", le.DecodeLossy(out))

	out, err = be.Encode("ąž")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x05, 0x01, 0x7e}, out)

	s, err = be.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "ąž", s)
}

func TestUTF16SurrogatePairs(t *testing.T) {
	le := MustNew(1200)
	be := MustNew(1201)

	out, err := le.Encode("🏀")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x3c, 0xd8, 0xc0, 0xdf}, out)

	out, err = be.Encode("🏀")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xd8, 0x3c, 0xdf, 0xc0}, out)

	s, err := be.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "🏀", s)
}

func TestUTF16Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		cp    uint16
		in    []byte
		lossy string
	}{
		{
			name:  "odd length le",
			cp:    1200,
			in:    []byte{0x41, 0x00, 0x42},
			lossy: "A�",
		},
		{
			name:  "odd length be",
			cp:    1201,
			in:    []byte{0x00, 0x41, 0x42},
			lossy: "A�",
		},
		{
			name:  "single byte",
			cp:    1201,
			in:    []byte{0xff},
			lossy: "�",
		},
		{
			name:  "lone high surrogate at end",
			cp:    1200,
			in:    []byte{0x41, 0x00, 0x3c, 0xd8},
			lossy: "A�",
		},
		{
			name:  "high surrogate followed by bmp",
			cp:    1200,
			in:    []byte{0x3c, 0xd8, 0x41, 0x00},
			lossy: "�A",
		},
		{
			name:  "lone low surrogate",
			cp:    1201,
			in:    []byte{0xdf, 0xc0, 0x00, 0x41},
			lossy: "�A",
		},
		{
			name:  "two high surrogates",
			cp:    1201,
			in:    []byte{0xd8, 0x3c, 0xd8, 0x3c},
			lossy: "��",
		},
		{
			name:  "high surrogate then odd byte",
			cp:    1200,
			in:    []byte{0x3c, 0xd8, 0x41},
			lossy: "��",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := MustNew(tc.cp)
			_, err := c.Decode(tc.in)
			assert.ErrorIs(t, err, ErrStringDecoding)
			assert.Equal(t, tc.lossy, c.DecodeLossy(tc.in))
		})
	}
}

func TestUTF16EncodeReplacementCharacter(t *testing.T) {
	out, err := MustNew(1200).Encode("�")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfd, 0xff}, out)

	s, err := MustNew(1200).Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "�", s)
}

func TestUTF16EncodeInvalidUTF8(t *testing.T) {
	out, err := MustNew(1201).Encode("a\xffb")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 'a', 0xff, 0xfd, 0x00, 'b'}, out)
}

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
	"strings"
	"unicode/utf16"
)

// 0xd800-0xdc00 encodes the high 10 bits of a pair.
// 0xdc00-0xe000 encodes the low 10 bits of a pair.
// the value is those 20 bits plus 0x10000.
const (
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000
)

func encodeUTF16(order byteOrder, s string) []byte {
	out := make([]byte, 0, 2*len(s))
	for _, r := range s {
		if r1, r2 := utf16.EncodeRune(r); r1 != RuneError {
			out = order.AppendUint16(out, uint16(r1))
			out = order.AppendUint16(out, uint16(r2))
			continue
		}
		out = order.AppendUint16(out, uint16(r))
	}
	return out
}

// decodeUTF16 reassembles code units in the given byte order. In lossy mode
// an unpaired surrogate, and a dangling final byte, each become one
// RuneError regardless of byte order.
func decodeUTF16(order byteOrder, src []byte, lossy bool) (string, error) {
	var out strings.Builder
	out.Grow(len(src) / 2 * 3)

	for len(src) >= 2 {
		r1 := order.Uint16(src)
		if r1 < surr1 || surr3 <= r1 {
			out.WriteRune(rune(r1))
			src = src[2:]
			continue
		}

		if r1 < surr2 && len(src) >= 4 {
			r2 := order.Uint16(src[2:])
			if surr2 <= r2 && r2 < surr3 {
				out.WriteRune(utf16.DecodeRune(rune(r1), rune(r2)))
				src = src[4:]
				continue
			}
		}

		if !lossy {
			return "", ErrStringDecoding
		}
		out.WriteRune(RuneError)
		src = src[2:]
	}

	if len(src) == 1 {
		if !lossy {
			return "", ErrStringDecoding
		}
		out.WriteRune(RuneError)
	}
	return out.String(), nil
}

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
	"sync"
	"unicode/utf8"
)

type oemPage struct {
	name      string
	toUnicode *[256]rune
}

// oemPages holds the single-byte pages missing from golang.org/x/text.
var oemPages = map[uint16]oemPage{
	720:   {"DOS-720", &toUnicode720},
	737:   {"ibm737", &toUnicode737},
	775:   {"ibm775", &toUnicode775},
	857:   {"ibm857", &toUnicode857},
	861:   {"ibm861", &toUnicode861},
	864:   {"IBM864", &toUnicode864},
	869:   {"ibm869", &toUnicode869},
	20127: {"us-ascii", &toUnicode20127},
}

// oemEncodeTables inverts every decode table the first time it is needed.
// Deriving the encode side from the decode side keeps both key sets equal.
var oemEncodeTables = sync.OnceValue(func() map[uint16]map[rune]byte {
	tables := make(map[uint16]map[rune]byte, len(oemPages))
	for cp, page := range oemPages {
		fromUnicode := make(map[rune]byte, len(page.toUnicode))
		for b, r := range page.toUnicode {
			if r == RuneError {
				continue
			}
			if _, dup := fromUnicode[r]; !dup {
				fromUnicode[r] = byte(b)
			}
		}
		tables[cp] = fromUnicode
	}
	return tables
})

func encodeOEM(fromUnicode map[rune]byte, s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		// Invalid UTF-8 shows up as RuneError, which no table maps.
		b, ok := fromUnicode[r]
		if !ok {
			return nil, ErrStringEncoding
		}
		out = append(out, b)
	}
	return out, nil
}

func decodeOEM(toUnicode *[256]rune, src []byte, lossy bool) (string, error) {
	var out strings.Builder
	out.Grow(len(src))

	for _, b := range src {
		r := toUnicode[b]
		if r == RuneError && !lossy {
			return "", ErrStringDecoding
		}
		if r < utf8.RuneSelf {
			out.WriteByte(byte(r))
		} else {
			out.WriteRune(r)
		}
	}
	return out.String(), nil
}

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
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"vitess.io/codepage/go/hack"
)

// RuneError is the replacement character written by DecodeLossy in place
// of every invalid input unit.
const RuneError = utf8.RuneError

// Kind identifies the backend a Coding was resolved to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindLargeTable
	KindOEMTable
	KindUTF16
	KindIdentity
)

func (k Kind) String() string {
	switch k {
	case KindLargeTable:
		return "large-table"
	case KindOEMTable:
		return "oem-table"
	case KindUTF16:
		return "utf16"
	case KindIdentity:
		return "identity"
	default:
		return "invalid"
	}
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Coding is a transcoder for a single Windows code page. It is resolved
// once with New and is safe for concurrent use: it only references tables
// that are never modified after construction.
type Coding struct {
	cp   uint16
	kind Kind
	name string

	// KindLargeTable
	enc encoding.Encoding

	// KindOEMTable
	toUnicode   *[256]rune
	fromUnicode map[rune]byte

	// KindUTF16
	order byteOrder
}

// New returns the Coding for Windows code page cp.
//
// The returned error wraps ErrUnsupportedCodepage when cp is a known code
// page that cannot be transcoded, and ErrUnknownCodepage when cp is not
// known at all.
func New(cp uint16) (Coding, error) {
	switch cp {
	case 65001:
		return Coding{cp: cp, kind: KindIdentity, name: "UTF-8"}, nil
	case 1200:
		return Coding{cp: cp, kind: KindUTF16, name: "UTF-16LE", order: binary.LittleEndian}, nil
	case 1201:
		return Coding{cp: cp, kind: KindUTF16, name: "UTF-16BE", order: binary.BigEndian}, nil
	}

	if _, declined := unsupported[cp]; declined {
		return Coding{}, resolveError(cp, ErrUnsupportedCodepage)
	}

	if lt, ok := largeTables[cp]; ok {
		return Coding{cp: cp, kind: KindLargeTable, name: lt.name, enc: lt.enc}, nil
	}

	// The decode and encode halves of an OEM page are looked up separately;
	// a page missing either one cannot be used.
	dec, ok := oemPages[cp]
	if !ok {
		return Coding{}, resolveError(cp, ErrUnknownCodepage)
	}
	enc, ok := oemEncodeTables()[cp]
	if !ok {
		return Coding{}, resolveError(cp, ErrUnknownCodepage)
	}
	return Coding{cp: cp, kind: KindOEMTable, name: dec.name, toUnicode: dec.toUnicode, fromUnicode: enc}, nil
}

// MustNew is like New but panics if cp cannot be resolved.
func MustNew(cp uint16) Coding {
	c, err := New(cp)
	if err != nil {
		panic(err)
	}
	return c
}

// Codepage returns the Windows code page number c was resolved from.
func (c Coding) Codepage() uint16 {
	return c.cp
}

// Kind returns the backend c was resolved to.
func (c Coding) Kind() Kind {
	return c.kind
}

// Name returns the conventional name of the encoding, e.g. "windows-1257".
func (c Coding) Name() string {
	return c.name
}

func (c Coding) String() string {
	return fmt.Sprintf("%s (cp%d, %s)", c.name, c.cp, c.kind)
}

// Encode converts s into the byte representation of c. It fails with
// ErrStringEncoding, and returns no output, if any character of s cannot
// be represented.
func (c Coding) Encode(s string) ([]byte, error) {
	switch c.kind {
	case KindLargeTable:
		return encodeLargeTable(c.enc, s)
	case KindOEMTable:
		return encodeOEM(c.fromUnicode, s)
	case KindUTF16:
		return encodeUTF16(c.order, s), nil
	case KindIdentity:
		return append(make([]byte, 0, len(s)), s...), nil
	default:
		return nil, ErrStringEncoding
	}
}

// Decode converts b from the byte representation of c. It fails with
// ErrStringDecoding if b contains any byte sequence that is invalid in c.
//
// For code page 65001 the result aliases b when b is valid UTF-8; the
// caller must not modify b while the string is in use.
func (c Coding) Decode(b []byte) (string, error) {
	switch c.kind {
	case KindLargeTable:
		return decodeLargeTable(c.enc, b)
	case KindOEMTable:
		return decodeOEM(c.toUnicode, b, false)
	case KindUTF16:
		return decodeUTF16(c.order, b, false)
	case KindIdentity:
		if !utf8.Valid(b) {
			return "", ErrStringDecoding
		}
		return hack.String(b), nil
	default:
		return "", ErrStringDecoding
	}
}

// DecodeLossy is like Decode but never fails: every invalid unit of b is
// replaced by RuneError. The aliasing rules of Decode apply.
func (c Coding) DecodeLossy(b []byte) string {
	var s string
	switch c.kind {
	case KindLargeTable:
		s = decodeLargeTableLossy(c.enc, b)
	case KindOEMTable:
		s, _ = decodeOEM(c.toUnicode, b, true)
	case KindUTF16:
		s, _ = decodeUTF16(c.order, b, true)
	case KindIdentity:
		s = decodeUTF8Lossy(b)
	}
	return s
}

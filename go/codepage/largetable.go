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
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"vitess.io/codepage/go/hack"
)

// encodeLargeTable relies on x/text encoders returning an error, rather
// than a replacement byte, for runes outside the repertoire.
func encodeLargeTable(enc encoding.Encoding, s string) ([]byte, error) {
	out, err := enc.NewEncoder().Bytes(hack.StringBytes(s))
	if err != nil {
		return nil, ErrStringEncoding
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// x/text decoders never fail; they write RuneError for every byte
// sequence they cannot map. A RuneError in the output is only legitimate
// when the encoding itself can represent U+FFFD (GB18030 can), which we
// verify by re-encoding the output.
func decodeLargeTable(enc encoding.Encoding, src []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return "", ErrStringDecoding
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		back, err := enc.NewEncoder().Bytes(out)
		if err != nil || !bytes.Equal(back, src) {
			return "", ErrStringDecoding
		}
	}
	return hack.String(out), nil
}

func decodeLargeTableLossy(enc encoding.Encoding, src []byte) string {
	out, n, err := transform.Bytes(enc.NewDecoder(), src)
	if err != nil {
		// Whatever the decoder refused to consume is replaced byte by byte.
		for range src[n:] {
			out = utf8.AppendRune(out, RuneError)
		}
	}
	return hack.String(out)
}

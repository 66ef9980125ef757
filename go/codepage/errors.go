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
	"errors"
	"fmt"
)

var (
	// ErrStringEncoding is returned by Encode when at least one character
	// of the input has no representation in the target code page.
	ErrStringEncoding = errors.New("string codepage encoding error")

	// ErrStringDecoding is returned by Decode when the input is not valid
	// in the source code page.
	ErrStringDecoding = errors.New("string decoding error")

	// ErrUnknownCodepage is returned by New when no backend recognizes the
	// requested code page.
	ErrUnknownCodepage = errors.New("invalid / unknown Windows code page")

	// ErrUnsupportedCodepage is returned by New for real Windows code pages
	// that this package deliberately does not transcode (UTF-32, UTF-7 and
	// the EBCDIC family).
	ErrUnsupportedCodepage = errors.New("cannot transcode this Windows code page")
)

func resolveError(cp uint16, err error) error {
	return fmt.Errorf("code page %d: %w", cp, err)
}

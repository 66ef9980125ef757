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
	"unicode/utf8"

	"vitess.io/codepage/go/hack"
)

// decodeUTF8Lossy borrows src when it is already valid UTF-8. Otherwise
// every byte that does not start a valid sequence becomes one RuneError.
func decodeUTF8Lossy(src []byte) string {
	if utf8.Valid(src) {
		return hack.String(src)
	}

	out := make([]byte, 0, len(src)+len(src)/2)
	for len(src) > 0 {
		r, width := utf8.DecodeRune(src)
		if r == RuneError && width == 1 {
			out = utf8.AppendRune(out, RuneError)
		} else {
			out = append(out, src[:width]...)
		}
		src = src[width:]
	}
	return hack.String(out)
}

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

package codepage_test

import (
	"errors"
	"fmt"

	"vitess.io/codepage/go/codepage"
)

// Conversions on code page 869 (alternate Greek).
func Example() {
	coding, err := codepage.New(869)
	if err != nil {
		panic(err)
	}

	out, _ := coding.Encode("αβ")
	fmt.Println(out)

	s, _ := coding.Decode([]byte{214, 215})
	fmt.Println(s)

	fmt.Printf("%q\n", coding.DecodeLossy([]byte{214, 147}))

	_, err = coding.Decode([]byte{214, 147})
	fmt.Println(errors.Is(err, codepage.ErrStringDecoding))

	// Output:
	// [214 215]
	// αβ
	// "α�"
	// true
}

func ExampleNew() {
	for _, cp := range []uint16{1257, 12000, 0} {
		coding, err := codepage.New(cp)
		switch {
		case errors.Is(err, codepage.ErrUnsupportedCodepage):
			fmt.Println(cp, "unsupported")
		case errors.Is(err, codepage.ErrUnknownCodepage):
			fmt.Println(cp, "unknown")
		default:
			fmt.Println(cp, coding.Name())
		}
	}

	// Output:
	// 1257 windows-1257
	// 12000 unsupported
	// 0 unknown
}

func ExampleCoding_Encode_utf16() {
	le := codepage.MustNew(1200)
	be := codepage.MustNew(1201)

	a, _ := le.Encode("ąž")
	b, _ := be.Encode("ąž")
	fmt.Printf("% x\n% x\n", a, b)

	// Output:
	// 05 01 7e 01
	// 01 05 01 7e
}

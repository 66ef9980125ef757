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

// Package codepage encodes and decodes strings according to Windows code
// pages, as found in file formats such as RIFF that store a numeric code
// page next to their text fields.
//
// A code page number is resolved once with New into a Coding, which is then
// used for any number of Encode, Decode and DecodeLossy calls. Codings are
// immutable and safe for concurrent use.
//
// Four backends sit behind a Coding:
//
//   - most single-byte Windows, DOS, ISO and Mac pages, and the CJK
//     double-byte pages, come from golang.org/x/text;
//   - the DOS pages x/text lacks (720, 737, 775, 857, 861, 864, 869) and
//     US-ASCII (20127) use tables in this package;
//   - 1200 and 1201 are UTF-16 little and big endian;
//   - 65001 is UTF-8 and is passed through unchanged.
//
// UTF-32 (12000, 12001), UTF-7 (65000) and the EBCDIC pages are recognized
// but not supported: New reports them with ErrUnsupportedCodepage, which is
// distinct from the ErrUnknownCodepage returned for numbers nobody knows.
//
// Decode fails with ErrStringDecoding on any invalid input. DecodeLossy
// never fails and substitutes RuneError for each invalid unit instead.
package codepage

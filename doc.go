// Copyright 2020 The Lax64 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lax64 implements Base64 encoding and lenient Base64 decoding
// using the standard alphabet of RFC 3548 with '=' padding.
//
// The encoder produces the same text as any conforming Base64 encoder:
// every three input bytes become four characters of the alphabet, and a
// one or two byte final group is completed with padding. EncodeChunk
// additionally exposes the incremental step, encoding only whole
// three-byte groups and leaving the remainder to the caller, which
// allows arbitrarily large inputs to be encoded piecewise with padding
// appearing exactly once, at the very end.
//
// The decoder is deliberately more forgiving than RFC 4648 requires.
// Characters outside the alphabet are skipped wherever they occur, so
// text that has been wrapped into lines, indented, quoted or otherwise
// decorated decodes without preparation. Padding is given meaning only
// at the end of the input: the last four significant characters are
// decoded as the final group, honoring up to two '=' characters there,
// while any earlier '=' contributes six zero bits like a regular
// character. More than two '=' among those last four is the one
// malformation the decoder rejects, with ErrPadding.
//
// A final group that is simply cut short, one to three leftover
// characters forming no complete group, is silently dropped. The
// Strict variants turn that case into ErrTruncated instead; they skip
// foreign characters all the same.
//
// All functions are pure and the package holds no mutable state, so
// every function may be called concurrently from any number of
// goroutines.
package lax64 // import "github.com/lax64/lax64"

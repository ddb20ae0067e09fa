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

package lax64

// EncodeChunk encodes the complete three-byte groups at the start of
// src into dst and reports the number of source bytes consumed and the
// number of characters written. The one or two bytes of an incomplete
// final group are not consumed; the caller carries them into a later
// call once more input is available, or into Encode to finish the
// stream. EncodeChunk never writes padding.
//
// dst must hold four bytes for every complete three-byte group of src;
// EncodeChunk panics otherwise.
func EncodeChunk(dst, src []byte) (ns, nd int) {
	n := len(src) / 3
	if len(dst) < n*4 {
		panic("lax64: encode: destination too small")
	}
	for i := 0; i < n; i++ {
		b0, b1, b2 := src[i*3], src[i*3+1], src[i*3+2]
		dst[i*4+0] = alphabet[b0>>2]
		dst[i*4+1] = alphabet[(b0&0x03)<<4|b1>>4]
		dst[i*4+2] = alphabet[(b1&0x0F)<<2|b2>>6]
		dst[i*4+3] = alphabet[b2&0x3F]
	}
	return n * 3, n * 4
}

// Encode writes the Base64 encoding of src to dst and returns the
// slice of dst holding the result. The result length is always a
// multiple of four, with '=' padding completing a final group of one
// or two bytes. Encoding no bytes writes nothing and returns an empty
// slice.
//
// dst must hold at least EncodedLen(len(src)) bytes; Encode panics
// otherwise.
func Encode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst[:0]
	}
	if len(dst) < EncodedLen(len(src)) {
		panic("lax64: encode: destination too small")
	}
	ns, nd := EncodeChunk(dst, src)

	// Zero bits complete the sextets that straddle the missing bytes.
	switch len(src) - ns {
	case 1:
		b0 := src[ns]
		dst[nd+0] = alphabet[b0>>2]
		dst[nd+1] = alphabet[(b0&0x03)<<4]
		dst[nd+2] = padChar
		dst[nd+3] = padChar
		nd += 4
	case 2:
		b0, b1 := src[ns], src[ns+1]
		dst[nd+0] = alphabet[b0>>2]
		dst[nd+1] = alphabet[(b0&0x03)<<4|b1>>4]
		dst[nd+2] = alphabet[(b1&0x0F)<<2]
		dst[nd+3] = padChar
		nd += 4
	}
	return dst[:nd]
}

// EncodeToString returns the Base64 encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	return string(Encode(dst, src))
}

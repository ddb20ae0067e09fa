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

import "errors"

var (
	// ErrPadding reports a malformed termination: more than two '='
	// characters among the last four significant characters of the
	// input.
	ErrPadding = errors.New("lax64: malformed termination: more than two padding characters")

	// ErrTruncated reports a final group that is cut short. Only the
	// Strict decoding variants return it; the plain variants drop the
	// leftover characters silently.
	ErrTruncated = errors.New("lax64: truncated input: incomplete final group")
)

// Decode writes the bytes represented by the Base64 text in src to dst
// and returns the slice of dst holding the result.
//
// Decoding is lenient. Bytes outside the Base64 alphabet, line breaks
// and whitespace included, are skipped wherever they occur. The last
// four significant characters form the final group, which may end in
// one or two '=' characters; a '=' anywhere earlier contributes six
// zero bits like a regular character. When more than two of those last
// four characters are '=', Decode reports ErrPadding. Leftover
// characters that do not fill a group are dropped.
//
// dst must hold at least len(src) bytes; Decode panics otherwise.
func Decode(dst, src []byte) ([]byte, error) {
	return decode(dst, src, false)
}

// DecodeStrict is Decode, except that leftover characters that do not
// fill a final group are reported as ErrTruncated instead of dropped.
// Bytes outside the alphabet are skipped all the same.
func DecodeStrict(dst, src []byte) ([]byte, error) {
	return decode(dst, src, true)
}

// DecodeString returns the bytes represented by the Base64 text in s.
func DecodeString(s string) ([]byte, error) {
	return Decode(make([]byte, len(s)), []byte(s))
}

// DecodeStringStrict is DecodeString with the strictness of
// DecodeStrict.
func DecodeStringStrict(s string) ([]byte, error) {
	return DecodeStrict(make([]byte, len(s)), []byte(s))
}

func decode(dst, src []byte, strict bool) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}
	if len(dst) < len(src) {
		panic("lax64: decode: destination too small")
	}
	body, tail, err := splitTail(src)
	if err != nil {
		return nil, err
	}

	// Body phase. Significant characters accumulate into groups of
	// four; padding this far from the end decodes as zero bits.
	var q [4]byte
	n, k := 0, 0
	for _, c := range body {
		v := decodeTable[c]
		if v == invalidMark {
			continue
		}
		q[k] = v & 0x3F
		k++
		if k == 4 {
			dst[n+0] = q[0]<<2 | q[1]>>4
			dst[n+1] = q[1]<<4 | q[2]>>2
			dst[n+2] = q[2]<<6 | q[3]
			n += 3
			k = 0
		}
	}
	if k != 0 && strict {
		return nil, ErrTruncated
	}

	// Tail phase: the final group, where padding determines how many
	// of its three bytes are real.
	if len(tail) > 0 {
		k = 0
		for _, c := range tail {
			v := decodeTable[c]
			if v == invalidMark {
				continue
			}
			q[k] = v
			k++
			if k == 4 {
				break
			}
		}
		if k < 4 {
			if strict {
				return nil, ErrTruncated
			}
			return dst[:n], nil
		}
		g0, g1, g2 := q[0]&0x3F, q[1]&0x3F, q[2]&0x3F
		dst[n] = g0<<2 | g1>>4
		n++
		if q[2] != padMark {
			dst[n] = g1<<4 | g2>>2
			n++
		}
	}
	return dst[:n], nil
}

// splitTail separates src into the body and the final pad-bearing
// group. It scans backward over the last four significant characters:
// when padding occurs among them, the input from the first of those
// characters on is the tail; when none is padding, the whole input is
// body. More than two padding characters in that run is a malformed
// termination.
func splitTail(src []byte) (body, tail []byte, err error) {
	sig, pads := 0, 0
	i := len(src)
	for i > 0 && sig < 4 {
		v := decodeTable[src[i-1]]
		i--
		if v == invalidMark {
			continue
		}
		sig++
		if v == padMark {
			pads++
		}
	}
	if pads > 2 {
		return nil, nil, ErrPadding
	}
	if pads == 0 {
		return src, nil, nil
	}
	return src[:i], src[i:], nil
}

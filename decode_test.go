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

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/diff"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	for _, tc := range vectors {
		got, err := DecodeString(tc.enc)
		if err != nil {
			t.Errorf("DecodeString(%q): %v", tc.enc, err)
			continue
		}
		if string(got) != tc.plain {
			t.Errorf("DecodeString(%q) = %q; want %q", tc.enc, got, tc.plain)
		}
	}
}

func TestDecodeKnownVector(t *testing.T) {
	got, err := DecodeString("SGVsbG8sIGhvdyBhcmUgeW91IHRvZGF5Pw==")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Hello, how are you today?"; string(got) != want {
		t.Errorf("output differs:\n%s", diff.Diff(string(got), want))
	}
}

// Decoding skips anything outside the alphabet, wherever it occurs.
func TestDecodeTolerant(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"SGVs\nbG8s\nIGhvdyBhcmUgeW91IHRvZGF5Pw==\n", "Hello, how are you today?"},
		{"VGhlIHF1aWNrIGJyb3duIGZveCBqdW1wcyBvdmVyIHRoZSBsYXp5IGRvZy4K\n" +
			"UGFjayBteSBib3ggd2l0aCBmaXZlIGRvemVuIGxpcXVvciBqdWdzLgo=\n",
			"The quick brown fox jumps over the lazy dog.\n" +
				"Pack my box with five dozen liquor jugs.\n"},
		{"Zm9v\r\nYmFy\r\n", "foobar"},
		{" S G V s b G 8 = ", "Hello"},
		{"\tZm9v\tYg==\t", "foob"},
		{"--c3VyZS4=--", "sure."},
		{"%%Zg==%%", "f"},
		{"!!??", ""},
	}
	for _, tc := range testCases {
		got, err := DecodeString(tc.in)
		if err != nil {
			t.Errorf("DecodeString(%q): %v", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, string(got)); d != "" {
			t.Errorf("DecodeString(%q) mismatch (-want +got):\n%s", tc.in, d)
		}
	}
}

// Padding has meaning only among the last four significant characters.
// Earlier '=' decodes as six zero bits like any other character.
func TestDecodeBodyPadding(t *testing.T) {
	testCases := []struct {
		in   string
		want []byte
	}{
		{"QQ==AAAA", []byte{'A', 0, 0, 0, 0, 0}},
		{"Q=Q=", []byte{0x40, 0x04}},
		{"QQQQQ=", []byte{'A', 0x04}},
	}
	for _, tc := range testCases {
		got, err := DecodeString(tc.in)
		if err != nil {
			t.Errorf("DecodeString(%q): %v", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("DecodeString(%q) mismatch (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestDecodeShort(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"A", ""},
		{"AA", ""},
		{"AAA", ""},
		{"AAAA", "\x00\x00\x00"},
		{"=", ""},
		{"==", ""},
		{"Q=", ""},
	}
	for _, tc := range testCases {
		got, err := DecodeString(tc.in)
		if err != nil {
			t.Errorf("DecodeString(%q): %v", tc.in, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("DecodeString(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{"QQ===", "====", "Zg===", "===", "Zm9v===="} {
		_, err := DecodeString(in)
		require.Error(t, err, "input %q", in)
		require.Equal(t, ErrPadding, err, "input %q", in)

		_, err = DecodeStringStrict(in)
		require.Equal(t, ErrPadding, err, "strict input %q", in)
	}
}

func TestDecodeStrict(t *testing.T) {
	testCases := []struct {
		in      string
		lenient string
		err     error // strict outcome; nil means strict agrees with lenient
	}{
		{"Zm9vYg==", "foob", nil},
		{"Zm9v\nYmFy", "foobar", nil},
		{"!!!", "", nil},
		{"", "", nil},
		{"SGVsbG8KQQ", "Hello\n", ErrTruncated},
		{"Q=", "", ErrTruncated},
		{"A", "", ErrTruncated},
		{"QQQQQ=", "A\x04", ErrTruncated},
	}
	for _, tc := range testCases {
		got, err := DecodeString(tc.in)
		require.NoError(t, err, "lenient decode of %q", tc.in)
		require.Equal(t, tc.lenient, string(got), "lenient decode of %q", tc.in)

		got, err = DecodeStringStrict(tc.in)
		if tc.err != nil {
			require.Equal(t, tc.err, err, "strict decode of %q", tc.in)
			continue
		}
		require.NoError(t, err, "strict decode of %q", tc.in)
		require.Equal(t, tc.lenient, string(got), "strict decode of %q", tc.in)
	}
}

// Decode must fill at most the documented len(src) bound and report
// the written prefix.
func TestDecodeBuffer(t *testing.T) {
	src := []byte("Zm9vYmFy")
	dst := bytes.Repeat([]byte{'#'}, 16)
	got, err := Decode(dst, src)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "foobar" {
		t.Errorf("Decode = %q; want %q", got, "foobar")
	}
	if rest := dst[len(got):]; !bytes.Equal(rest, bytes.Repeat([]byte{'#'}, len(rest))) {
		t.Errorf("Decode wrote past its result: %q", rest)
	}
}

func TestRoundTrip(t *testing.T) {
	lengths := make([]int, 0, 260)
	for n := 0; n <= 257; n++ {
		lengths = append(lengths, n)
	}
	lengths = append(lengths, 64<<10)

	rnd := rand.New(rand.NewSource(1))
	for _, n := range lengths {
		src := make([]byte, n)
		rnd.Read(src)

		enc := EncodeToString(src)
		if len(enc) != EncodedLen(n) {
			t.Fatalf("encoding of %d bytes has length %d; want %d",
				n, len(enc), EncodedLen(n))
		}
		got, err := DecodeString(enc)
		if err != nil {
			t.Fatalf("decoding the encoding of %d bytes: %v", n, err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("round trip of %d bytes came back different", n)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	src := bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz012345"), 96)
	enc := make([]byte, EncodedLen(len(src)))
	Encode(enc, src)
	dst := make([]byte, len(enc))
	b.SetBytes(int64(len(enc)))
	for i := 0; i < b.N; i++ {
		if _, err := Decode(dst, enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeString(b *testing.B) {
	src := bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz012345"), 96)
	enc := EncodeToString(src)
	b.SetBytes(int64(len(enc)))
	for i := 0; i < b.N; i++ {
		if _, err := DecodeString(enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeWrapped(b *testing.B) {
	src := bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz012345"), 96)
	enc := Encode(make([]byte, EncodedLen(len(src))), src)

	// 76-column lines, as mail transports wrap them.
	var wrapped []byte
	for len(enc) > 0 {
		n := 76
		if n > len(enc) {
			n = len(enc)
		}
		wrapped = append(wrapped, enc[:n]...)
		wrapped = append(wrapped, '\r', '\n')
		enc = enc[n:]
	}

	dst := make([]byte, len(wrapped))
	b.SetBytes(int64(len(wrapped)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(dst, wrapped); err != nil {
			b.Fatal(err)
		}
	}
}

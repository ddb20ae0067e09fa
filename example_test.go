package lax64_test

import (
	"fmt"
	"log"

	"github.com/lax64/lax64"
)

func ExampleEncodeToString() {
	fmt.Println(lax64.EncodeToString([]byte("Hello, how are you today?")))
	// Output: SGVsbG8sIGhvdyBhcmUgeW91IHRvZGF5Pw==
}

func ExampleEncodeChunk() {
	src := []byte("foob")
	dst := make([]byte, lax64.EncodedLen(len(src)))
	ns, nd := lax64.EncodeChunk(dst, src)
	fmt.Printf("consumed %d of %d bytes: %s\n", ns, len(src), dst[:nd])
	// Output: consumed 3 of 4 bytes: Zm9v
}

func ExampleDecodeString() {
	b, err := lax64.DecodeString("SGVsbG8s\nIGhvdyBhcmUg\neW91IHRvZGF5Pw==\n")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(b))
	// Output: Hello, how are you today?
}

func ExampleDecodeStringStrict() {
	_, err := lax64.DecodeStringStrict("Zm9vYmF")
	fmt.Println(err)
	// Output: lax64: truncated input: incomplete final group
}

// Copyright 2021 The Lax64 Authors
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

package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/lax64/lax64"
)

func newEncodeCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [file...]",
		Short: "encode binary data as Base64 text",
		Long: `Encode reads binary data and writes its Base64 encoding.

Input is taken from the named files in order, or from standard input
when no files are named. All inputs are encoded as one stream: every
three input bytes become four characters of the alphabet, the final
group of one or two bytes is completed with '=' padding, and a single
newline terminates the text.

Examples:

  # encode a file to stdout
  lax64 encode picture.png

  # encode stdin to a file
  lax64 encode -o payload.b64
`,
		RunE: mkRunE(c, runEncode),
	}

	flagOut.Add(cmd)

	return cmd
}

func runEncode(cmd *Command, args []string) (err error) {
	out, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	enc := &chunkEncoder{w: out}
	for _, path := range inputPaths(args) {
		n, err := encodeFile(cmd, enc, path)
		if err != nil {
			return xerrors.Errorf("encode %s: %w", path, err)
		}
		if flagVerbose.Bool(cmd) {
			fmt.Fprintf(cmd.OutOrStderr(), "encoded %d bytes from %s\n", n, path)
		}
	}
	return enc.close()
}

func encodeFile(cmd *Command, enc *chunkEncoder, path string) (int64, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	return io.Copy(enc, in)
}

func openInput(cmd *Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return ioutil.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

// chunkEncoder is an io.Writer that emits the Base64 encoding of
// everything written to it. The one or two bytes of an incomplete
// group are carried between writes; close encodes the final group,
// padded, and terminates the text with a newline.
type chunkEncoder struct {
	w    io.Writer
	buf  [3]byte
	nbuf int
	out  [4096]byte
}

func (e *chunkEncoder) Write(p []byte) (n int, err error) {
	n = len(p)

	// Finish a carried group first.
	if e.nbuf > 0 {
		var i int
		for i = 0; i < len(p) && e.nbuf < 3; i++ {
			e.buf[e.nbuf] = p[i]
			e.nbuf++
		}
		p = p[i:]
		if e.nbuf < 3 {
			return n, nil
		}
		lax64.EncodeChunk(e.out[:4], e.buf[:])
		if _, err := e.w.Write(e.out[:4]); err != nil {
			return n, err
		}
		e.nbuf = 0
	}

	// Interior, in the largest slabs the output buffer can hold.
	for len(p) >= 3 {
		max := len(e.out) / 4 * 3
		if max > len(p) {
			max = len(p) - len(p)%3
		}
		ns, nd := lax64.EncodeChunk(e.out[:], p[:max])
		if _, err := e.w.Write(e.out[:nd]); err != nil {
			return n, err
		}
		p = p[ns:]
	}

	// Carry the remainder into the next write.
	copy(e.buf[:], p)
	e.nbuf = len(p)
	return n, nil
}

func (e *chunkEncoder) close() error {
	enc := lax64.Encode(e.out[:], e.buf[:e.nbuf])
	e.nbuf = 0
	if _, err := e.w.Write(enc); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, "\n")
	return err
}

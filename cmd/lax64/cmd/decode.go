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
	"io/ioutil"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/lax64/lax64"
)

func newDecodeCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file...]",
		Short: "decode Base64 text back into bytes",
		Long: `Decode reads Base64 text and writes the bytes it represents.

Input is taken from the named files in order, or from standard input
when no files are named; each input is decoded on its own and the
results are concatenated. Characters outside the Base64 alphabet are
skipped wherever they appear, so line breaks, whitespace and other
framing need not be stripped first. Padding is interpreted only at the
end of the meaningful input.

By default a final group that is cut short is dropped without error.
With --strict such input is rejected instead. Input carrying more than
two '=' characters at its end is always rejected.

Examples:

  # decode a wrapped, mail-style payload
  lax64 decode message.b64

  # round trip
  lax64 encode data.bin | lax64 decode -o copy.bin
`,
		RunE: mkRunE(c, runDecode),
	}

	cmd.Flags().Bool(string(flagStrict), false,
		"reject input whose final group is incomplete")
	flagOut.Add(cmd)

	return cmd
}

func runDecode(cmd *Command, args []string) (err error) {
	out, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	strict := flagStrict.Bool(cmd)
	for _, path := range inputPaths(args) {
		text, err := readInput(cmd, path)
		if err != nil {
			return xerrors.Errorf("decode %s: %w", path, err)
		}

		data := make([]byte, len(text))
		if strict {
			data, err = lax64.DecodeStrict(data, text)
		} else {
			data, err = lax64.Decode(data, text)
		}
		if err != nil {
			if xerrors.Is(err, lax64.ErrTruncated) {
				return xerrors.Errorf("decode %s (omit --strict to drop the partial group): %w", path, err)
			}
			return xerrors.Errorf("decode %s: %w", path, err)
		}

		if _, err := out.Write(data); err != nil {
			return err
		}
		if flagVerbose.Bool(cmd) {
			fmt.Fprintf(cmd.OutOrStderr(), "decoded %d bytes from %s\n", len(data), path)
		}
	}
	return nil
}

func readInput(cmd *Command, path string) ([]byte, error) {
	if path == "-" {
		return ioutil.ReadAll(cmd.InOrStdin())
	}
	return ioutil.ReadFile(path)
}

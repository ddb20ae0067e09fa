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

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		return f(c, args)
	}
}

// newRootCmd creates the base command when called without any subcommands
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "lax64",
		Short: "lax64 converts binary data to and from Base64 text.",
		Long: `lax64 converts binary data to and from Base64 text, using the
standard alphabet of RFC 3548 with '=' padding.

Encoding produces the canonical text for its input. Decoding is
deliberately tolerant: characters outside the Base64 alphabet are
skipped rather than rejected, so material that has been line-wrapped,
quoted or pasted through a terminal decodes without cleanup.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &Command{Command: cmd, root: cmd}

	subCommands := []*cobra.Command{
		newDecodeCmd(c),
		newEncodeCmd(c),
		newVersionCmd(c),
	}

	addGlobalFlags(cmd.PersistentFlags())

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// Main runs the lax64 tool and returns the code for passing to os.Exit.
func Main() int {
	if err := mainErr(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func mainErr(ctx context.Context, args []string) error {
	return New(args).Run(ctx)
}

// New creates the root command with args set.
func New(args []string) *Command {
	cmd := newRootCmd()
	cmd.root.SetArgs(args)
	return cmd
}

// Command groups the state shared by the subcommands.
type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command
}

func (c *Command) Run(ctx context.Context) error {
	return c.root.Execute()
}

// inputPaths interprets args as the files to process, standard input
// when none are named. The special name '-' denotes standard input.
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// outputWriter opens the destination named by --out, or the command's
// stdout when the flag is empty or '-'.
func outputWriter(cmd *Command) (io.WriteCloser, error) {
	switch path := flagOut.String(cmd); path {
	case "", "-":
		return nopCloser{cmd.OutOrStdout()}, nil
	default:
		return os.Create(path)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

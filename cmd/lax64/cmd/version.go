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
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print lax64 version information",
		RunE:  mkRunE(c, runVersion),
	}
	return cmd
}

// version is set by the linker for release builds.
var version = "devel"

func runVersion(cmd *Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "lax64 version %s %s/%s\n",
		version, runtime.GOOS, runtime.GOARCH)
	return nil
}

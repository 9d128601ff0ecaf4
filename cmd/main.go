// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chloeskafte/gardening-mvp/internal/analyzer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. A missing or
// unreadable input is reported but is not a failure.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "❌ Error: %v\n", err)
	if errors.Is(err, analyzer.ErrInputNotFound) || errors.Is(err, analyzer.ErrInputUnreadable) {
		return 0
	}
	return 1
}

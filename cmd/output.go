// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/chloeskafte/gardening-mvp/internal/analyzer"
	"github.com/chloeskafte/gardening-mvp/internal/config"
	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/formatters/text"
)

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// printSummary writes the console summary of a finished analysis
func (c *cli) printSummary(result *analyzer.Result, settings config.Settings) error {
	data, err := text.NewFormatter().Format(result.Report, formatters.FormatterOptions{
		Verbose: settings.Verbose,
		NoColor: settings.NoColor,
	})
	if err != nil {
		return err
	}

	_, err = c.stdout.Write(append([]byte("\n"), data...))
	return err
}

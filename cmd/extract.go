// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chloeskafte/gardening-mvp/internal/textsource"
)

func (c *cli) extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract page text to <name>_extracted.txt without tagging",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runExtract,
	}
}

func (c *cli) runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Usage()
	}

	settings, err := c.loadSettings(cmd)
	if err != nil {
		return err
	}

	a, err := c.newAnalyzer(settings)
	if err != nil {
		return err
	}

	result, err := a.ExtractFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "✅ Extracted %d pages to: %s\n", len(result.Document.Pages), result.ExtractedPath)
	if !c.flags.quiet {
		preview := textsource.Preview(textsource.Render(result.Document.Pages), settings.PreviewChars)
		fmt.Fprintf(c.stdout, "\nPreview:\n%s\n", preview)
	}
	return nil
}

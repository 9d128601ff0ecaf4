// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) discoverCmd() *cobra.Command {
	var minLength, limit int

	cmd := &cobra.Command{
		Use:   "discover <file>",
		Short: "List frequent words the vocabulary does not cover",
		Long: "Counts the words of a document that no vocabulary category matches,\n" +
			"skipping stopwords, to suggest additions to the vocabulary tables.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}

			settings, err := c.loadSettings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("min-length") {
				settings.Discovery.MinLength = minLength
			}
			if cmd.Flags().Changed("limit") {
				settings.Discovery.Limit = limit
			}

			a, err := c.newAnalyzer(settings)
			if err != nil {
				return err
			}

			doc, _, err := a.Load(args[0])
			if err != nil {
				return err
			}

			candidates := a.Discover(doc.Text, settings.Stopwords, settings.Discovery)
			if len(candidates) == 0 {
				fmt.Fprintln(c.stdout, "No uncovered words found")
				return nil
			}
			for _, candidate := range candidates {
				fmt.Fprintf(c.stdout, "%s: %d\n", candidate.Term, candidate.Count)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minLength, "min-length", 0, "Minimum word length")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of words listed")
	return cmd
}

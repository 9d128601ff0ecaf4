// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chloeskafte/gardening-mvp/internal/formatters"
	"github.com/chloeskafte/gardening-mvp/internal/report"
)

func (c *cli) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.stdout, "Available formats:")
			for _, info := range formatters.GetSupportedFormats() {
				fmt.Fprintf(c.stdout, "  %-6s %-6s %s\n", info.Name, info.Extension, info.Description)
			}
			return nil
		},
	}
}

func (c *cli) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema that JSON reports follow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.stdout.Write(report.Schema())
			return err
		},
	}
}

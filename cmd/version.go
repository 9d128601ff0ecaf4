// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chloeskafte/gardening-mvp/internal/version"
)

func (c *cli) versionCmd() *cobra.Command {
	var short, full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case short:
				fmt.Fprintln(c.stdout, version.Short())
			case full:
				info := version.Full()
				keys := make([]string, 0, len(info))
				for key := range info {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Fprintf(c.stdout, "%s: %s\n", key, info[key])
				}
			default:
				fmt.Fprintln(c.stdout, version.Info())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	cmd.Flags().BoolVar(&full, "full", false, "Print every build detail")
	return cmd
}

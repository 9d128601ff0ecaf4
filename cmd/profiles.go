// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles [name]",
		Short: "List configuration profiles or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfiguration()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				profile := cfg.GetProfile(args[0])
				if profile == nil {
					return fmt.Errorf("profile '%s' not found", args[0])
				}
				fmt.Fprintf(c.stdout, "Profile: %s\n", args[0])
				fmt.Fprintf(c.stdout, "  Description: %s\n", profile.Description)
				if profile.Format != "" {
					fmt.Fprintf(c.stdout, "  Format:      %s\n", profile.Format)
				}
				if profile.TopN > 0 {
					fmt.Fprintf(c.stdout, "  Top N:       %d\n", profile.TopN)
				}
				if profile.OutputDir != "" {
					fmt.Fprintf(c.stdout, "  Output dir:  %s\n", profile.OutputDir)
				}
				fmt.Fprintf(c.stdout, "  Entities:    %t\n", profile.Entities)
				return nil
			}

			names := cfg.ListProfiles()
			if len(names) == 0 {
				fmt.Fprintln(c.stdout, "No profiles configured")
				return nil
			}
			fmt.Fprintln(c.stdout, "Available profiles:")
			for _, name := range names {
				fmt.Fprintf(c.stdout, "  %-10s %s\n", name, cfg.Profiles[name].Description)
			}
			return nil
		},
	}
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chloeskafte/gardening-mvp/internal/textsource"
)

// cliFlags holds command line flag values shared by every command
type cliFlags struct {
	configFile string
	profile    string
	format     string
	outputDir  string
	topN       int
	entities   bool
	gazetteer  string
	maxPages   int
	noColor    bool
	debug      bool
	verbose    bool
	quiet      bool
}

// cli carries the output streams and parsed flags into command handlers
type cli struct {
	stdout io.Writer
	stderr io.Writer
	flags  cliFlags
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "garden-ner <file>",
		Short: "garden-ner tags gardening vocabulary in PDF guides",
		Long: "Extracts the text of a PDF gardening guide and tags plant names, gardening\n" +
			"techniques and general gardening terms, optionally with general entities.\n" +
			"Writes <name>_extracted.txt and <name>_ner_analysis.json next to the input.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runAnalyze,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.flags.configFile, "config", "", "Path to a garden-ner.yaml configuration file")
	pf.StringVar(&c.flags.profile, "profile", "", "Configuration profile to apply")
	pf.StringVarP(&c.flags.format, "format", "f", "", "Report format: json, yaml, xlsx, csv or text")
	pf.StringVarP(&c.flags.outputDir, "output-dir", "o", "", "Directory for output files (default: next to the input)")
	pf.IntVar(&c.flags.topN, "top", 0, "Number of most common terms kept per summary list")
	pf.BoolVar(&c.flags.entities, "entities", false, "Also recognize general entities (people, places, dates, ...)")
	pf.StringVar(&c.flags.gazetteer, "gazetteer", "", "YAML gazetteer extending the entity recognizer")
	pf.IntVar(&c.flags.maxPages, "max-pages", 0, "Read at most this many PDF pages (0 reads all)")
	pf.BoolVar(&c.flags.noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&c.flags.debug, "debug", false, "Print pipeline steps and timing records to stderr")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "Print per-category counts and every match")
	pf.BoolVarP(&c.flags.quiet, "quiet", "q", false, "Only print output file paths")

	rootCmd.AddCommand(c.analyzeCmd())
	rootCmd.AddCommand(c.extractCmd())
	rootCmd.AddCommand(c.discoverCmd())
	rootCmd.AddCommand(c.formatsCmd())
	rootCmd.AddCommand(c.schemaCmd())
	rootCmd.AddCommand(c.profilesCmd())
	rootCmd.AddCommand(c.versionCmd())

	return rootCmd
}

func (c *cli) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Tag a PDF or a previously extracted text file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runAnalyze,
	}
}

// runAnalyze runs the full pipeline. Without an argument it prints usage and
// does no work.
func (c *cli) runAnalyze(cmd *cobra.Command, args []string) error {
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

	if !c.flags.quiet {
		fmt.Fprintf(c.stdout, "📄 Analysing %s\n", args[0])
	}

	result, err := a.AnalyzeFile(args[0])
	if err != nil {
		return err
	}

	if result.ExtractedPath != "" {
		fmt.Fprintf(c.stdout, "✅ Extracted text saved to: %s\n", result.ExtractedPath)
	}
	fmt.Fprintf(c.stdout, "✅ Analysis saved to: %s\n", result.ReportPath)

	if c.flags.quiet {
		return nil
	}
	if settings.Verbose && result.Document.Rendered {
		fmt.Fprintf(c.stdout, "\n%s\n", textsource.Preview(result.Document.Text, settings.PreviewChars))
	}
	return c.printSummary(result, settings)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wikitext/internal/diagfmt"
	"wikitext/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file.wiki]",
	Short: "Parse a wikitext document into a tree",
	Long:  `Parse runs the full pipeline and prints the document tree; warnings go to stderr`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := pipelineOptions(cmd, cfg)
	if err != nil {
		return err
	}
	timer, err := pipelineTimer(cmd)
	if err != nil {
		return err
	}
	opts.Timer = timer
	name, content, err := readInput(args, cfg.Pipeline.MaxInputSize)
	if err != nil {
		return err
	}

	res := driver.Parse(name, content, opts)
	printTimings(timer)

	if len(res.Diags) > 0 {
		diagfmt.PrettyDiagnostics(os.Stderr, res.Diags, res.Text, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	switch format {
	case "pretty":
		diagfmt.FormatTreePretty(os.Stdout, res.Tree)
		return nil
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, res.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

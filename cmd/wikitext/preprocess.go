package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wikitext/internal/driver"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess [flags] [file.wiki]",
	Short: "Run the text substitution stage",
	Long:  `Preprocess expands includes and applies the text substitutions without tokenizing`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreprocess,
}

func init() {
	preprocessCmd.Flags().String("format", "text", "output format (text|json)")
}

func runPreprocess(cmd *cobra.Command, args []string) error {
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
	_, content, err := readInput(args, cfg.Pipeline.MaxInputSize)
	if err != nil {
		return err
	}

	res := driver.Preprocess(content, opts)

	switch format {
	case "text":
		fmt.Fprintln(os.Stdout, res.Text)
		for _, page := range res.Pages {
			fmt.Fprintf(os.Stderr, "included: %s\n", page)
		}
		return nil
	case "json":
		pages := make([]string, 0, len(res.Pages))
		for _, page := range res.Pages {
			pages = append(pages, page.String())
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"text":           res.Text,
			"pages_included": pages,
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wikitext/internal/diagfmt"
	"wikitext/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.wiki]",
	Short: "Tokenize a wikitext document",
	Long:  `Tokenize preprocesses a document and prints its token stream`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
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
	name, content, err := readInput(args, cfg.Pipeline.MaxInputSize)
	if err != nil {
		return err
	}

	res := driver.Tokenize(name, content, opts)

	switch format {
	case "pretty":
		diagfmt.FormatTokensPretty(os.Stdout, res.Tokens, res.Text)
		return nil
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

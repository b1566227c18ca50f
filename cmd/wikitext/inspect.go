package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wikitext/internal/driver"
	"wikitext/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] file.wiki",
	Short: "Browse tokens, tree and diagnostics interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
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
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("inspect needs an interactive terminal; use `parse` for plain output")
	}
	return ui.Run(driver.Parse(name, content, opts))
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wikitext/internal/diagfmt"
	"wikitext/internal/driver"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [file.wiki | directory]",
	Short: "Run the full pipeline and emit the combined result",
	Long: `Render runs preprocess, tokenize and parse in one go and emits everything:
preprocessed text, tokens, tree, diagnostics and included pages.
Given a directory it processes every wikitext file in parallel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("format", "json", "output format (json|msgpack)")
	renderCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := pipelineOptions(cmd, cfg)
	if err != nil {
		return err
	}
	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 1 {
		if info, statErr := os.Stat(args[0]); statErr == nil && info.IsDir() {
			return renderDir(cmd, args[0], opts, jobs, format)
		}
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
	return writeOutcome(format, outcomeOf(res))
}

func renderDir(cmd *cobra.Command, dir string, opts driver.Options, jobs int, format string) error {
	results, err := driver.ParseDir(cmd.Context(), dir, opts, jobs)
	if err != nil {
		return err
	}
	if format == "msgpack" {
		return fmt.Errorf("msgpack output is per-document; not available for directories")
	}

	combined := make(map[string]any, len(results))
	for _, fr := range results {
		if fr.Err != nil {
			combined[fr.Path] = map[string]string{"error": fr.Err.Error()}
			continue
		}
		combined[fr.Path] = outcomeOf(fr.Result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(combined)
}

func outcomeOf(res driver.ParseResult) diagfmt.OutcomeOutput {
	pages := make([]string, 0, len(res.Pages))
	for _, page := range res.Pages {
		pages = append(pages, page.String())
	}
	return diagfmt.BuildOutcome(res.Text, res.Tokens, res.Tree, res.Diags, pages,
		diagfmt.JSONOpts{IncludePositions: true})
}

func writeOutcome(format string, out diagfmt.OutcomeOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "msgpack":
		return diagfmt.FormatOutcomeMsgpack(os.Stdout, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

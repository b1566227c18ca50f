package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wikitext/internal/driver"
	"wikitext/internal/preproc"
	"wikitext/internal/project"
)

// loadConfig читает wikitext.toml: явный --config или поиск вверх от cwd.
func loadConfig(cmd *cobra.Command) (project.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return project.Load(path)
	}
	return project.Discover(".")
}

// pipelineOptions собирает driver.Options из конфигурации и флагов.
func pipelineOptions(cmd *cobra.Command, cfg project.Config) (driver.Options, error) {
	opts := driver.Options{
		Typography:     cfg.Pipeline.Typography,
		MaxDiagnostics: cfg.Pipeline.MaxDiagnostics,
		Includer:       makeIncluder(cfg),
	}
	flags := cmd.Root().PersistentFlags()
	if forced, err := flags.GetBool("typography"); err != nil {
		return driver.Options{}, fmt.Errorf("failed to get typography flag: %w", err)
	} else if forced {
		opts.Typography = true
	}
	if maxDiags, err := flags.GetInt("max-diagnostics"); err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	} else if maxDiags > 0 {
		opts.MaxDiagnostics = maxDiags
	}
	return opts, nil
}

// makeIncluder возвращает дисковый резолвер включений, если в конфигурации
// задана директория страниц; иначе включения остаются заглушками.
func makeIncluder(cfg project.Config) preproc.Includer {
	if cfg.Include.Dir == "" {
		return nil
	}
	return dirIncluder{dir: cfg.Include.Dir}
}

// dirIncluder резолвит [[include page]] в <dir>/<page>.wiki.
// Сайт-квалифицированные ссылки (:site:page) с диска не резолвятся.
type dirIncluder struct {
	dir string
}

func (d dirIncluder) Include(ref preproc.PageRef) (string, error) {
	if ref.Site != "" {
		return "", preproc.ErrNotFound
	}
	// имя страницы не должно выходить за пределы директории
	name := filepath.Clean(ref.Page)
	if name == "" || name == "." || filepath.IsAbs(name) ||
		strings.HasPrefix(name, "..") || strings.ContainsRune(name, filepath.Separator) {
		return "", preproc.ErrNotFound
	}
	raw, err := os.ReadFile(filepath.Join(d.dir, name+".wiki"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", preproc.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// readInput читает документ: файл из аргумента или stdin при "-"/без
// аргументов. Возвращает имя для диагностик и содержимое.
func readInput(args []string, limit int64) (name, content string, err error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if limit > 0 && int64(len(raw)) > limit {
			return "", "", fmt.Errorf("input exceeds configured limit of %d bytes", limit)
		}
		return "<stdin>", string(raw), nil
	}

	path := args[0]
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if limit > 0 && int64(len(raw)) > limit {
		return "", "", fmt.Errorf("%s exceeds configured limit of %d bytes", path, limit)
	}
	return path, string(raw), nil
}

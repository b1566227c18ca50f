// Package project loads wikitext.toml, the per-project configuration the
// CLI and the server read: pipeline toggles, include directory, limits.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config — содержимое wikitext.toml. Нулевое значение пригодно к работе,
// см. Default.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Include  IncludeConfig  `toml:"include"`
	Server   ServerConfig   `toml:"server"`
}

type PipelineConfig struct {
	// Typography включает типографский проход препроцессора.
	Typography bool `toml:"typography"`
	// MaxInputSize — лимит размера входа в байтах (0 — без лимита).
	MaxInputSize int64 `toml:"max_input_size"`
	// MaxDiagnostics — лимит числа диагностик на прогон (0 — без лимита).
	MaxDiagnostics int `toml:"max_diagnostics"`
}

type IncludeConfig struct {
	// Dir — директория с включаемыми страницами (<page>.wiki).
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	// Listen — адрес HTTP-сервиса, host:port.
	Listen string `toml:"listen"`
}

// Default возвращает конфигурацию, с которой всё работает без манифеста.
func Default() Config {
	return Config{
		Pipeline: PipelineConfig{
			MaxInputSize:   1 << 20, // 1 MiB, как у исходного сервиса
			MaxDiagnostics: 0,
		},
		Server: ServerConfig{
			Listen: "localhost:3865",
		},
	}
}

// Load читает wikitext.toml по пути и накладывает его поверх Default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// FindConfig walks up from startDir to locate wikitext.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "wikitext.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover находит и читает ближайший wikitext.toml; без манифеста
// возвращает Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FileResult — результат прогона одного файла при обходе директории.
type FileResult struct {
	Path   string // относительный путь
	Result ParseResult
	Err    error // ошибка чтения; конвейер сам по себе не падает
}

// wikitextExts — расширения, которые считаем вики-исходниками при обходе.
var wikitextExts = map[string]bool{
	".wiki":     true,
	".wikitext": true,
	".wtx":      true,
}

// listWikiFiles возвращает отсортированный список вики-файлов в директории.
func listWikiFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if wikitextExts[filepath.Ext(path)] {
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				return relErr
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir прогоняет конвейер по всем вики-файлам директории параллельно.
// jobs <= 0 — по числу процессоров. Ошибки чтения отдельных файлов не
// прерывают обход, а оседают в FileResult.Err; порядок результатов
// детерминирован (по отсортированным путям).
func ParseDir(ctx context.Context, dir string, opts Options, jobs int) ([]FileResult, error) {
	files, err := listWikiFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны на горутину, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, rel := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := ParseFile(filepath.Join(dir, rel), opts)
			results[i] = FileResult{Path: rel, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

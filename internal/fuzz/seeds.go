package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addInlineSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.wiki файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".wiki" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addInlineSeeds добавляет заведомо проблемные конструкции: каждая из них
// когда-то могла уронить или подвесить строгий парсер.
func addInlineSeeds(f *testing.F) {
	seeds := []string{
		"",
		"plain text\n",
		"**bold** and //italic//\n",
		"**//crossed markers**//",
		"**unclosed to end of input",
		"text** stray closer",
		"@@raw with ** markers@@\n",
		"@@unclosed raw",
		"+++++++ way too many pluses\n",
		"* list\n** nested\n# ordered\n",
		"|| a || b ||\n||~ h ||\n|| no trailing\n",
		"[[[triple|label]]]\n[url label]\n[[include page]]\n",
		"[[[never closed",
		"[[module listpages]]",
		"[[include]]",
		"----\n",
		"line one\nline two\n\npara two\n",
		"`` curly `` ,, low ,, {{ mono }}\n",
		"[!-- comment --] text [!-- unclosed",
		"a\r\nb\rc\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		return src[:maxSeedBytes]
	}
	return src
}

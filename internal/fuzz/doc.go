// Package fuzztests houses Go fuzz harnesses that exercise the wikitext
// pipeline (preprocess -> lexer -> parser). Its goal is to smoke test the
// total-parse guarantee and guard against panics or allocator explosions on
// arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые прогоняют байты через
// препроцессор, лексер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/driver,
// internal/ast, internal/diag.
package fuzztests

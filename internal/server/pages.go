package server

import "wikitext/internal/preproc"

// pageNames — строковые имена включённых страниц; пустой список
// сериализуется как [], а не null.
func pageNames(refs []preproc.PageRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.String())
	}
	return names
}

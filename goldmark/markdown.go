// Package goldmark flattens markdown to plain text using goldmark for
// parsing. Crawl services return page content as markdown; hosts that ask
// for raw text get the same content with the markup stripped.
package goldmark

// PlainText parses markdown source and returns its text content without
// markup. Block structure survives as blank-line separation; list markers
// and link targets are kept so the text reads standalone.
func PlainText(source string) string {
	if source == "" {
		return ""
	}
	r := &textRenderer{}
	return r.render([]byte(source))
}

package markdown

import (
	"regexp"
	"strings"
)

var wikilink = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

// CountWords counts whitespace-separated words in the note body,
// excluding frontmatter.
func CountWords(content string) int {
	_, body, err := SplitFrontmatter(content)
	if err != nil {
		body = content
	}
	return len(strings.Fields(body))
}

// CountWikilinks counts [[wikilink]] occurrences in the note body,
// excluding frontmatter.
func CountWikilinks(content string) int {
	_, body, err := SplitFrontmatter(content)
	if err != nil {
		body = content
	}
	return len(wikilink.FindAllString(body, -1))
}

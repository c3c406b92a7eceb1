package markdown_test

import (
	"testing"

	"studya/internal/platform/markdown"
)

func TestCountWordsExcludesFrontmatter(t *testing.T) {
	t.Parallel()
	content := "---\ntitle: Sample Note\ntags: [study]\n---\n\nthree short words\n"
	if got := markdown.CountWords(content); got != 3 {
		t.Fatalf("expected 3 words, got %d", got)
	}
	if got := markdown.CountWords("no frontmatter here"); got != 3 {
		t.Fatalf("expected 3 words without frontmatter, got %d", got)
	}
	if got := markdown.CountWords(""); got != 0 {
		t.Fatalf("expected 0 words for empty content, got %d", got)
	}
}

func TestCountWikilinks(t *testing.T) {
	t.Parallel()
	content := "---\nlinks: \"[[not-counted]]\"\n---\n\nSee [[Topic One]] and [[topic-two|alias]].\n"
	if got := markdown.CountWikilinks(content); got != 2 {
		t.Fatalf("expected 2 wikilinks, got %d", got)
	}
	if got := markdown.CountWikilinks("plain [single] brackets"); got != 0 {
		t.Fatalf("expected 0 wikilinks, got %d", got)
	}
}

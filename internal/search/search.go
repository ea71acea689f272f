package search

import (
	"strings"
	"unicode/utf8"

	"docnav/internal/docs"
	md "docnav/internal/markdown"
)

const snippetMaxLen = 200

// Match is one search hit: the item plus a representative snippet taken from
// the first matching block (or matching list entry) in block declaration
// order. The snippet is empty when only the title matched.
type Match struct {
	Item    *docs.Item
	Snippet string
}

// Search returns items matching query by case-insensitive substring
// containment against the item title and the textual content of its blocks.
// Results keep the order of items (load order); there is no relevance
// scoring. An empty query returns nothing.
func Search(items []*docs.Item, query string) []Match {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var matches []Match
	for _, item := range items {
		titleHit := strings.Contains(strings.ToLower(item.Title), q)
		snippet, blockHit := blockSnippet(item, q)
		if titleHit || blockHit {
			matches = append(matches, Match{Item: item, Snippet: snippet})
		}
	}
	return matches
}

// blockSnippet scans blocks in declaration order for the first textual match.
func blockSnippet(item *docs.Item, q string) (string, bool) {
	for _, b := range item.Content {
		switch b.Kind {
		case docs.BlockHeading1, docs.BlockHeading2, docs.BlockHeading3,
			docs.BlockDescription, docs.BlockQuote:
			if strings.Contains(strings.ToLower(b.Content), q) {
				return truncate(md.PlainText(b.Content), snippetMaxLen), true
			}
		case docs.BlockCode:
			if strings.Contains(strings.ToLower(b.Content), q) {
				return truncate(b.Content, snippetMaxLen), true
			}
		case docs.BlockList:
			for _, entry := range b.ListItems {
				if strings.Contains(strings.ToLower(entry), q) {
					return truncate(md.PlainText(entry), snippetMaxLen), true
				}
			}
		case docs.BlockTable, docs.BlockImage, docs.BlockImageCompare,
			docs.BlockImageSlider, docs.BlockImageCarousel, docs.BlockAudio,
			docs.BlockYoutube, docs.BlockMath, docs.BlockChart, docs.BlockGraph:
			// opaque payloads: not searchable
		}
	}
	return "", false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

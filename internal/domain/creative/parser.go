package creative

import (
	"regexp"
	"strings"
)

// numberedItem matches lines shaped like "1. content" or "2) content".
var numberedItem = regexp.MustCompile(`(?m)^\s*\d+\s*[.)]\s*(.+)$`)

// ParseVariations extracts up to n discrete items from a block of generated
// text that should contain a numbered list. Layered fallbacks handle models
// that ignore the formatting instruction:
//
//  1. numbered-line extraction across the whole block
//  2. line splitting, keeping lines with more than three words
//  3. the whole trimmed block as a single item
//
// The result is truncated to n but never padded; the caller detects and
// handles a shortfall.
func ParseVariations(block string, n int) []string {
	trimmed := strings.TrimSpace(block)
	if trimmed == "" {
		return nil
	}

	items := parseNumbered(trimmed)
	if len(items) < n {
		if lines := parseLongLines(trimmed); len(lines) >= n || len(items) == 0 {
			if len(lines) > 0 {
				items = lines
			}
		}
	}
	if len(items) == 0 {
		items = []string{trimmed}
	}

	if len(items) > n {
		items = items[:n]
	}
	return items
}

func parseNumbered(block string) []string {
	matches := numberedItem.FindAllStringSubmatch(block, -1)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		if item := strings.TrimSpace(m[1]); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseLongLines(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(strings.Fields(line)) > 3 {
			items = append(items, line)
		}
	}
	return items
}

// Package extract holds the field extractors: one per target entity group,
// each a cascade of independent strategies tried in order with the first
// accepted match winning. Extractors tolerate empty section text by retrying
// over the full document with a keyword filter, and return empty results
// rather than errors.
package extract

import (
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
)

// SplitEntries breaks a multi-entry section (education, experience, projects)
// into one chunk per logical entry. Date-range tokens are the primary signal:
// with two or more present, the text is cut at each token's line, pulled up to
// the preceding line when that line carries the entry's title. Double-newline
// blocks are the secondary signal; otherwise the whole text is one entry.
func SplitEntries(text string, lib *patterns.Library) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if anchors := entryAnchors(text, lib); len(anchors) >= 2 {
		entries := make([]string, 0, len(anchors))
		for i, a := range anchors {
			end := len(text)
			if i+1 < len(anchors) {
				end = anchors[i+1]
			}
			if chunk := strings.TrimSpace(text[a:end]); chunk != "" {
				entries = append(entries, chunk)
			}
		}
		return entries
	}

	if strings.Contains(text, "\n\n") {
		var entries []string
		for _, part := range strings.Split(text, "\n\n") {
			if part = strings.TrimSpace(part); part != "" {
				entries = append(entries, part)
			}
		}
		if len(entries) >= 2 {
			return entries
		}
	}

	return []string{text}
}

// entryAnchors returns the split offsets, one per date-range token. An anchor
// sits at the start of the token's line, moved up one line when the previous
// line is non-blank and not itself a dated line, so a chunk begins with its
// role or title line. The span before the first anchor is discarded by the
// caller's slicing.
func entryAnchors(text string, lib *patterns.Library) []int {
	locs := lib.DateRange.FindAllStringIndex(text, -1)
	var anchors []int
	last := -1
	for _, loc := range locs {
		a := lineStart(text, loc[0])
		if prev := prevLineStart(text, a); prev >= 0 {
			prevLine := text[prev : a-1]
			if strings.TrimSpace(prevLine) != "" && !lib.DateRange.MatchString(prevLine) {
				a = prev
			}
		}
		if a > last {
			anchors = append(anchors, a)
			last = a
		}
	}
	return anchors
}

// lineStart returns the offset of the first byte of the line containing pos.
func lineStart(text string, pos int) int {
	if i := strings.LastIndexByte(text[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// prevLineStart returns the offset of the line above the one starting at
// start, or -1 when start is the first line.
func prevLineStart(text string, start int) int {
	if start == 0 {
		return -1
	}
	return lineStart(text, start-1)
}

// DateSpan extracts the first date range in text as (start, end). Both are
// empty when no range is present.
func DateSpan(text string, lib *patterns.Library) (string, string) {
	m := lib.DateRange.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

// bullets returns the text of every bullet-point line in order.
func bullets(text string, lib *patterns.Library) []string {
	var out []string
	for _, m := range lib.Bullet.FindAllStringSubmatch(text, -1) {
		if b := strings.TrimSpace(m[1]); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// fallbackParagraph returns the first double-newline-delimited paragraph of
// the full document containing any of the keywords, for extractors whose
// section was not detected.
func fallbackParagraph(fullText string, keywords []string) string {
	for _, para := range strings.Split(fullText, "\n\n") {
		lower := strings.ToLower(para)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return strings.TrimSpace(para)
			}
		}
	}
	return ""
}

// spanUntilBreak returns the text from start up to the next blank line or the
// next line opening with a capital letter (a likely heading).
func spanUntilBreak(text string, start int) string {
	rest := text[start:]
	end := len(rest)
	for i := 0; i < len(rest)-1; i++ {
		if rest[i] != '\n' {
			continue
		}
		next := rest[i+1]
		if next == '\n' || (next >= 'A' && next <= 'Z') {
			end = i
			break
		}
	}
	return strings.TrimSpace(rest[:end])
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// pureDateLine reports whether the line holds nothing but a date range or a
// single date token.
func pureDateLine(line string, lib *patterns.Library) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if lib.DateRange.FindString(line) == line {
		return true
	}
	return lib.DateToken.FindString(line) == line
}

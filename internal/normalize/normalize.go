// Package normalize cleans raw extracted document text before segmentation:
// Unicode folding, whitespace collapsing, bullet unification, header/footer
// stripping and section-heading spacing.
package normalize

import (
	"regexp"
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
	"golang.org/x/text/unicode/norm"
)

var (
	multiNewline = regexp.MustCompile(`\n{3,}`)
	multiSpace   = regexp.MustCompile(` {2,}`)
	pageNumber   = regexp.MustCompile(`\n\s*\d+\s*\n`)
	bulletGlyphs = regexp.MustCompile(`[•●■◦○❖✦★✓\x{2022}\x{2023}\x{2043}\x{204C}\x{204D}\x{2219}\x{25D8}\x{25E6}\x{2619}\x{2765}\x{2767}\x{29BE}\x{29BF}]`)

	headerFooter = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*Page\s+\d+\s*$`),
		regexp.MustCompile(`(?i)^\s*\d+\s*of\s*\d+\s*$`),
		regexp.MustCompile(`(?i)^\s*Resume\s*$`),
		regexp.MustCompile(`(?i)^\s*CV\s*$`),
		regexp.MustCompile(`(?i)^\s*Curriculum\s+Vitae\s*$`),
	}
)

// Text normalizes raw document text. It never fails; empty input comes back
// empty.
func Text(raw string, lib *patterns.Library) string {
	text := basic(raw)
	text = stripHeaderFooter(text)
	text = spaceHeadings(text, lib)
	return text
}

// basic applies Unicode folding and whitespace/bullet cleanup.
func basic(text string) string {
	text = norm.NFKC.String(text)
	text = multiNewline.ReplaceAllString(text, "\n\n")
	text = multiSpace.ReplaceAllString(text, " ")

	// Isolated numeric lines are page numbers.
	text = pageNumber.ReplaceAllString(text, "\n\n")

	text = bulletGlyphs.ReplaceAllString(text, "•")
	return strings.TrimSpace(text)
}

// stripHeaderFooter removes boilerplate lines, but only among the first two
// and last two lines of the document.
func stripHeaderFooter(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= 4 {
		return text
	}

	kept := lines[:0]
	for i, line := range lines {
		if i < 2 || i >= len(lines)-2 {
			if matchesBoilerplate(line) {
				continue
			}
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func matchesBoilerplate(line string) bool {
	for _, re := range headerFooter {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// spaceHeadings makes sure every recognized section heading sits on its own
// block: a blank line before it and a newline after it, so offset-based
// segmentation is reliable.
func spaceHeadings(text string, lib *patterns.Library) string {
	for _, sec := range lib.Sections {
		if sec.Name == "personal_info" {
			// Anchored to the document start; no spacing needed.
			continue
		}
		text = sec.Re.ReplaceAllStringFunc(text, func(m string) string {
			out := m
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			return "\n\n" + strings.TrimLeft(out, "\n")
		})
	}
	// The inserted blank lines may stack with existing ones.
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

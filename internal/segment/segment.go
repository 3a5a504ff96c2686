// Package segment slices normalized résumé text into named sections by
// locating heading matches and cutting the text at their offsets, with
// keyword-driven fallbacks for documents whose headings are absent or
// unrecognizable.
package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cvflow/cvparse/internal/nlp"
	"github.com/cvflow/cvparse/internal/patterns"
)

// coverageThreshold is the fraction of the document that must be captured by
// heading-based sections before duplicate matches are trusted as-is.
const coverageThreshold = 0.7

type boundary struct {
	start, end int
	name       string
}

// Sections maps each detected section name to its content span. Spans are
// non-overlapping substrings of text ordered by position; only the implicit
// fallback assigns the full document to multiple sections.
func Sections(text string, lib *patterns.Library, aug nlp.Augmenter) map[string]string {
	if strings.TrimSpace(text) == "" {
		return map[string]string{}
	}

	bounds := findBoundaries(text, lib)
	sections, coverage := slice(text, bounds)

	if nlp.Active(aug) && float64(coverage) < coverageThreshold*float64(len(text)) {
		enhance(text, sections, aug)
	}

	refine(text, sections)

	if len(sections) == 0 {
		return implicit(text)
	}
	return sections
}

// Presence reports, for every known section name, whether that section was
// detected with non-empty content.
func Presence(sections map[string]string, lib *patterns.Library) map[string]bool {
	presence := make(map[string]bool, len(lib.Sections))
	for _, name := range lib.SectionNames() {
		presence[name] = strings.TrimSpace(sections[name]) != ""
	}
	return presence
}

func findBoundaries(text string, lib *patterns.Library) []boundary {
	var bounds []boundary
	for _, sec := range lib.Sections {
		for _, loc := range sec.Re.FindAllStringIndex(text, -1) {
			bounds = append(bounds, boundary{start: loc[0], end: loc[1], name: sec.Name})
		}
	}
	// Insertion order is per-pattern; re-order by document position.
	sort.Slice(bounds, func(i, j int) bool {
		if bounds[i].start != bounds[j].start {
			return bounds[i].start < bounds[j].start
		}
		return bounds[i].end < bounds[j].end
	})
	return bounds
}

// slice cuts the text between consecutive boundaries: section i's content is
// [end of heading i, start of heading i+1). Duplicate names keep the first
// occurrence, except objective, where the longer body wins (this also covers
// the summary/objective merge). Byte-identical bodies are kept once.
func slice(text string, bounds []boundary) (map[string]string, int) {
	sections := make(map[string]string, len(bounds))
	seen := make(map[string]bool, len(bounds))
	coverage := 0

	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1].start
		}
		content := strings.TrimSpace(text[b.end:end])
		if content == "" {
			continue
		}
		if seen[content] {
			continue
		}
		seen[content] = true

		if existing, ok := sections[b.name]; ok {
			if b.name == "objective" && len(content) > len(existing) {
				coverage += len(content) - len(existing)
				sections[b.name] = content
			}
			continue
		}
		sections[b.name] = content
		coverage += len(content)
	}
	return sections, coverage
}

var enhanceEducation = []string{"university", "college", "degree", "graduated"}
var enhanceExperience = []string{"worked", "managed", "led", "developed", "responsible"}

// enhance recovers under-populated sections with help from the entity pass:
// substantial unassigned paragraphs carrying education or experience cues are
// folded into the corresponding section.
func enhance(text string, sections map[string]string, aug nlp.Augmenter) {
	unassigned := text
	for _, content := range sections {
		unassigned = strings.Replace(unassigned, content, "", 1)
	}

	orgs := map[string]bool{}
	for _, ent := range aug.Entities(unassigned) {
		if ent.Label == "ORG" {
			orgs[ent.Text] = true
		}
	}

	for _, para := range strings.Split(unassigned, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) <= 50 {
			continue
		}
		lower := strings.ToLower(para)
		switch {
		case containsAny(lower, enhanceEducation):
			if sections["education"] == "" {
				sections["education"] = para
			}
		case containsAny(lower, enhanceExperience) || mentionsOrg(para, orgs):
			if sections["experience"] == "" {
				sections["experience"] = para
			} else if !strings.Contains(sections["experience"], para) {
				sections["experience"] += "\n" + para
			}
		}
	}
}

func mentionsOrg(para string, orgs map[string]bool) bool {
	for org := range orgs {
		if strings.Contains(para, org) {
			return true
		}
	}
	return false
}

// headingLike matches a line that looks like a section header, used to end the
// keyword-window fallback.
var headingLike = regexp.MustCompile(`^[A-Z][A-Za-z\s]+:?\s*$`)

// refine recovers education and experience sections that were not found via
// headings, using a keyword line-window scan.
func refine(text string, sections map[string]string) {
	for _, name := range []string{"education", "experience"} {
		if strings.TrimSpace(sections[name]) != "" {
			continue
		}
		if window := keywordWindow(text, patterns.RefineKeywords[name]); window != "" {
			sections[name] = window
		}
	}
}

// keywordWindow returns the lines from the first keyword hit down to the next
// heading-looking line (or end of text).
func keywordWindow(text string, keywords []string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if containsAny(strings.ToLower(line), keywords) {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if headingLike.MatchString(strings.TrimSpace(lines[i])) {
			end = i
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

type implicitGroup struct {
	name string
	re   *regexp.Regexp
}

var implicitGroups = func() []implicitGroup {
	groups := make([]implicitGroup, 0, len(patterns.ImplicitGroups))
	for _, g := range patterns.ImplicitGroups {
		groups = append(groups, implicitGroup{name: g.Section, re: regexp.MustCompile(g.Re)})
	}
	return groups
}()

// implicit is the degraded mode for documents with no detectable structure:
// the entire text is assigned to every section whose keyword group matches.
func implicit(text string) map[string]string {
	sections := map[string]string{}
	for _, g := range implicitGroups {
		if g.re.MatchString(text) {
			sections[g.name] = text
		}
	}
	return sections
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

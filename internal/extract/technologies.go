package extract

import (
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
)

var listItemSep = []string{",", "\n", "•", ";"}

// Technologies collects technology mentions across the skills section and the
// full document. Output order is the vocabulary order, so identical documents
// always produce identical lists; inline-list finds append after the
// vocabulary pass.
func Technologies(skillsText, fullText string, lib *patterns.Library) []string {
	searchTexts := []string{fullText}
	if strings.TrimSpace(skillsText) != "" {
		searchTexts = []string{skillsText, fullText}
	}

	var out []string
	seen := map[string]bool{}
	add := func(kw string) {
		if !seen[strings.ToLower(kw)] {
			seen[strings.ToLower(kw)] = true
			out = append(out, kw)
		}
	}

	for _, kw := range lib.TechKeywords {
		for _, text := range searchTexts {
			if lib.HasTechWord(kw, text) {
				add(kw)
				break
			}
		}
	}

	// Inline "Skills: X, Y, Z" lists can carry vocabulary words glued to other
	// tokens the whole-word pass missed.
	for _, text := range searchTexts {
		for _, loc := range lib.SkillListLabel.FindAllStringIndex(text, -1) {
			for _, item := range splitListItems(spanUntilBreak(text, loc[1])) {
				if kw := matchTechItem(item, lib); kw != "" {
					add(kw)
				}
			}
		}
	}
	return out
}

// matchTechItem maps a free-form list item onto a vocabulary keyword when the
// item equals it or contains it as a space-separated word.
func matchTechItem(item string, lib *patterns.Library) string {
	lowerItem := strings.ToLower(item)
	fields := strings.Fields(lowerItem)
	for _, kw := range lib.TechKeywords {
		lowerKw := strings.ToLower(kw)
		if lowerItem == lowerKw {
			return kw
		}
		for _, f := range fields {
			if f == lowerKw {
				return kw
			}
		}
	}
	return ""
}

// splitListItems cuts an inline list on commas, newlines, bullets and
// semicolons.
func splitListItems(span string) []string {
	items := []string{span}
	for _, sep := range listItemSep {
		var next []string
		for _, item := range items {
			next = append(next, strings.Split(item, sep)...)
		}
		items = next
	}
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package extract

import (
	"strings"
	"unicode"

	"github.com/cvflow/cvparse/internal/patterns"
	"github.com/cvflow/cvparse/internal/record"
)

// Languages extracts spoken languages with a proficiency level. The explicit
// "Language: Level" pattern pass runs first; only when it yields nothing does
// the bare-mention pass scan for language names with a nearby level word.
func Languages(sectionText, fullText string, lib *patterns.Library) []record.Language {
	text := strings.TrimSpace(sectionText)
	if text == "" {
		text = fallbackParagraph(fullText, patterns.SectionFallbackKeywords["languages"])
	}
	if text == "" {
		return nil
	}

	var out []record.Language
	for _, m := range lib.LanguageLine.FindAllStringSubmatch(text, -1) {
		out = append(out, record.Language{
			Language:    capitalize(m[1]),
			Proficiency: levelFrom(m[2], lib),
		})
	}
	if len(out) > 0 {
		return out
	}

	lower := strings.ToLower(text)
	for _, lang := range lib.Languages {
		loc := lib.LanguageMention(lang, lower)
		if loc == nil {
			continue
		}
		// Look for a level word near the mention.
		ctxStart, ctxEnd := loc[0]-30, loc[1]+30
		if ctxStart < 0 {
			ctxStart = 0
		}
		if ctxEnd > len(lower) {
			ctxEnd = len(lower)
		}
		out = append(out, record.Language{
			Language:    capitalize(lang),
			Proficiency: levelFrom(lower[ctxStart:ctxEnd], lib),
		})
	}
	return out
}

// levelFrom maps a proficiency phrase to its canonical level, defaulting to
// Proficient when no known level word appears.
func levelFrom(phrase string, lib *patterns.Library) string {
	lower := strings.ToLower(strings.TrimSpace(phrase))
	for _, level := range lib.ProficiencyLevels {
		if strings.Contains(lower, level) {
			return canonicalLevel(level)
		}
	}
	if m := lib.CEFR.FindString(lower); m != "" {
		return strings.ToUpper(m)
	}
	return "Proficient"
}

func canonicalLevel(level string) string {
	// CEFR codes are upper-cased whole; words get a leading capital.
	if len(level) == 2 && level[0] >= 'a' && level[0] <= 'c' {
		return strings.ToUpper(level)
	}
	return capitalize(level)
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

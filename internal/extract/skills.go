package extract

import (
	"regexp"
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
	"github.com/cvflow/cvparse/internal/record"
)

// nextCategoryHeading ends a category sub-window at the following heading-like
// line ("Databases:", "Soft Skills").
var nextCategoryHeading = regexp.MustCompile(`\n[ \t]*[A-Za-z][A-Za-z\s&]*(?:\s+skills)?[ \t]*(?::|\n)`)

var skillParagraphKeywords = []string{"skill", "technology", "competency", "expertise"}

// Skills groups detected skills under their category labels, in the fixed
// category order. Skill words that belong to no category land in a trailing
// General Skills bucket.
func Skills(fullText string, sections map[string]string, lib *patterns.Library) []record.SkillCategory {
	skillsText := strings.TrimSpace(sections["skills"])
	if skillsText == "" {
		skillsText = skillParagraphs(fullText)
	}

	var out []record.SkillCategory
	claimed := map[string]bool{}

	for _, g := range lib.SkillCategories {
		window := categoryWindow(skillsText, g.Category, lib)

		var found []string
		for _, skill := range g.Skills {
			switch {
			case window != "" && lib.HasTechWord(skill, window):
				found = append(found, skill)
			case g.Category == "Programming Languages" && lib.HasTechWord(skill, fullText):
				// Languages show up in project and experience text too.
				found = append(found, skill)
			}
		}
		if len(found) > 0 {
			out = append(out, record.SkillCategory{Category: g.Category, Skills: found})
			for _, s := range found {
				claimed[strings.ToLower(s)] = true
			}
		}
	}

	if general := generalSkills(skillsText, claimed, lib); len(general) > 0 {
		out = append(out, record.SkillCategory{Category: "General Skills", Skills: general})
	}
	return out
}

// categoryWindow narrows the skills text to the span after the category's own
// sub-heading, up to the next heading-like line. Without a sub-heading the
// whole skills text is the window.
func categoryWindow(skillsText, category string, lib *patterns.Library) string {
	if skillsText == "" {
		return ""
	}
	re := lib.CategoryHeading(category)
	loc := re.FindStringIndex(skillsText)
	if loc == nil {
		return skillsText
	}
	rest := skillsText[loc[1]:]
	if next := nextCategoryHeading.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return rest
}

// generalSkills collects short free-form skill items (bulleted or in an
// inline list) that no category already claimed.
func generalSkills(skillsText string, claimed map[string]bool, lib *patterns.Library) []string {
	if skillsText == "" {
		return nil
	}

	var out []string
	seen := map[string]bool{}
	add := func(item string) {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if len(item) <= 2 || len(item) >= 50 || claimed[key] || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, item)
	}

	for _, b := range bullets(skillsText, lib) {
		add(b)
	}
	for _, loc := range lib.GeneralListLabel.FindAllStringIndex(skillsText, -1) {
		for _, item := range splitListItems(spanUntilBreak(skillsText, loc[1])) {
			add(item)
		}
	}
	return out
}

// skillParagraphs concatenates every paragraph of the document that mentions
// skills, for documents without a labeled skills section.
func skillParagraphs(fullText string) string {
	var parts []string
	for _, para := range strings.Split(fullText, "\n\n") {
		if containsAny(strings.ToLower(para), skillParagraphKeywords) {
			parts = append(parts, strings.TrimSpace(para))
		}
	}
	return strings.Join(parts, "\n\n")
}

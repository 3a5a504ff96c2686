package extract

import (
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
)

// objectiveMax caps the objective at roughly a short paragraph; anything
// longer is cut back to the last complete sentence inside the cap.
const objectiveMax = 500

// Objective returns the cleaned objective/summary statement: the first
// paragraph of the section, label and bullet markers removed.
func Objective(sectionText string, lib *patterns.Library) string {
	text := strings.TrimSpace(sectionText)
	if text == "" {
		return ""
	}

	text = lib.ObjectiveLabel.ReplaceAllString(text, "")

	para, _, _ := strings.Cut(text, "\n\n")
	para = lib.BulletStart.ReplaceAllString(para, "")
	para = strings.TrimSpace(para)

	if r := []rune(para); len(r) > objectiveMax {
		para = truncateAtSentence(string(r[:objectiveMax]))
	}
	return strings.TrimSpace(para)
}

// truncateAtSentence cuts text at the last sentence-ending punctuation that is
// followed by whitespace; when no boundary exists the text stays as cut.
func truncateAtSentence(text string) string {
	last := -1
	for i := 0; i < len(text)-1; i++ {
		switch text[i] {
		case '.', '!', '?':
			switch text[i+1] {
			case ' ', '\t', '\n':
				last = i
			}
		}
	}
	if last < 0 {
		return text
	}
	return text[:last+1]
}

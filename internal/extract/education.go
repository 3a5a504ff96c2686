package extract

import (
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
	"github.com/cvflow/cvparse/internal/record"
)

var dashSep = []string{" - ", " – ", " — "}

// Education extracts one entry per schooling stint. An entry is kept only when
// it names a degree or an institution.
func Education(sectionText, fullText string, lib *patterns.Library) []record.Education {
	text := sectionBody(sectionText, fullText, "education", lib)
	if text == "" {
		return nil
	}

	var out []record.Education
	for _, entry := range SplitEntries(text, lib) {
		e := record.Education{
			Degree:     strings.TrimSpace(lib.Degree.FindString(entry)),
			University: findUniversity(entry, lib),
			GPA:        findGPA(entry, lib),
		}
		e.StartDate, e.EndDate = DateSpan(entry, lib)

		if m := lib.Location.FindStringSubmatch(entry); m != nil {
			e.Location = strings.TrimSpace(m[1])
		}
		if loc := lib.Coursework.FindStringIndex(entry); loc != nil {
			e.Coursework = spanUntilBreak(entry, loc[1])
		}

		if e.Degree != "" || e.University != "" {
			out = append(out, e)
		}
	}
	return out
}

// findUniversity tries three strategies: an explicit "University of X" style
// name, a line mentioning an institution keyword, and finally the remainder of
// a "Degree - Institution" first line.
func findUniversity(entry string, lib *patterns.Library) string {
	if m := lib.UniversityName.FindString(entry); m != "" {
		return strings.TrimSpace(trimLine(m))
	}

	for _, line := range strings.Split(entry, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "university") || strings.Contains(lower, "college") ||
			strings.Contains(lower, "institute") || strings.Contains(lower, "school") {
			return strings.TrimSpace(line)
		}
	}

	// "B.S. Computer Science - MIT": degree before the dash, school after.
	first, _, _ := strings.Cut(entry, "\n")
	if lib.Degree.MatchString(first) {
		for _, sep := range dashSep {
			if _, after, ok := strings.Cut(first, sep); ok {
				return strings.TrimSpace(after)
			}
		}
	}
	return ""
}

func findGPA(entry string, lib *patterns.Library) string {
	if m := lib.GPA.FindStringSubmatch(entry); m != nil {
		return m[1]
	}
	return ""
}

// trimLine cuts a multi-line regexp match back to its first line.
func trimLine(s string) string {
	first, _, _ := strings.Cut(s, "\n")
	return first
}

// sectionBody returns the section's text, falling back to a keyword-selected
// paragraph of the full document, with a leading heading line stripped.
func sectionBody(sectionText, fullText, name string, lib *patterns.Library) string {
	text := strings.TrimSpace(sectionText)
	if text == "" {
		text = fallbackParagraph(fullText, patterns.SectionFallbackKeywords[name])
	}
	if text == "" {
		return ""
	}
	if re := lib.SectionRe(name); re != nil {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

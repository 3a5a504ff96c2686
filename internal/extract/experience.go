package extract

import (
	"regexp"
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
	"github.com/cvflow/cvparse/internal/record"
)

var (
	// roleCompanySep splits "Role at Company", "Role | Company", "Role - Company",
	// "Role, Company" and "Role (Company" at the first separator.
	roleCompanySep = regexp.MustCompile(`\s+at\s+|\s+[|@]\s+|\s+-\s+|\s*,\s+|\s+\(`)

	trailingParen = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

	openEndedAfter = regexp.MustCompile(`(?i)^\s*(?:[-–—]|to)\s*(?:\n|$)`)
	sinceBefore    = regexp.MustCompile(`(?i)\bsince\s*$`)
)

// Experience extracts one entry per employment stint. An entry is kept only
// when it has a role or a company.
func Experience(sectionText, fullText string, lib *patterns.Library) []record.Experience {
	text := sectionBody(sectionText, fullText, "experience", lib)
	if text == "" {
		return nil
	}

	var out []record.Experience
	for _, entry := range SplitEntries(text, lib) {
		e := buildExperience(entry, lib)
		if e.Role != "" || e.Company != "" {
			out = append(out, e)
		}
	}
	return out
}

func buildExperience(entry string, lib *patterns.Library) record.Experience {
	lines := nonBlankLines(entry)
	var e record.Experience
	if len(lines) == 0 {
		return e
	}

	e.Role, e.Company = splitRoleCompany(lines, lib)
	e.StartDate, e.EndDate = experienceDates(entry, lib)

	if m := lib.Location.FindStringSubmatch(entry); m != nil {
		e.Location = strings.TrimSpace(m[1])
	}

	e.Responsibilities = bullets(entry, lib)
	if len(e.Responsibilities) == 0 && len(lines) > 2 {
		for _, line := range lines[2:] {
			if pureDateLine(line, lib) || line == e.Location {
				continue
			}
			e.Responsibilities = append(e.Responsibilities, line)
		}
	}
	return e
}

// splitRoleCompany resolves the header line: first an explicit separator, then
// a known job title with the rest as company, then the bare first line with
// the second line as company.
func splitRoleCompany(lines []string, lib *patterns.Library) (role, company string) {
	first := lines[0]

	if loc := roleCompanySep.FindStringIndex(first); loc != nil {
		role = strings.TrimSpace(first[:loc[0]])
		company = strings.TrimSpace(trailingParen.ReplaceAllString(first[loc[1]:], ""))
		return role, company
	}

	lowerFirst := strings.ToLower(first)
	for _, title := range lib.JobTitles {
		lowerTitle := strings.ToLower(title)
		if i := strings.Index(lowerFirst, lowerTitle); i >= 0 {
			role = title
			company = strings.Trim(first[:i]+first[i+len(title):], " \t,-")
			return role, company
		}
	}

	role = strings.TrimSpace(first)
	if len(lines) > 1 && !pureDateLine(lines[1], lib) {
		company = lines[1]
	}
	return role, company
}

// experienceDates finds the entry's range, treating a lone date with an
// open-ended cue ("2020 -", "since 2019") as ongoing.
func experienceDates(entry string, lib *patterns.Library) (start, end string) {
	start, end = DateSpan(entry, lib)
	if start != "" {
		return start, end
	}

	loc := lib.DateToken.FindStringIndex(entry)
	if loc == nil {
		return "", ""
	}
	if openEndedAfter.MatchString(entry[loc[1]:]) || sinceBefore.MatchString(entry[:loc[0]]) {
		return entry[loc[0]:loc[1]], "Present"
	}
	return "", ""
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

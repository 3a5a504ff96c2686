package extract

import (
	"regexp"
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
	"github.com/cvflow/cvparse/internal/record"
)

var repoLink = regexp.MustCompile(`github\.com/[a-zA-Z0-9_.-]+/[a-zA-Z0-9_.-]+`)

// Projects extracts one entry per project. The first line of an entry is its
// title; entries without a title are dropped.
func Projects(sectionText, fullText string, lib *patterns.Library) []record.Project {
	text := sectionBody(sectionText, fullText, "projects", lib)
	if text == "" {
		return nil
	}

	var out []record.Project
	for _, entry := range SplitEntries(text, lib) {
		p := buildProject(entry, lib)
		if p.Title != "" {
			out = append(out, p)
		}
	}
	return out
}

func buildProject(entry string, lib *patterns.Library) record.Project {
	lines := nonBlankLines(entry)
	var p record.Project
	if len(lines) == 0 {
		return p
	}
	p.Title = lines[0]

	p.GitHubLink = repoLink.FindString(entry)

	if m := lib.DateRange.FindString(entry); m != "" {
		p.Timeframe = strings.TrimSpace(m)
	} else if m := lib.DateToken.FindString(entry); m != "" {
		p.Timeframe = strings.TrimSpace(m)
	}

	// Technology mentions in vocabulary order.
	for _, kw := range lib.TechKeywords {
		if lib.HasTechWord(kw, entry) {
			p.Technologies = append(p.Technologies, kw)
		}
	}

	p.Responsibilities = bullets(entry, lib)
	if len(p.Responsibilities) == 0 && len(lines) > 1 {
		for _, line := range lines[1:] {
			if pureDateLine(line, lib) || line == p.GitHubLink {
				continue
			}
			p.Responsibilities = append(p.Responsibilities, line)
		}
	}
	return p
}

package extract

import (
	"regexp"
	"strings"

	"github.com/cvflow/cvparse/internal/nlp"
	"github.com/cvflow/cvparse/internal/patterns"
	"github.com/cvflow/cvparse/internal/record"
)

// phoneJunk strips everything but digits and plus signs from a phone match.
var phoneJunk = regexp.MustCompile(`[^0-9+]`)

// Personal pulls the contact block fields. The search space is the detected
// personal_info and contact sections plus the document head, so a résumé with
// contact details scattered below the fold still resolves.
func Personal(text string, sections map[string]string, lib *patterns.Library, aug nlp.Augmenter) record.PersonalInfo {
	head := text
	if len(head) > 1000 {
		head = head[:1000]
	}
	search := strings.Join([]string{sections["personal_info"], sections["contact"], head}, "\n")

	var info record.PersonalInfo

	info.Email = lib.Email.FindString(search)

	if m := lib.Phone.FindString(search); m != "" {
		info.Phone = phoneJunk.ReplaceAllString(m, "")
	}

	if m := lib.LinkedIn.FindStringSubmatch(search); m != nil {
		info.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := lib.GitHub.FindStringSubmatch(search); m != nil {
		info.GitHub = "github.com/" + m[1]
	}
	info.Website = findWebsite(search, info.Email, lib)

	info.Name = findName(text, head, lib, aug)

	// First location mention that is not just the candidate's name again.
	for _, m := range lib.Location.FindAllStringSubmatch(search, -1) {
		loc := strings.TrimSpace(m[1])
		if loc != "" && loc != info.Name {
			info.Location = loc
			break
		}
	}

	return info
}

// findWebsite returns the first domain-looking match that is not the email's
// domain and not a linkedin or github URL (those have dedicated fields).
func findWebsite(search, email string, lib *patterns.Library) string {
	for _, m := range lib.Website.FindAllStringSubmatch(search, -1) {
		domain := strings.TrimSuffix(m[1], ".")
		if domain == "" {
			continue
		}
		lower := strings.ToLower(domain)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		if email != "" && strings.Contains(email, domain) {
			continue
		}
		return domain
	}
	return ""
}

// findName resolves the candidate's name: a capitalized full name at the very
// top of the document, then a person entity from the NLP pass, then an
// explicit "Name:" label anywhere in the head.
func findName(text, head string, lib *patterns.Library, aug nlp.Augmenter) string {
	top := text
	if len(top) > 500 {
		top = top[:500]
	}
	if m := lib.Name.FindStringSubmatch(top); m != nil {
		return strings.TrimSpace(m[1])
	}
	if names := aug.PersonEntities(head); len(names) > 0 {
		return strings.TrimSpace(names[0])
	}
	if m := lib.NameLabel.FindStringSubmatch(head); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

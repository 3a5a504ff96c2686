package extract

import (
	"regexp"
	"strings"

	"github.com/cvflow/cvparse/internal/patterns"
	"github.com/cvflow/cvparse/internal/record"
)

// Certifications extracts certification entries. Three structured line shapes
// contribute first ("Name (Issuer, Date)", "Name - Issuer - Date",
// "Name, Issuer, Date"), then bullet lines mentioning a certification keyword;
// unknown issuer and date come back as "Unknown".
func Certifications(sectionText, fullText string, lib *patterns.Library) []record.Certification {
	text := strings.TrimSpace(sectionText)
	if text == "" {
		text = fallbackParagraph(fullText, patterns.SectionFallbackKeywords["certifications"])
	}
	if text == "" {
		return nil
	}

	var out []record.Certification
	seen := map[string]bool{}
	add := func(c record.Certification) {
		key := strings.ToLower(c.Name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, c)
	}

	for _, re := range []*regexp.Regexp{lib.CertParen, lib.CertDash, lib.CertComma} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(record.Certification{
				Name:   strings.TrimSpace(m[1]),
				Issuer: strings.TrimSpace(m[2]),
				Date:   strings.TrimSpace(m[3]),
			})
		}
	}

	for _, b := range bullets(text, lib) {
		if !containsAny(strings.ToLower(b), patterns.CertKeywords) {
			continue
		}
		add(bulletCertification(b, lib))
	}

	if len(out) == 0 {
		// Last resort: any line mentioning a certificate becomes a bare entry.
		for _, line := range nonBlankLines(text) {
			if strings.Contains(strings.ToLower(line), "certificat") {
				add(record.Certification{Name: line, Issuer: "Unknown", Date: "Unknown"})
			}
		}
	}
	return out
}

// bulletCertification parses a loose bullet line: an optional " - Issuer"
// suffix and any date token found on the line.
func bulletCertification(b string, lib *patterns.Library) record.Certification {
	c := record.Certification{Name: b, Issuer: "Unknown", Date: "Unknown"}

	for _, sep := range dashSep {
		if name, issuer, ok := strings.Cut(b, sep); ok {
			c.Name = strings.TrimSpace(name)
			c.Issuer = strings.TrimSpace(issuer)
			break
		}
	}
	if m := lib.CertDate.FindString(b); m != "" {
		c.Date = m
		// A trailing date was already consumed into the issuer half.
		c.Issuer = strings.TrimSpace(strings.Trim(strings.Replace(c.Issuer, m, "", 1), " ,-–—"))
		if c.Issuer == "" {
			c.Issuer = "Unknown"
		}
	}
	return c
}

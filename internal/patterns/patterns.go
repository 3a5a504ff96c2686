// Package patterns is the shared pattern library for résumé extraction: the
// section-heading matchers, field-level regexps and keyword vocabularies every
// parsing stage draws from. It is pure data: one immutable Library value is
// built at startup and read concurrently by all extractors.
package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// Section identifies one known résumé section.
type Section struct {
	Name string
	Re   *regexp.Regexp
}

// SkillGroup maps a category label to its member skill names. Groups are kept
// in a slice so iteration order, and therefore output order, is stable.
type SkillGroup struct {
	Category string
	Skills   []string
}

// Library holds every compiled pattern and vocabulary used by the pipeline.
type Library struct {
	// Section heading matchers, in canonical order.
	Sections []Section

	// Contact and link fields.
	Email    *regexp.Regexp
	Phone    *regexp.Regexp
	LinkedIn *regexp.Regexp
	GitHub   *regexp.Regexp
	Website  *regexp.Regexp

	// Dates. DateToken matches a single long-form date (month-name + year, a
	// bare year, or a numeric date). DateRange matches "start sep end" with the
	// two sides captured; DateRangeShort is the bare "YYYY - YYYY" form.
	DateToken      *regexp.Regexp
	DateRange      *regexp.Regexp
	DateRangeShort *regexp.Regexp

	Location *regexp.Regexp
	Degree   *regexp.Regexp
	GPA      *regexp.Regexp

	// Bullet captures the text of a bullet-point line; BulletStart matches only
	// the leading marker.
	Bullet      *regexp.Regexp
	BulletStart *regexp.Regexp

	// Name is anchored at the start of the document; NameLabel matches an
	// explicit "Name: John Doe" line.
	Name      *regexp.Regexp
	NameLabel *regexp.Regexp

	UniversityName *regexp.Regexp
	Coursework     *regexp.Regexp
	ObjectiveLabel *regexp.Regexp

	// Certification line patterns, most specific first. CertDate finds a date
	// near a certification mention.
	CertParen *regexp.Regexp
	CertDash  *regexp.Regexp
	CertComma *regexp.Regexp
	CertDate  *regexp.Regexp

	// Inline skill-list labels ("Skills: ...", "Skills include ...").
	SkillListLabel   *regexp.Regexp
	GeneralListLabel *regexp.Regexp

	// LanguageLine matches "Language: Level" style mentions for any known
	// language; CEFR matches A1-C2 codes.
	LanguageLine *regexp.Regexp
	CEFR         *regexp.Regexp

	// Vocabularies.
	TechKeywords      []string
	SkillCategories   []SkillGroup
	JobTitles         []string
	EducationKeywords []string
	Languages         []string
	ProficiencyLevels []string

	categoryHeadings map[string]*regexp.Regexp
	techWord         map[string]*regexp.Regexp
	languageWord     map[string]*regexp.Regexp
	sectionByName    map[string]*regexp.Regexp
}

const (
	monthAlt = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`
	openEnd  = `present|current|now|ongoing|today`
)

// New builds the library. The result is safe for concurrent use and should be
// constructed once per process.
func New() *Library {
	lib := &Library{
		Email:    regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`),
		Phone:    regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\+\d{1,3}[-\s]?\d{1,14}`),
		LinkedIn: regexp.MustCompile(`(?:linkedin\.com/in/|linkedin\.com/profile/view\?id=|linkedin\.com/pub/)([a-zA-Z0-9_-]+)`),
		GitHub:   regexp.MustCompile(`github\.com/([a-zA-Z0-9_-]+)`),
		Website:  regexp.MustCompile(`(?:https?://)?(?:www\.)?([a-zA-Z0-9][-a-zA-Z0-9]{0,62}(?:\.[a-zA-Z0-9][-a-zA-Z0-9]{0,62})+\.?)`),

		DateToken: regexp.MustCompile(`(?i)` + monthAlt + `\s*\d{4}|(?:\d{1,2}/\d{1,2}/)?\d{4}`),
		DateRange: regexp.MustCompile(
			`(?i)(` + monthAlt + `\s*\d{4}|\d{4})\s*(?:to|[-–—])\s*(` + monthAlt + `\s*\d{4}|\d{4}|` + openEnd + `)`),
		DateRangeShort: regexp.MustCompile(`(?i)\d{4}\s*(?:to|[-–—])\s*(?:\d{4}|` + openEnd + `)`),

		Location: regexp.MustCompile(`(?:^|\n| )([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2}|[A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z][a-z]+|[A-Z][a-z]+\s+[A-Z][a-z]+)`),
		Degree: regexp.MustCompile(
			`(?:Bachelor|Master|Ph\.?D\.?|Doctorate|B\.S\.|M\.S\.|M\.B\.A\.|B\.Tech|M\.Tech|B\.A\.|M\.A\.|B\.Eng\.|M\.Eng\.|Associate|A\.A\.|B\.Sc\.|M\.Sc\.|B\.Com\.|M\.Com\.|LL\.B\.|J\.D\.)` +
				`(?:\s+(?:of|in)\s+)?` +
				`(?:Science|Arts|Engineering|Technology|Business|Administration|Computer|Finance|Management|Law|Medicine|Education|Economics|Psychology|Philosophy|Communication|Marketing|Accounting|Information|Systems)?`),
		GPA: regexp.MustCompile(`(?:GPA|Grade Point Average)(?:\s+of|:)?\s+(\d+\.\d+)(?:/\d+\.\d+)?`),

		Bullet:      regexp.MustCompile(`(?m)^[ \t]*(?:[•●■◦○❖✦★✓\-]|\d+\.[ \t]+|\(\d+\)[ \t]+|[A-Z]\.|[ivxIVX]+\.[ \t]+|[a-z]\)[ \t]+)[ \t]*(.+)$`),
		BulletStart: regexp.MustCompile(`(?m)^[ \t]*(?:[•●■◦○❖✦★✓\-]|\d+\.[ \t]+|\(\d+\)[ \t]+|[A-Z]\.|[ivxIVX]+\.[ \t]+|[a-z]\)[ \t]+)`),

		Name:      regexp.MustCompile(`\A([A-Z][a-z]+(?:[\s'\-][A-Z][a-z]+)+)`),
		NameLabel: regexp.MustCompile(`(?im)^(?:name|full name|candidate)[:\s]+([A-Z][a-z]+(?:\s[A-Z][a-z]+)+)`),

		UniversityName: regexp.MustCompile(`(?i)(?:university|college|institute|school)\s+(?:(?:of|for)\s+)?[A-Z][A-Za-z\s,]+`),
		Coursework:     regexp.MustCompile(`(?i)(?:relevant coursework|key courses|coursework|courses)[:\s]+`),
		ObjectiveLabel: regexp.MustCompile(`(?i)^(?:career\s+objective|professional\s+summary|summary|profile|about|objective|career\s+profile)[\s:]*`),

		CertParen: regexp.MustCompile(`([A-Za-z0-9\s'",&.®™\-]+?)\s*\(([A-Za-z\s]+),\s*(\w+\s*\d{4}|\d{4})\)`),
		CertDash:  regexp.MustCompile(`([A-Za-z0-9\s'",&.®™]+?)\s*[-–—]\s*([A-Za-z\s]+?)\s*[-–—]\s*(\w+\s*\d{4}|\d{4})`),
		CertComma: regexp.MustCompile(`([A-Za-z0-9\s'"&.®™\-]+?),\s*([A-Za-z\s]+?),\s*(\w+\s*\d{4}|\d{4})`),
		CertDate:  regexp.MustCompile(`(?i)\b` + monthAlt + `\s*\d{4}|\d{4}`),

		SkillListLabel:   regexp.MustCompile(`(?i)(?:skills|technologies|technical|programming|software)[:\s]+`),
		GeneralListLabel: regexp.MustCompile(`(?i)(?:skills|abilities|proficiencies)(?::|\s+include|\s+are)?\s+`),

		CEFR: regexp.MustCompile(`(?i)\b(a1|a2|b1|b2|c1|c2)\b`),

		TechKeywords:      techKeywords(),
		SkillCategories:   skillCategories(),
		JobTitles:         jobTitles(),
		EducationKeywords: educationKeywords(),
		Languages:         languageNames(),
		ProficiencyLevels: proficiencyLevels(),
	}

	lib.Sections = compileSections()
	lib.sectionByName = make(map[string]*regexp.Regexp, len(lib.Sections))
	for _, s := range lib.Sections {
		lib.sectionByName[s.Name] = s.Re
	}

	lib.LanguageLine = regexp.MustCompile(
		`(?i)\b(` + strings.Join(lib.Languages, `|`) + `)\b\s*(?::|[-–]\s*|\(\s*|\s+)([^,;\n)]+)`)

	lib.categoryHeadings = make(map[string]*regexp.Regexp, len(lib.SkillCategories))
	for _, g := range lib.SkillCategories {
		alt := strings.ReplaceAll(regexp.QuoteMeta(g.Category), ` `, `\s+`)
		lib.categoryHeadings[g.Category] = regexp.MustCompile(
			`(?im)^[ \t]*(?:` + alt + `)(?:\s+skills)?[ \t]*(?::|\n|$)`)
	}

	lib.techWord = make(map[string]*regexp.Regexp, len(lib.TechKeywords))
	for _, kw := range lib.TechKeywords {
		lib.techWord[kw] = wordRe(kw)
	}

	lib.languageWord = make(map[string]*regexp.Regexp, len(lib.Languages))
	for _, lang := range lib.Languages {
		lib.languageWord[lang] = regexp.MustCompile(`\b` + lang + `\b`)
	}

	return lib
}

// LanguageMention returns the location of the first whole-word mention of the
// (lowercase) language name in lowercased text, or nil.
func (l *Library) LanguageMention(lang, lowerText string) []int {
	re := l.languageWord[lang]
	if re == nil {
		return nil
	}
	return re.FindStringIndex(lowerText)
}

// SectionRe returns the heading matcher for a section name, or nil.
func (l *Library) SectionRe(name string) *regexp.Regexp {
	return l.sectionByName[name]
}

// SectionNames returns every known section name in canonical order.
func (l *Library) SectionNames() []string {
	names := make([]string, len(l.Sections))
	for i, s := range l.Sections {
		names[i] = s.Name
	}
	return names
}

// CategoryHeading returns the sub-heading matcher for a skill category label.
func (l *Library) CategoryHeading(category string) *regexp.Regexp {
	return l.categoryHeadings[category]
}

// HasTechWord reports whether the technology keyword occurs as a whole word
// in text (case-insensitive).
func (l *Library) HasTechWord(keyword, text string) bool {
	re := l.techWord[keyword]
	if re == nil {
		re = wordRe(keyword)
	}
	return re.MatchString(text)
}

// wordRe builds a case-insensitive whole-word matcher. \b does not sit well
// next to escaped punctuation (C++, Node.js), so the boundaries are expressed
// with explicit non-word-character alternatives.
func wordRe(keyword string) *regexp.Regexp {
	q := regexp.QuoteMeta(strings.ToLower(keyword))
	return regexp.MustCompile(`(?i)(?:^|[^a-zA-Z0-9+#.])` + q + `(?:$|[^a-zA-Z0-9+#])`)
}

// heading builds a section-heading matcher: the synonym alone on its line,
// case-insensitive, optionally ending in a colon, consuming the trailing
// newline so a match's end offset is where the section content begins.
func heading(synonyms string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?mi)^[ \t]*(?:%s)[ \t]*:?[ \t]*(?:\n|$)`, synonyms))
}

func compileSections() []Section {
	return []Section{
		// personal_info matches a capitalized full name at the very top of the
		// document; the contact block that follows becomes its content.
		{Name: "personal_info", Re: regexp.MustCompile(`\A((?:[A-Z][a-z]+[ \t])*[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)+)[ \t]*\n`)},
		{Name: "objective", Re: heading(`career\s+objective|professional\s+summary|summary|profile|about|objective|career\s+profile|professional\s+profile|career\s+overview|executive\s+summary`)},
		{Name: "experience", Re: heading(`experience|work\s+history|employment(?:\s+history)?|professional\s+experience|work\s+experience|career\s+history|professional\s+background`)},
		{Name: "education", Re: heading(`education|academic|educational\s+background|academic\s+background|educational\s+qualifications|academic\s+qualifications`)},
		{Name: "skills", Re: heading(`skills|technical\s+skills|technology|technologies|technical\s+expertise|key\s+skills|core\s+competencies|competencies|areas\s+of\s+expertise|areas\s+of\s+strength|professional\s+skills|digital\s+skills`)},
		{Name: "projects", Re: heading(`projects|project\s+experience|personal\s+projects|professional\s+projects|portfolio|case\s+studies|notable\s+projects`)},
		{Name: "languages", Re: heading(`languages|language\s+proficiency|language\s+skills|foreign\s+languages`)},
		{Name: "certifications", Re: heading(`certifications|certificates|qualifications|professional\s+certifications|professional\s+development|accreditations|training`)},
		{Name: "achievements", Re: heading(`achievements|honors|awards|recognitions|accomplishments|accolades`)},
		{Name: "publications", Re: heading(`publications|research|papers|articles|published\s+work`)},
		{Name: "interests", Re: heading(`interests|hobbies|activities|personal\s+interests|extracurricular\s+activities`)},
		{Name: "references", Re: heading(`references|referees|recommendations|testimonials|professional\s+references`)},
		{Name: "volunteer", Re: heading(`volunteer(?:\s+experience)?|community\s+service|charity\s+work|pro\s+bono|community\s+involvement`)},
		{Name: "leadership", Re: heading(`leadership(?:\s+experience)?|leadership\s+roles|leadership\s+positions|management\s+experience`)},
		{Name: "coursework", Re: heading(`coursework|courses|relevant\s+courses|relevant\s+coursework|key\s+courses`)},
		{Name: "contact", Re: heading(`contact|contact\s+details|contact\s+information|personal\s+details|personal\s+information`)},
	}
}

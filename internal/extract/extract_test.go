package extract

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cvflow/cvparse/internal/nlp"
	"github.com/cvflow/cvparse/internal/patterns"
)

func TestPersonal(t *testing.T) {
	lib := patterns.New()
	text := "Jane Doe\njane.doe@email.com | (555) 123-4567 | linkedin.com/in/janedoe\nSan Francisco, CA\n\nEXPERIENCE\nthings"
	sections := map[string]string{
		"personal_info": "jane.doe@email.com | (555) 123-4567 | linkedin.com/in/janedoe\nSan Francisco, CA",
	}

	info := Personal(text, sections, lib, nlp.Noop{})

	if info.Name != "Jane Doe" {
		t.Errorf("name = %q", info.Name)
	}
	if info.Email != "jane.doe@email.com" {
		t.Errorf("email = %q", info.Email)
	}
	if info.Phone != "5551234567" {
		t.Errorf("phone = %q", info.Phone)
	}
	if info.LinkedIn != "linkedin.com/in/janedoe" {
		t.Errorf("linkedin = %q", info.LinkedIn)
	}
	if info.Location != "San Francisco, CA" {
		t.Errorf("location = %q", info.Location)
	}
	if info.Website != "" {
		t.Errorf("website = %q, want empty (email and linkedin domains excluded)", info.Website)
	}
}

func TestPersonalNameLabel(t *testing.T) {
	lib := patterns.New()
	text := "resume\nName: John Smith\njohn@example.com"

	info := Personal(text, map[string]string{}, lib, nlp.Noop{})
	if info.Name != "John Smith" {
		t.Errorf("name = %q", info.Name)
	}
}

func TestObjective(t *testing.T) {
	lib := patterns.New()

	got := Objective("Seeking a challenging role.\n\nSecond paragraph ignored.", lib)
	if got != "Seeking a challenging role." {
		t.Errorf("got %q", got)
	}

	got = Objective("Objective: build great software.", lib)
	if got != "build great software." {
		t.Errorf("label not stripped: %q", got)
	}

	if got := Objective("   ", lib); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestObjectiveTruncation(t *testing.T) {
	lib := patterns.New()

	first := strings.Repeat("a", 200) + ". "
	second := strings.Repeat("b", 400)
	got := Objective(first+second, lib)

	if len(got) != 201 {
		t.Errorf("len = %d, want 201 (cut at the sentence boundary)", len(got))
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("got %q, want trailing period", got)
	}
}

func TestEducation(t *testing.T) {
	lib := patterns.New()

	entries := Education("B.S. Computer Science - MIT\n2016 - 2020\nGPA: 3.9", "", lib)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Degree != "B.S." {
		t.Errorf("degree = %q", e.Degree)
	}
	if e.University != "MIT" {
		t.Errorf("university = %q", e.University)
	}
	if e.StartDate != "2016" || e.EndDate != "2020" {
		t.Errorf("dates = (%q, %q)", e.StartDate, e.EndDate)
	}
	if e.GPA != "3.9" {
		t.Errorf("gpa = %q", e.GPA)
	}
}

func TestEducationInstitutionLine(t *testing.T) {
	lib := patterns.New()

	entries := Education("Master of Science\nStanford University\n2010 - 2012", "", lib)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Degree != "Master of Science" {
		t.Errorf("degree = %q", entries[0].Degree)
	}
	if entries[0].University != "Stanford University" {
		t.Errorf("university = %q", entries[0].University)
	}
}

func TestEducationDropsInvalidEntries(t *testing.T) {
	lib := patterns.New()

	if entries := Education("some text without credentials", "", lib); entries != nil {
		t.Errorf("got %v, want nil", entries)
	}
}

func TestExperience(t *testing.T) {
	lib := patterns.New()
	section := "Software Engineer - Acme Corp\nJune 2020 - Present\n• Built APIs\n• Led a team"

	entries := Experience(section, "", lib)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Role != "Software Engineer" {
		t.Errorf("role = %q", e.Role)
	}
	if e.Company != "Acme Corp" {
		t.Errorf("company = %q", e.Company)
	}
	if e.StartDate != "June 2020" || e.EndDate != "Present" {
		t.Errorf("dates = (%q, %q)", e.StartDate, e.EndDate)
	}
	if !reflect.DeepEqual(e.Responsibilities, []string{"Built APIs", "Led a team"}) {
		t.Errorf("responsibilities = %q", e.Responsibilities)
	}
}

func TestExperienceJobTitleFallback(t *testing.T) {
	lib := patterns.New()

	entries := Experience("Acme Senior Software Engineer\n2019 - 2020\nshipped features", "", lib)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Role != "Senior Software Engineer" {
		t.Errorf("role = %q", entries[0].Role)
	}
	if entries[0].Company != "Acme" {
		t.Errorf("company = %q", entries[0].Company)
	}
}

func TestExperienceOpenEnded(t *testing.T) {
	lib := patterns.New()

	entries := Experience("Developer at Beta\nsince 2019\nbuilding tools", "", lib)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].StartDate != "2019" || entries[0].EndDate != "Present" {
		t.Errorf("dates = (%q, %q)", entries[0].StartDate, entries[0].EndDate)
	}
}

func TestProjects(t *testing.T) {
	lib := patterns.New()
	section := "Portfolio Website\ngithub.com/jane/site\n• Built with React and CSS"

	entries := Projects(section, "", lib)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	p := entries[0]
	if p.Title != "Portfolio Website" {
		t.Errorf("title = %q", p.Title)
	}
	if p.GitHubLink != "github.com/jane/site" {
		t.Errorf("github_link = %q", p.GitHubLink)
	}
	if !reflect.DeepEqual(p.Technologies, []string{"CSS", "React"}) {
		t.Errorf("technologies = %q (vocabulary order expected)", p.Technologies)
	}
	if !reflect.DeepEqual(p.Responsibilities, []string{"Built with React and CSS"}) {
		t.Errorf("responsibilities = %q", p.Responsibilities)
	}
}

func TestLanguages(t *testing.T) {
	lib := patterns.New()

	langs := Languages("English: Native\nSpanish - Intermediate\nFrench (B2)", "", lib)
	if len(langs) != 3 {
		t.Fatalf("got %d languages, want 3: %v", len(langs), langs)
	}
	if langs[0].Language != "English" || langs[0].Proficiency != "Native" {
		t.Errorf("first = %+v", langs[0])
	}
	if langs[1].Language != "Spanish" || langs[1].Proficiency != "Intermediate" {
		t.Errorf("second = %+v", langs[1])
	}
	if langs[2].Language != "French" || langs[2].Proficiency != "B2" {
		t.Errorf("third = %+v", langs[2])
	}
}

func TestLanguagesDefaultProficiency(t *testing.T) {
	lib := patterns.New()

	langs := Languages("German: daily usage", "", lib)
	if len(langs) != 1 {
		t.Fatalf("got %d languages, want 1", len(langs))
	}
	if langs[0].Proficiency != "Proficient" {
		t.Errorf("proficiency = %q", langs[0].Proficiency)
	}
}

func TestTechnologies(t *testing.T) {
	lib := patterns.New()
	text := "Skills: Python, React, Leadership, Docker"

	got := Technologies(text, text, lib)
	if !reflect.DeepEqual(got, []string{"Python", "React", "Docker"}) {
		t.Errorf("got %q", got)
	}
}

func TestTechnologiesEmptyDocument(t *testing.T) {
	lib := patterns.New()
	if got := Technologies("", "I like hiking and cooking.", lib); got != nil {
		t.Errorf("got %q, want nil", got)
	}
}

func TestCertifications(t *testing.T) {
	lib := patterns.New()
	text := "AWS Certified Solutions Architect (Amazon, 2023)\n• Certified Kubernetes Administrator - CNCF"

	certs := Certifications(text, "", lib)
	if len(certs) != 2 {
		t.Fatalf("got %d certifications, want 2: %v", len(certs), certs)
	}
	if certs[0].Name != "AWS Certified Solutions Architect" || certs[0].Issuer != "Amazon" || certs[0].Date != "2023" {
		t.Errorf("first = %+v", certs[0])
	}
	if certs[1].Name != "Certified Kubernetes Administrator" || certs[1].Issuer != "CNCF" {
		t.Errorf("second = %+v", certs[1])
	}
	if certs[1].Date != "Unknown" {
		t.Errorf("date = %q, want Unknown", certs[1].Date)
	}
}

func TestSkills(t *testing.T) {
	lib := patterns.New()
	skillsText := "Programming Languages: Python, Java\nSoft Skills: Leadership, Communication\n• Public Speaking"
	sections := map[string]string{"skills": skillsText}

	groups := Skills(skillsText, sections, lib)

	byCategory := map[string][]string{}
	for _, g := range groups {
		byCategory[g.Category] = g.Skills
	}
	if !reflect.DeepEqual(byCategory["Programming Languages"], []string{"Python", "Java"}) {
		t.Errorf("programming languages = %q", byCategory["Programming Languages"])
	}
	if !reflect.DeepEqual(byCategory["Soft Skills"], []string{"Communication", "Leadership"}) {
		t.Errorf("soft skills = %q", byCategory["Soft Skills"])
	}
	if !reflect.DeepEqual(byCategory["General Skills"], []string{"Public Speaking"}) {
		t.Errorf("general skills = %q", byCategory["General Skills"])
	}
	// General Skills comes last.
	if len(groups) == 0 || groups[len(groups)-1].Category != "General Skills" {
		t.Errorf("groups = %v, want General Skills last", groups)
	}
}

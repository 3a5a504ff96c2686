package patterns

import "testing"

func TestSectionHeadings(t *testing.T) {
	lib := New()

	cases := []struct {
		section string
		line    string
		want    bool
	}{
		{"experience", "EXPERIENCE\n", true},
		{"experience", "Work History\n", true},
		{"experience", "Professional Experience:\n", true},
		{"experience", "experienced developer\n", false},
		{"education", "Education\n", true},
		{"education", "Academic Background\n", true},
		{"skills", "Core Competencies\n", true},
		{"objective", "Professional Summary\n", true},
		{"languages", "Languages:\n", true},
		{"certifications", "Training\n", true},
	}
	for _, c := range cases {
		re := lib.SectionRe(c.section)
		if re == nil {
			t.Fatalf("no matcher for section %q", c.section)
		}
		if got := re.MatchString(c.line); got != c.want {
			t.Errorf("section %q match %q = %v, want %v", c.section, c.line, got, c.want)
		}
	}
}

func TestTechWordBoundaries(t *testing.T) {
	lib := New()

	cases := []struct {
		keyword string
		text    string
		want    bool
	}{
		{"C++", "Expert in C++ and Java", true},
		{"C#", "Worked with C# daily", true},
		{"Node.js", "Node.js backend services", true},
		{"R", "Python, R, SQL", true},
		{"R", "I like hiking and reading", false},
		{"Java", "JavaScript only", false},
		{"Go", "Going to the store", false},
		{"Go", "wrote services in go", true},
	}
	for _, c := range cases {
		if got := lib.HasTechWord(c.keyword, c.text); got != c.want {
			t.Errorf("HasTechWord(%q, %q) = %v, want %v", c.keyword, c.text, got, c.want)
		}
	}
}

func TestDateRange(t *testing.T) {
	lib := New()

	m := lib.DateRange.FindStringSubmatch("June 2020 - Present")
	if m == nil {
		t.Fatal("expected range match")
	}
	if m[1] != "June 2020" || m[2] != "Present" {
		t.Errorf("got (%q, %q)", m[1], m[2])
	}

	m = lib.DateRange.FindStringSubmatch("worked there 2016 to 2020")
	if m == nil {
		t.Fatal("expected range match")
	}
	if m[1] != "2016" || m[2] != "2020" {
		t.Errorf("got (%q, %q)", m[1], m[2])
	}

	if lib.DateRange.MatchString("just 2020 alone") {
		t.Error("lone year should not be a range")
	}
}

func TestDegree(t *testing.T) {
	lib := New()

	if got := lib.Degree.FindString("B.S. Computer Science - MIT"); got != "B.S." {
		t.Errorf("degree = %q, want B.S.", got)
	}
	if got := lib.Degree.FindString("Master of Science in CS"); got != "Master of Science" {
		t.Errorf("degree = %q, want Master of Science", got)
	}
	if got := lib.Degree.FindString("no credentials here"); got != "" {
		t.Errorf("degree = %q, want empty", got)
	}
}

func TestGPA(t *testing.T) {
	lib := New()

	m := lib.GPA.FindStringSubmatch("GPA: 3.9")
	if m == nil || m[1] != "3.9" {
		t.Fatalf("GPA match = %v", m)
	}
	m = lib.GPA.FindStringSubmatch("GPA of 3.7/4.0")
	if m == nil || m[1] != "3.7" {
		t.Fatalf("GPA match = %v", m)
	}
}

func TestLanguageLine(t *testing.T) {
	lib := New()

	matches := lib.LanguageLine.FindAllStringSubmatch("English: Native\nSpanish - Intermediate", -1)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0][1] != "English" && matches[0][1] != "english" {
		t.Errorf("first language = %q", matches[0][1])
	}
}

func TestCategoryHeading(t *testing.T) {
	lib := New()

	re := lib.CategoryHeading("Programming Languages")
	if re == nil {
		t.Fatal("no heading matcher")
	}
	if !re.MatchString("Programming Languages: Python, Java") {
		t.Error("expected heading match")
	}
	if re.MatchString("I know many programming languages well") {
		t.Error("mid-sentence mention should not match")
	}
}

package record

// CV is the structured result of parsing one résumé document. All entities are
// value records: they exist only within the CV returned by a single parse and
// carry no identity beyond their position in a containing list.
type CV struct {
	PersonalInfo PersonalInfo    `json:"personal_info"`
	Sections     map[string]bool `json:"sections"`
	Content      Content         `json:"content"`
}

// Content bundles the per-section extraction results.
type Content struct {
	Objective      string          `json:"objective,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Technologies   []string        `json:"technologies,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Skills         []SkillCategory `json:"skills,omitempty"`
}

// PersonalInfo holds contact details found near the top of the document.
// At most one per document; every field is optional.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Education is one schooling entry. Valid only if Degree or University is set.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	University  string `json:"university,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Certificate string `json:"certificate,omitempty"`
	Coursework  string `json:"coursework,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Experience is one job entry. Valid only if Role or Company is set.
type Experience struct {
	Role             string   `json:"role,omitempty"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	EndDate          string   `json:"endDate,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Project is one project entry. Valid only if Title is set.
type Project struct {
	Title            string   `json:"title,omitempty"`
	GitHubLink       string   `json:"github_link,omitempty"`
	Timeframe        string   `json:"timeframe,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Language pairs a language name with a proficiency level. Duplicates are
// possible; order is not significant.
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Certification is one certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// SkillCategory groups skill names under a category label. Skills not matched
// to any known category land in the "General Skills" bucket.
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Empty returns a structurally valid CV with no content. Returned by the parse
// boundary when the pipeline fails unexpectedly, so callers always receive a
// well-formed record.
func Empty() *CV {
	return &CV{
		PersonalInfo: PersonalInfo{},
		Sections:     map[string]bool{},
		Content:      Content{},
	}
}

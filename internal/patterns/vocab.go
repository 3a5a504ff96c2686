package patterns

// Keyword vocabularies. These back the technology, skill, language and
// job-title extractors; keep each list's order stable, since extractors emit
// matches in vocabulary order.

func techKeywords() []string {
	return []string{
		// Programming languages
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby", "Go", "Rust",
		"Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Dart", "Elixir", "Clojure", "Haskell",

		// Web technologies
		"HTML", "CSS", "SASS", "LESS", "Bootstrap", "jQuery", "React", "Angular", "Vue.js", "Ember.js",
		"Node.js", "Express.js", "Django", "Flask", "Spring", "Laravel", "Ruby on Rails", "ASP.NET",

		// Databases
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQL Server", "SQLite", "Cassandra",
		"Elasticsearch", "Neo4j", "Firebase", "DynamoDB",

		// DevOps & cloud
		"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
		"GitHub Actions", "CI/CD", "Nginx", "Apache", "Linux", "Unix", "Bash", "Shell Scripting",

		// Data science & ML
		"Pandas", "NumPy", "SciPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras", "OpenCV",
		"NLTK", "spaCy", "Hadoop", "Spark", "Tableau", "Power BI",

		// Mobile
		"Android", "iOS", "React Native", "Flutter", "Xamarin", "Ionic",

		// Other
		"Git", "SVN", "Mercurial", "REST", "GraphQL", "gRPC", "WebSockets", "OAuth", "JWT",
		"Blockchain", "Ethereum", "Solidity", "Web3",
	}
}

func skillCategories() []SkillGroup {
	return []SkillGroup{
		{Category: "Programming Languages", Skills: []string{
			"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby", "Go", "Rust",
			"Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Dart", "Elixir", "Clojure", "Haskell",
		}},
		{Category: "Web Development", Skills: []string{
			"HTML", "CSS", "SASS", "LESS", "Bootstrap", "jQuery", "React", "Angular", "Vue.js",
			"Node.js", "Express.js", "Django", "Flask", "Spring", "Laravel", "Ruby on Rails",
		}},
		{Category: "Databases", Skills: []string{
			"MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQL Server", "SQLite", "Cassandra",
			"Elasticsearch", "Neo4j", "Firebase", "DynamoDB",
		}},
		{Category: "DevOps & Cloud", Skills: []string{
			"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
			"CI/CD", "Nginx", "Apache", "Linux", "Unix", "Bash", "Shell Scripting",
		}},
		{Category: "Data Science", Skills: []string{
			"Pandas", "NumPy", "SciPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras", "OpenCV",
			"NLTK", "spaCy", "Hadoop", "Spark", "Tableau", "Power BI",
		}},
		{Category: "Mobile Development", Skills: []string{
			"Android", "iOS", "React Native", "Flutter", "Xamarin", "Ionic",
		}},
		{Category: "Soft Skills", Skills: []string{
			"Communication", "Leadership", "Teamwork", "Problem Solving", "Critical Thinking",
			"Time Management", "Adaptability", "Creativity", "Collaboration", "Presentation",
		}},
		{Category: "Project Management", Skills: []string{
			"Agile", "Scrum", "Kanban", "Waterfall", "JIRA", "Trello", "Confluence",
			"Project Planning", "Risk Management", "Budgeting",
		}},
	}
}

func jobTitles() []string {
	return []string{
		"Senior Software Engineer", "Software Engineer", "Software Developer", "Web Developer",
		"Frontend Developer", "Backend Developer", "Full Stack Developer", "DevOps Engineer",
		"Data Scientist", "Machine Learning Engineer", "Data Engineer", "Data Analyst",
		"Systems Administrator", "Network Engineer", "Security Engineer", "QA Engineer",
		"Product Manager", "Project Manager", "Technical Lead", "Engineering Manager",
		"CTO", "CIO", "IT Director", "Solutions Architect", "UX Designer", "UI Designer",
	}
}

func educationKeywords() []string {
	return []string{
		"University", "College", "Institute", "School", "Academy",
		"Bachelor", "Master", "PhD", "Doctorate", "B.S.", "M.S.", "MBA",
		"B.Tech", "M.Tech", "B.A.", "M.A.", "B.Sc.", "M.Sc.", "B.E.", "M.E.",
	}
}

func languageNames() []string {
	return []string{
		"english", "spanish", "french", "german", "italian", "russian", "chinese", "japanese",
		"korean", "arabic", "portuguese", "hindi", "bengali", "dutch", "turkish", "polish",
		"vietnamese", "thai", "swedish", "romanian", "greek", "czech", "danish", "finnish",
		"hebrew", "hungarian", "norwegian",
	}
}

// proficiencyLevels is ordered most-specific first; the first level found in a
// proficiency phrase wins. CEFR codes come last so explicit words take
// precedence.
func proficiencyLevels() []string {
	return []string{
		"native", "fluent", "proficient", "intermediate", "advanced", "beginner", "basic",
		"elementary", "professional", "working", "limited", "conversational", "business",
		"mother tongue", "c2", "c1", "b2", "b1", "a2", "a1",
	}
}

// Fallback keyword groups used when a section is missing or unlabeled.

// SectionFallbackKeywords selects a paragraph for a section that had no
// heading.
var SectionFallbackKeywords = map[string][]string{
	"education":      {"degree", "university", "college", "bachelor", "master", "phd", "gpa"},
	"experience":     {"experience", "work history", "employment"},
	"projects":       {"project", "portfolio", "application", "developed", "created", "built"},
	"languages":      {"language", "proficiency", "fluent", "native", "speak"},
	"certifications": {"certification", "certificate", "certified", "license", "accreditation"},
	"skills":         {"skill", "technology", "competency", "expertise"},
}

// RefineKeywords drive the line-window scan that recovers education and
// experience sections whose headings were not recognized.
var RefineKeywords = map[string][]string{
	"education":  {"university", "college", "degree", "bachelor", "master", "phd", "b.s.", "m.s.", "gpa"},
	"experience": {"experience", "work history", "employment", "job", "position", "role"},
}

// ImplicitGroups is the last-resort fallback: when no headings are detected at
// all, the whole document is assigned to every section whose group matches.
var ImplicitGroups = []struct {
	Section string
	Re      string
}{
	{Section: "experience", Re: `(?i)experience|work|job|position`},
	{Section: "education", Re: `(?i)education|university|college|school|degree`},
	{Section: "skills", Re: `(?i)skill|proficiency|expertise`},
	{Section: "projects", Re: `(?i)project|portfolio`},
	{Section: "objective", Re: `(?i)objective|summary|profile`},
}

// CertKeywords flag a bullet line as a certification mention.
var CertKeywords = []string{"certification", "certificate", "certified"}

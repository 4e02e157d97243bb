package cv

// Document is the structured form of a CV markdown file.
type Document struct {
	Name           string         `json:"name"`
	Position       string         `json:"position"`
	Contact        string         `json:"contact"`
	About          string         `json:"about"`
	Skills         []string       `json:"skills"`
	Experience     []WorkEntry    `json:"experience"`
	Projects       []ProjectEntry `json:"projects"`
	Education      []string       `json:"education"`
	Certifications []string       `json:"certifications"`
}

// WorkEntry is a single position under "## Work Experience".
type WorkEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ProjectEntry is a single project under "## Projects".
type ProjectEntry struct {
	Title        string   `json:"title"`
	Link         string   `json:"link"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Section identifies the region of the document a line belongs to.
type Section int

const (
	SectionNone Section = iota
	SectionAbout
	SectionSkills
	SectionExperience
	SectionEducation
	SectionProjects
	SectionCertifications
)

func (s Section) String() (name string) {
	switch s {
	case SectionAbout:
		name = "about"
	case SectionSkills:
		name = "skills"
	case SectionExperience:
		name = "experience"
	case SectionEducation:
		name = "education"
	case SectionProjects:
		name = "projects"
	case SectionCertifications:
		name = "certifications"
	default:
		name = "none"
	}
	return name
}

// newDocument returns a Document with every list initialized so that an empty
// section serializes as [] rather than null.
func newDocument() (doc Document) {
	doc = Document{
		Skills:         make([]string, 0),
		Experience:     make([]WorkEntry, 0),
		Projects:       make([]ProjectEntry, 0),
		Education:      make([]string, 0),
		Certifications: make([]string, 0),
	}
	return doc
}

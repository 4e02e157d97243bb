package cv

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SampleFilename is the name WriteSample uses inside the target directory.
const SampleFilename = "sample_cv.md"

// SampleMarkdown is a complete CV exercising every section of the grammar.
const SampleMarkdown = `# John Doe
## Software Developer
### john.doe@email.com | +1-234-567-8900 | linkedin.com/in/johndoe

## About
Experienced software developer with 5+ years in full-stack development,
specializing in Python and JavaScript technologies.

## Skills
- **Languages:** Python, JavaScript, TypeScript, Java
- **Frameworks:** React, Django, FastAPI, Node.js
- **Databases:** PostgreSQL, MongoDB, Redis
- **Tools:** Git, Docker, AWS, Jenkins

## Work Experience
### Senior Software Developer
**TechCorp Inc. | 2022 - Present | Remote**
Developed and maintained web applications serving 50,000+ active users.
Led a team of 4 junior developers, providing mentorship and code reviews.
**Technologies:** Python, React, Docker, AWS

### Software Developer
**StartupXYZ | 2020 - 2022 | Berlin**
Built RESTful APIs using Python Django serving 1M+ requests daily.
**Technologies:** Python, Django, PostgreSQL, Node.js

## Projects
### E-commerce Platform
**Link:** https://github.com/johndoe/ecommerce-platform
Full-stack application built with a React frontend and a Django backend.
**Technologies:** React, Django, PostgreSQL, Redis, AWS

### Task Management API
**Link:** https://github.com/johndoe/task-api
RESTful API for team task management with real-time updates.
**Technologies:** FastAPI, WebSocket, PostgreSQL

## Education
**Bachelor of Science in Computer Science**
State University, 2019

## Certifications
- AWS Certified Developer Associate (2023)
- Python Institute PCAP (2022)
`

// WriteSample writes SampleMarkdown into dir, creating dir if needed. An
// existing sample is left untouched.
func WriteSample(dir string) (path string, err error) {
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create sample directory: %s", dir)
		return path, err
	}

	path = filepath.Join(dir, SampleFilename)

	_, err = os.Stat(path)
	if err == nil {
		return path, err
	}
	if !os.IsNotExist(err) {
		err = errors.Wrapf(err, "failed to stat sample file: %s", path)
		return path, err
	}

	err = os.WriteFile(path, []byte(SampleMarkdown), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write sample file: %s", path)
		return path, err
	}

	return path, err
}

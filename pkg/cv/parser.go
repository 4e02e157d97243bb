// Package cv turns heading-delimited CV markdown into a Document.
//
// The grammar is deliberately small: a level-1 header for the name, a level-2
// header for the position, a level-3 header containing "@" for the contact
// line, and six named level-2 sections. Lines that match no rule are ignored,
// so parsing never fails.
package cv

import (
	"strings"
	"unicode"
)

const (
	namePrefix    = "# "
	sectionPrefix = "## "
	entryPrefix   = "### "
	boldPrefix    = "**"
	linkPrefix    = "**Link:**"
	techPrefix    = "**Technologies:**"
	listPrefix    = "- "
)

// sectionHeaders maps a section header prefix to its section, in match order.
//
//nolint:gochecknoglobals // Fixed grammar table
var sectionHeaders = []struct {
	prefix  string
	section Section
}{
	{"## About", SectionAbout},
	{"## Skills", SectionSkills},
	{"## Work Experience", SectionExperience},
	{"## Education", SectionEducation},
	{"## Projects", SectionProjects},
	{"## Certifications", SectionCertifications},
}

// positionExclusions are the words that stop a "## " line from being read as
// the position.
//
//nolint:gochecknoglobals // Fixed grammar table
var positionExclusions = []string{"About", "Skills", "Work", "Education", "Projects", "Certifications"}

// openEntry is the multi-line entry under construction. Only *WorkEntry and
// *ProjectEntry implement it, so at most one kind can be open at a time.
type openEntry interface {
	flushInto(doc *Document)
}

func (w *WorkEntry) flushInto(doc *Document) {
	doc.Experience = append(doc.Experience, *w)
}

func (p *ProjectEntry) flushInto(doc *Document) {
	doc.Projects = append(doc.Projects, *p)
}

// parser holds the scanner state for a single Parse call.
type parser struct {
	doc     Document
	section Section
	open    openEntry
}

// Parse converts CV markdown into a Document. It never returns an error;
// absent sections leave their fields empty.
func Parse(markdown string) (doc Document) {
	p := &parser{doc: newDocument()}

	for _, raw := range strings.Split(markdown, "\n") {
		p.line(trimLine(raw))
	}

	p.flush()

	doc = p.doc
	return doc
}

// line classifies a single trimmed line. The first matching rule wins.
func (p *parser) line(line string) {
	work, _ := p.open.(*WorkEntry)
	project, _ := p.open.(*ProjectEntry)

	switch {
	case strings.HasPrefix(line, namePrefix):
		p.doc.Name = line[len(namePrefix):]

	case strings.HasPrefix(line, sectionPrefix) && !containsAny(line, positionExclusions):
		p.doc.Position = line[len(sectionPrefix):]

	case strings.HasPrefix(line, entryPrefix) && strings.Contains(line, "@"):
		p.doc.Contact = line[len(entryPrefix):]

	case p.enterSection(line):

	case strings.HasPrefix(line, entryPrefix) && p.section == SectionExperience:
		p.flush()
		p.open = &WorkEntry{
			Title:        line[len(entryPrefix):],
			Technologies: make([]string, 0),
		}

	case strings.HasPrefix(line, entryPrefix) && p.section == SectionProjects:
		p.flush()
		p.open = &ProjectEntry{
			Title:        line[len(entryPrefix):],
			Technologies: make([]string, 0),
		}

	case strings.HasPrefix(line, boldPrefix) && strings.Contains(line, "|") && work != nil:
		applyWorkMeta(work, line)

	case strings.HasPrefix(line, linkPrefix) && project != nil:
		project.Link = strings.TrimSpace(line[len(linkPrefix):])

	case strings.HasPrefix(line, techPrefix) && (work != nil || project != nil):
		technologies := splitTechnologies(line[len(techPrefix):])
		if work != nil {
			work.Technologies = technologies
		} else {
			project.Technologies = technologies
		}

	case line != "" &&
		!strings.HasPrefix(line, "#") &&
		!strings.HasPrefix(line, techPrefix) &&
		!strings.HasPrefix(line, linkPrefix) &&
		p.section != SectionNone:
		p.body(line, work, project)
	}
}

// enterSection switches the current section when line is a section header.
// It does not flush the open entry.
func (p *parser) enterSection(line string) (ok bool) {
	for _, h := range sectionHeaders {
		if strings.HasPrefix(line, h.prefix) {
			p.section = h.section
			ok = true
			return ok
		}
	}
	return ok
}

// body handles a plain content line according to the current section.
func (p *parser) body(line string, work *WorkEntry, project *ProjectEntry) {
	switch p.section {
	case SectionAbout:
		p.doc.About += line + " "

	case SectionSkills:
		if strings.HasPrefix(line, listPrefix) {
			p.doc.Skills = append(p.doc.Skills, line[len(listPrefix):])
		} else if line != "" {
			p.doc.Skills = append(p.doc.Skills, line)
		}

	case SectionExperience:
		if work != nil && !strings.HasPrefix(line, boldPrefix) {
			work.Description += line + " "
		}

	case SectionProjects:
		if project != nil {
			project.Description += line + " "
		}

	case SectionEducation:
		switch {
		case strings.HasPrefix(line, entryPrefix):
			p.doc.Education = append(p.doc.Education, line[len(entryPrefix):])
		case strings.HasPrefix(line, boldPrefix):
			p.doc.Education = append(p.doc.Education, strings.ReplaceAll(line, "**", ""))
		case line != "":
			p.doc.Education = append(p.doc.Education, line)
		}

	case SectionCertifications:
		if strings.HasPrefix(line, listPrefix) {
			p.doc.Certifications = append(p.doc.Certifications, line[len(listPrefix):])
		}

	case SectionNone:
	}
}

// flush moves the open entry, if any, into its document list.
func (p *parser) flush() {
	if p.open == nil {
		return
	}
	p.open.flushInto(&p.doc)
	p.open = nil
}

// applyWorkMeta reads a "**Company | Period | Location**" line. Empty parts
// leave the existing value in place.
func applyWorkMeta(work *WorkEntry, line string) {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	work.Company = strings.ReplaceAll(parts[0], "**", "")
	if len(parts) > 1 && parts[1] != "" {
		work.Period = strings.ReplaceAll(parts[1], "*", "")
	}
	if len(parts) > 2 && parts[2] != "" {
		work.Location = strings.ReplaceAll(parts[2], "*", "")
	}
}

// splitTechnologies splits a comma separated list, trimming each item. Case
// and order are preserved; empty items are kept.
func splitTechnologies(list string) (technologies []string) {
	technologies = strings.Split(list, ",")
	for i := range technologies {
		technologies[i] = strings.TrimSpace(technologies[i])
	}
	return technologies
}

// trimLine strips surrounding whitespace and byte order marks.
func trimLine(raw string) (line string) {
	line = strings.TrimFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
	return line
}

func containsAny(s string, subs []string) (found bool) {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			found = true
			return found
		}
	}
	return found
}

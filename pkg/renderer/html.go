// Package renderer turns parsed CVs into HTML and converts CV markdown to
// other formats with pandoc.
package renderer

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikogura/cv-templater/pkg/cv"
	"github.com/nikogura/cv-templater/pkg/tags"
	"github.com/pkg/errors"
)

const (
	placeholderName     = "Name Surname"
	placeholderPosition = "position title"
	placeholderContact  = "contact info and links to github email and linkedin"

	// ExportTitle is the <title> of an exported CV.
	ExportTitle = "My CV"
)

//go:embed assets/cv.html.tmpl assets/cv.css
var assets embed.FS

//nolint:gochecknoglobals // Parsed once from embedded assets
var templates = template.Must(template.ParseFS(assets, "assets/cv.html.tmpl"))

// Options controls HTML rendering.
type Options struct {
	Photo Photo
}

type cvView struct {
	Name           string
	Position       string
	Contact        string
	PhotoStyle     template.CSS
	HasPhoto       bool
	About          string
	Skills         []skillView
	Experience     []workView
	Projects       []projectView
	Education      []string
	Certifications []string
}

type skillView struct {
	Text      string
	Category  string
	Items     string
	Composite bool
}

type workView struct {
	Title       string
	Meta        string
	Description string
	Tags        []tagView
}

type projectView struct {
	Title       string
	Link        string
	Description string
	Tags        []tagView
}

type tagView struct {
	Name  string
	Class string
	Style template.CSS
}

type pageView struct {
	cvView
	Title string
	CSS   template.CSS
}

// RenderHTML renders the CV body, classifying every technology against table.
func RenderHTML(doc cv.Document, table tags.Table, opts Options) (html string, err error) {
	var sb strings.Builder
	err = templates.ExecuteTemplate(&sb, "cv", newView(doc, table, opts))
	if err != nil {
		err = errors.Wrap(err, "failed to render CV")
		return html, err
	}

	html = sb.String()
	return html, err
}

// ExportHTML renders a complete, self-contained HTML document: stylesheet
// and profile photo are embedded, nothing is referenced externally.
func ExportHTML(doc cv.Document, table tags.Table, opts Options) (html string, err error) {
	var css []byte
	css, err = assets.ReadFile("assets/cv.css")
	if err != nil {
		err = errors.Wrap(err, "failed to read embedded stylesheet")
		return html, err
	}

	page := pageView{
		cvView: newView(doc, table, opts),
		Title:  ExportTitle,
		//nolint:gosec // Embedded stylesheet
		CSS: template.CSS(css),
	}

	var sb strings.Builder
	err = templates.ExecuteTemplate(&sb, "page", page)
	if err != nil {
		err = errors.Wrap(err, "failed to render CV document")
		return html, err
	}

	html = sb.String()
	return html, err
}

// WriteHTML writes rendered HTML to a file, creating parent directories.
func WriteHTML(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write HTML file: %s", outputPath)
		return err
	}

	return err
}

func newView(doc cv.Document, table tags.Table, opts Options) (view cvView) {
	view = cvView{
		Name:           orDefault(doc.Name, placeholderName),
		Position:       orDefault(doc.Position, placeholderPosition),
		Contact:        orDefault(doc.Contact, placeholderContact),
		Education:      doc.Education,
		Certifications: doc.Certifications,
	}

	if !opts.Photo.IsZero() {
		view.HasPhoto = true
		//nolint:gosec // Data URI built from sniffed image bytes
		view.PhotoStyle = template.CSS(fmt.Sprintf(
			"background-image: url('%s'); background-size: cover; background-position: center;",
			opts.Photo.DataURI()))
	}

	if strings.TrimSpace(doc.About) != "" {
		view.About = doc.About
	}

	for _, skill := range doc.Skills {
		sv := skillView{Text: skill}
		sv.Category, sv.Items, sv.Composite = cv.SplitSkill(skill)
		if !sv.Composite {
			sv.Text = strings.ReplaceAll(skill, "**", "")
		}
		view.Skills = append(view.Skills, sv)
	}

	for _, work := range doc.Experience {
		view.Experience = append(view.Experience, workView{
			Title:       work.Title,
			Meta:        work.Company + " | " + work.Period + " | " + work.Location,
			Description: work.Description,
			Tags:        tagViews(work.Technologies, table),
		})
	}

	for _, project := range doc.Projects {
		view.Projects = append(view.Projects, projectView{
			Title:       project.Title,
			Link:        project.Link,
			Description: project.Description,
			Tags:        tagViews(project.Technologies, table),
		})
	}

	return view
}

func tagViews(technologies []string, table tags.Table) (views []tagView) {
	for _, tech := range technologies {
		entry := table.Classify(tech)
		views = append(views, tagView{
			Name:  tech,
			Class: entry.ClassName,
			//nolint:gosec // Trusted tag table
			Style: template.CSS(fmt.Sprintf("background: %s; color: %s;", entry.BackgroundColor, entry.TextColor)),
		})
	}
	return views
}

func orDefault(value, fallback string) (result string) {
	result = value
	if result == "" {
		result = fallback
	}
	return result
}

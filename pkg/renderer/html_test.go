package renderer

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/nikogura/cv-templater/pkg/cv"
	"github.com/nikogura/cv-templater/pkg/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAAC0lEQVR4nGNgAAIAAAUAAXpeqz8AAAAASUVORK5CYII="

func pngBytes(t *testing.T) (data []byte) {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(pixelPNG)
	require.NoError(t, err)
	return data
}

func renderDoc(t *testing.T, doc cv.Document, opts Options) (sel *goquery.Document) {
	t.Helper()
	html, err := RenderHTML(doc, tags.Default(), opts)
	require.NoError(t, err)

	sel, err = goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return sel
}

func sectionHeaders(dom *goquery.Document) (headers []string) {
	dom.Find(".cv-section-header").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, s.Text())
	})
	return headers
}

func TestRenderHTMLPlaceholders(t *testing.T) {
	dom := renderDoc(t, cv.Parse(""), Options{})

	assert.Equal(t, "Name Surname", dom.Find(".cv-header h1").Text())
	assert.Equal(t, "position title", dom.Find(".cv-header .position").Text())
	assert.Equal(t, "contact info and links to github email and linkedin", dom.Find(".cv-header .contact").Text())
	assert.Equal(t, "profilepicture", dom.Find(".profile-picture").Text())
	assert.Empty(t, sectionHeaders(dom))
}

func TestRenderHTMLSections(t *testing.T) {
	dom := renderDoc(t, cv.Parse(cv.SampleMarkdown), Options{})

	assert.Equal(t, "John Doe", dom.Find(".cv-header h1").Text())
	assert.Equal(t, []string{"about", "skills", "work experience", "projects", "education", "certifications"}, sectionHeaders(dom))
	assert.Equal(t, 2, dom.Find("#work-experience .cv-multi-item").Length())
	assert.Equal(t, 2, dom.Find("li").Length())
}

func TestRenderHTMLOmitsWhitespaceAbout(t *testing.T) {
	doc := cv.Parse("# Jane")
	doc.About = "   "

	dom := renderDoc(t, doc, Options{})
	assert.Empty(t, sectionHeaders(dom))
}

func TestRenderHTMLSkills(t *testing.T) {
	dom := renderDoc(t, cv.Parse("## Skills\n- **Languages:** Go, Python\n- Kubernetes"), Options{})

	category := dom.Find(".skill-category")
	require.Equal(t, 1, category.Length())
	assert.Equal(t, "Languages:", category.Find("strong").Text())
	assert.Equal(t, "Languages: Go, Python", category.Text())
	assert.Contains(t, dom.Find(".cv-section-content").Text(), "Kubernetes")
}

func TestRenderHTMLTechTags(t *testing.T) {
	input := `## Work Experience
### Backend Lead
**Acme | 2020-2023 | Remote**
Built things.
**Technologies:** Python, Angular, Cobol`

	dom := renderDoc(t, cv.Parse(input), Options{})

	assert.Equal(t, "Acme | 2020-2023 | Remote", dom.Find(".cv-item-meta").Text())

	spans := dom.Find(".tech-tag")
	require.Equal(t, 3, spans.Length())

	python := spans.Eq(0)
	assert.True(t, python.HasClass("python"))
	style, _ := python.Attr("style")
	assert.Equal(t, "background: #3776ab; color: white;", style)

	angular := spans.Eq(1)
	assert.True(t, angular.HasClass("angular"))
	style, _ = angular.Attr("style")
	assert.Equal(t, "background: linear-gradient(135deg, #dd0031, #c3002f); color: white;", style)

	cobol := spans.Eq(2)
	assert.True(t, cobol.HasClass("default"))
	assert.Equal(t, "Cobol", cobol.Text())
}

func TestRenderHTMLProjectLink(t *testing.T) {
	input := `## Projects
### With Link
**Link:** https://example.com/tool
### Without Link`

	dom := renderDoc(t, cv.Parse(input), Options{})

	items := dom.Find(".cv-multi-item")
	require.Equal(t, 2, items.Length())

	link := items.Eq(0).Find(".project-link a")
	href, _ := link.Attr("href")
	assert.Equal(t, "https://example.com/tool", href)
	assert.Equal(t, "View Project", link.Text())
	assert.Equal(t, 0, items.Eq(1).Find(".project-link").Length())
}

func TestRenderHTMLEscapesText(t *testing.T) {
	dom := renderDoc(t, cv.Parse("# <script>alert(1)</script>"), Options{})

	assert.Equal(t, 0, dom.Find("script").Length())
	assert.Equal(t, "<script>alert(1)</script>", dom.Find(".cv-header h1").Text())
}

func TestRenderHTMLPhoto(t *testing.T) {
	photo, err := NewPhoto(pngBytes(t))
	require.NoError(t, err)

	dom := renderDoc(t, cv.Parse("# Jane"), Options{Photo: photo})

	picture := dom.Find(".profile-picture")
	assert.Empty(t, picture.Text())
	style, _ := picture.Attr("style")
	assert.Contains(t, style, "data:image/png;base64,"+pixelPNG)
}

func TestExportHTML(t *testing.T) {
	photo, err := NewPhoto(pngBytes(t))
	require.NoError(t, err)

	html, err := ExportHTML(cv.Parse(cv.SampleMarkdown), tags.Default(), Options{Photo: photo})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, ExportTitle, dom.Find("title").Text())
	assert.Contains(t, dom.Find("style").Text(), ".tech-tag")
	assert.Equal(t, 1, dom.Find(".cv-output .cv-header").Length())
	assert.Equal(t, 0, dom.Find("link[rel=stylesheet]").Length())
	assert.Equal(t, 0, dom.Find("script").Length())

	style, _ := dom.Find(".profile-picture").Attr("style")
	assert.Contains(t, style, "data:image/png;base64,")
}

func TestExportFile(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "jane.md")
	output := filepath.Join(tmpDir, "output", "html", "jane.html")

	err := os.WriteFile(input, []byte("# Jane Doe\n## Engineer"), 0600)
	require.NoError(t, err)

	err = ExportFile(input, output, tags.Default(), Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jane Doe")
}

func TestLoadPhoto(t *testing.T) {
	tmpDir := t.TempDir()
	imagePath := filepath.Join(tmpDir, "me.png")
	textPath := filepath.Join(tmpDir, "me.txt")

	require.NoError(t, os.WriteFile(imagePath, pngBytes(t), 0600))
	require.NoError(t, os.WriteFile(textPath, []byte("hello"), 0600))

	photo, err := LoadPhoto("")
	require.NoError(t, err)
	assert.True(t, photo.IsZero())
	assert.Empty(t, photo.DataURI())

	photo, err = LoadPhoto(imagePath)
	require.NoError(t, err)
	assert.Equal(t, "image/png", photo.MIME)
	assert.Equal(t, "data:image/png;base64,"+pixelPNG, photo.DataURI())

	_, err = LoadPhoto(textPath)
	assert.Error(t, err)

	_, err = LoadPhoto(filepath.Join(tmpDir, "missing.png"))
	assert.Error(t, err)
}

func TestRunBatch(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.md", "a.md", "notes.txt", "bad.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("# x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub.md"), 0750))

	paths, err := cv.MarkdownFiles(tmpDir)
	require.NoError(t, err)

	// Files added after listing are not picked up.
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "c.md"), []byte("# y"), 0600))

	var seen []string
	results, err := RunBatch(context.Background(), paths, func(_ context.Context, inputPath string) (outputPath string, err error) {
		if filepath.Base(inputPath) == "bad.md" {
			err = errors.New("boom")
			return outputPath, err
		}
		outputPath = inputPath + ".out"
		return outputPath, err
	}, func(r FileResult) {
		seen = append(seen, filepath.Base(r.InputPath))
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.md", "b.md", "bad.md"}, seen)
	summary := Summarize(results)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.Total())
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	results, err := RunBatch(ctx, []string{"a.md", "b.md"}, func(context.Context, string) (string, error) {
		calls++
		return "", nil
	}, nil)
	assert.Error(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, calls)
}

func TestMarkdownFilesMissingDir(t *testing.T) {
	_, err := cv.MarkdownFiles("/nonexistent/cv_templates")
	assert.Error(t, err)
}

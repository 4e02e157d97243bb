package cv

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ParseFile reads and parses a CV markdown file.
func ParseFile(path string) (doc Document, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read CV file: %s", path)
		return doc, err
	}

	doc = Parse(string(data))
	return doc, err
}

// MarkdownFiles lists the .md files directly inside dir, sorted by name.
func MarkdownFiles(dir string) (paths []string, err error) {
	var entries []os.DirEntry
	entries, err = os.ReadDir(dir)
	if err != nil {
		err = errors.Wrapf(err, "failed to read CV directory: %s", dir)
		return paths, err
	}

	paths = make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(paths)
	return paths, err
}

// Package tags classifies technology names into styled labels.
//
// A Table is loaded once, from a JSON file or URL of the form
// {"key": {"className", "backgroundColor", "textColor", "keywords"}}, and is
// read-only afterwards. When loading fails the built-in table is used.
package tags

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// FetchTimeout bounds a tag table download.
const FetchTimeout = 30 * time.Second

// LoadOrDefault loads the table at source. An empty source selects the
// built-in table. On any failure the built-in table is returned together with
// the error, so callers can log it and carry on.
func LoadOrDefault(ctx context.Context, source string) (table Table, err error) {
	if source == "" {
		table = Default()
		return table, err
	}

	table, err = Load(ctx, source)
	if err != nil {
		table = Default()
		return table, err
	}

	return table, err
}

// Load reads a tag table from a file path or an http(s) URL.
func Load(ctx context.Context, source string) (table Table, err error) {
	var data []byte
	data, err = fetch(ctx, source)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch tag table: %s", source)
		return table, err
	}

	table, err = Decode(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode tag table: %s", source)
		return table, err
	}

	return table, err
}

// Decode parses a JSON tag table, keeping the document's key order.
func Decode(data []byte) (table Table, err error) {
	if !gjson.ValidBytes(data) {
		err = errors.New("invalid JSON")
		return table, err
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		err = errors.New("tag table must be a JSON object")
		return table, err
	}

	validate := validator.New()
	keys := make([]string, 0)
	entries := make(map[string]Entry)

	root.ForEach(func(key, value gjson.Result) (more bool) {
		var entry Entry
		err = json.Unmarshal([]byte(value.Raw), &entry)
		if err != nil {
			err = errors.Wrapf(err, "entry %q", key.String())
			return more
		}

		err = validate.Struct(entry)
		if err != nil {
			err = errors.Wrapf(err, "entry %q", key.String())
			return more
		}

		// A repeated key keeps its first position and its last value.
		if _, seen := entries[key.String()]; !seen {
			keys = append(keys, key.String())
		}
		entries[key.String()] = entry

		more = true
		return more
	})
	if err != nil {
		return table, err
	}

	table, err = NewTable(keys, entries)
	return table, err
}

// fetch reads source from the network when it is an http(s) URL and from disk
// otherwise.
func fetch(ctx context.Context, source string) (data []byte, err error) {
	parsedURL, urlErr := url.Parse(source)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		data, err = fetchFromURL(ctx, source)
		return data, err
	}

	data, err = os.ReadFile(source)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", source)
		return data, err
	}

	return data, err
}

func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "cv-templater/1.0")

	var resp *http.Response
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	return data, err
}

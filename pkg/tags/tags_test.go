package tags

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customTable = `{
  "go": {"className": "go", "backgroundColor": "#00add8", "textColor": "white", "keywords": ["golang", "go"]},
  "javascript": {"className": "js", "backgroundColor": "#f7df1e", "textColor": "black", "keywords": ["js"]},
  "react": {"className": "react", "backgroundColor": "#61dafb", "textColor": "#2c3e50", "keywords": ["reactjs"]},
  "default": {"className": "default", "backgroundColor": "#95a5a6", "textColor": "white", "keywords": ["default"]}
}`

func TestDefaultTable(t *testing.T) {
	table := Default()

	assert.Equal(t, []string{"python", "javascript", "opencv", "react", "node", "docker", "aws", "angular", "default"}, table.Keys())
	assert.Equal(t, "default", table.Default().ClassName)

	angular, ok := table.Entry("angular")
	require.True(t, ok)
	assert.Equal(t, "linear-gradient(135deg, #dd0031, #c3002f)", angular.BackgroundColor)
}

func TestDefaultTableIsACopy(t *testing.T) {
	table := Default()
	keys := table.Keys()
	keys[0] = "mutated"

	entry, _ := table.Entry("python")
	entry.Keywords[0] = "mutated"

	fresh := Default()
	assert.Equal(t, "python", fresh.Keys()[0])
	pythonEntry, _ := fresh.Entry("python")
	assert.Equal(t, "python", pythonEntry.Keywords[0])
}

func TestClassify(t *testing.T) {
	table := Default()

	tests := []struct {
		name      string
		tech      string
		className string
	}{
		{name: "exact keyword", tech: "Python", className: "python"},
		{name: "substring match", tech: "ObjectJS", className: "js"},
		{name: "keyword inside longer name", tech: "Amazon Web Services (EC2)", className: "aws"},
		{name: "insertion order wins", tech: "Python React bridge", className: "python"},
		{name: "js before react for reactjs", tech: "ReactJS", className: "js"},
		{name: "node", tech: "Node.js", className: "js"},
		{name: "no match", tech: "Cobol", className: "default"},
		{name: "empty string", tech: "", className: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.className, table.Classify(tt.tech).ClassName)
		})
	}
}

func TestClassifyReactJS(t *testing.T) {
	table, err := Decode([]byte(`{
  "react": {"className": "react", "backgroundColor": "#61dafb", "textColor": "#2c3e50", "keywords": ["reactjs"]},
  "default": {"className": "default", "backgroundColor": "#95a5a6", "textColor": "white", "keywords": ["default"]}
}`))
	require.NoError(t, err)

	assert.Equal(t, "react", table.Classify("ReactJS").ClassName)
	assert.Equal(t, "default", table.Classify("Cobol").ClassName)
}

func TestDecodePreservesOrder(t *testing.T) {
	table, err := Decode([]byte(customTable))
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "javascript", "react", "default"}, table.Keys())
	// "reactjs" contains "js", and javascript comes first.
	assert.Equal(t, "js", table.Classify("ReactJS").ClassName)
	assert.Equal(t, "go", table.Classify("Golang").ClassName)
}

func TestDecodeDuplicateKeyKeepsFirstPosition(t *testing.T) {
	table, err := Decode([]byte(`{
  "a": {"className": "a1", "backgroundColor": "red", "textColor": "white", "keywords": ["x"]},
  "default": {"className": "default", "backgroundColor": "grey", "textColor": "white", "keywords": []},
  "a": {"className": "a2", "backgroundColor": "red", "textColor": "white", "keywords": ["x"]}
}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "default"}, table.Keys())
	assert.Equal(t, "a2", table.Classify("x").ClassName)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "not valid json"},
		{name: "array", data: `[1, 2]`},
		{name: "missing default", data: `{"go": {"className": "go", "backgroundColor": "#00add8", "textColor": "white", "keywords": ["go"]}}`},
		{name: "missing class name", data: `{"default": {"backgroundColor": "#95a5a6", "textColor": "white"}}`},
		{name: "keywords not a list", data: `{"default": {"className": "d", "backgroundColor": "b", "textColor": "t", "keywords": "x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestMarshalJSONKeepsOrder(t *testing.T) {
	table, err := Decode([]byte(customTable))
	require.NoError(t, err)

	data, err := json.Marshal(table)
	require.NoError(t, err)

	again, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, table.Keys(), again.Keys())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "techTags.json")
	err := os.WriteFile(path, []byte(customTable), 0600)
	require.NoError(t, err)

	table, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())
}

func TestLoadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(customTable))
	}))
	defer server.Close()

	table, err := Load(context.Background(), server.URL+"/techTags.json")
	require.NoError(t, err)
	assert.Equal(t, "go", table.Keys()[0])
}

func TestLoadOrDefault(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	badJSON := filepath.Join(t.TempDir(), "bad.json")
	err := os.WriteFile(badJSON, []byte("{"), 0600)
	require.NoError(t, err)

	tests := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{name: "empty source uses built-in table", source: "", wantErr: false},
		{name: "missing file", source: "/nonexistent/techTags.json", wantErr: true},
		{name: "http error", source: notFound.URL, wantErr: true},
		{name: "invalid json", source: badJSON, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := LoadOrDefault(context.Background(), tt.source)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, Default().Keys(), table.Keys())
		})
	}
}

func TestNewTableRejectsBadInput(t *testing.T) {
	_, err := NewTable([]string{"a"}, map[string]Entry{})
	assert.Error(t, err)

	_, err = NewTable([]string{DefaultKey, DefaultKey}, map[string]Entry{DefaultKey: {}})
	assert.Error(t, err)
}

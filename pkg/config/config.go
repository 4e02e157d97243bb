package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nikogura/cv-templater/pkg/renderer"
	"github.com/pkg/errors"
)

const (
	// TagsEnvVar overrides tags_source when set.
	TagsEnvVar = "CV_TEMPLATER_TAGS"

	defaultTemplatesDir = "cv_templates"
	defaultOutputDir    = "output"
	defaultReferenceDoc = "templates/reference.docx"
	defaultCSS          = "templates/cv_style.css"
)

// Config represents the application configuration.
type Config struct {
	TagsSource   string       `json:"tags_source,omitempty"`
	TemplatesDir string       `json:"templates_dir"`
	OutputDir    string       `json:"output_dir"`
	PhotoPath    string       `json:"photo_path,omitempty"`
	Pandoc       PandocConfig `json:"pandoc"`
}

// PandocConfig holds pandoc-related configuration.
type PandocConfig struct {
	PDFEngines   []string `json:"pdf_engines,omitempty"`
	ReferenceDoc string   `json:"reference_doc,omitempty"`
	CSS          string   `json:"css,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() (cfg Config) {
	cfg = Config{
		TemplatesDir: defaultTemplatesDir,
		OutputDir:    defaultOutputDir,
		Pandoc: PandocConfig{
			PDFEngines:   append([]string(nil), renderer.DefaultPDFEngines...),
			ReferenceDoc: defaultReferenceDoc,
			CSS:          defaultCSS,
		},
	}
	return cfg
}

// DefaultPath returns $HOME/.cv-templater/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".cv-templater", "config.json")
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// With an empty configPath the default location is used, and a missing file
// there yields Default().
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		cfg = Default()
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'cv-templater init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variable if set
	if source := os.Getenv(TagsEnvVar); source != "" {
		cfg.TagsSource = source
	}

	// Validate and fill defaults
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks the configuration and fills in defaults for empty fields.
func (c *Config) Validate() (err error) {
	if c.TemplatesDir == "" {
		c.TemplatesDir = defaultTemplatesDir
	}

	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}

	if c.PhotoPath != "" {
		_, err = os.Stat(c.PhotoPath)
		if os.IsNotExist(err) {
			err = errors.Errorf("photo file not found: %s", c.PhotoPath)
			return err
		}
		err = nil
	}

	if c.Pandoc.ReferenceDoc == "" {
		c.Pandoc.ReferenceDoc = Default().Pandoc.ReferenceDoc
	}

	if c.Pandoc.CSS == "" {
		c.Pandoc.CSS = Default().Pandoc.CSS
	}

	if len(c.Pandoc.PDFEngines) == 0 {
		c.Pandoc.PDFEngines = Default().Pandoc.PDFEngines
	}

	for i, engine := range c.Pandoc.PDFEngines {
		if engine == "" {
			err = errors.Errorf("pandoc.pdf_engines[%d] is empty", i)
			return err
		}
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (path string, err error) {
	// Determine config file location
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}

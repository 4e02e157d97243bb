package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikogura/cv-templater/pkg/config"
)

func TestValidateInputArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		all     bool
		output  string
		wantErr bool
	}{
		{name: "single file", args: []string{"cv.md"}},
		{name: "single file with output", args: []string{"cv.md"}, output: "out.html"},
		{name: "all", all: true},
		{name: "file and all", args: []string{"cv.md"}, all: true, wantErr: true},
		{name: "all with output", all: true, output: "out.html", wantErr: true},
		{name: "nothing", wantErr: true},
		{name: "no extension", args: []string{"cv"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInputArgs(tt.args, tt.all, tt.output)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateInputArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateWorkspace(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := config.Default()
	cfg.TemplatesDir = filepath.Join(tmpDir, "cv_templates")
	cfg.OutputDir = filepath.Join(tmpDir, "output")

	err := createWorkspace(cfg)
	if err != nil {
		t.Fatalf("createWorkspace() error = %v", err)
	}

	for _, dir := range []string{
		cfg.TemplatesDir,
		filepath.Join(cfg.OutputDir, "pdf"),
		filepath.Join(cfg.OutputDir, "docx"),
		filepath.Join(cfg.OutputDir, "html"),
	} {
		info, statErr := os.Stat(dir)
		if statErr != nil {
			t.Errorf("expected directory %s: %v", dir, statErr)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	// Second run over existing directories is a no-op.
	err = createWorkspace(cfg)
	if err != nil {
		t.Errorf("createWorkspace() second run error = %v", err)
	}
}

func TestSetupSkipsAnnotatedCommands(t *testing.T) {
	err := setup(parseCmd, nil)
	if err != nil {
		t.Errorf("setup() error = %v", err)
	}
}

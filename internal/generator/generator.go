// Package generator writes the crocodoc configuration file and initializer
// into a host project.
package generator

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/rs/zerolog"

	crocodoc "github.com/hsn0918/crocodoc-client"
)

var (
	ErrEmptyToken = errors.New("api token is required")
	ErrFileExists = errors.New("file already exists")
)

// Paths of the generated files, relative to the project root.
var (
	ConfigFile      = filepath.Join("config", "crocodoc.yml")
	InitializerFile = filepath.Join("config", "initializers", "crocodoc.go")
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var initializerTemplate = template.Must(template.ParseFS(templateFS, "templates/initializer.go.tmpl"))

// Options controls Install.
type Options struct {
	Root      string // project root, defaults to the working directory
	Token     string
	ParamName string
	Force     bool // overwrite existing files
	Logger    zerolog.Logger
}

type initializerData struct {
	ConfigPath string
}

// Install writes the config file and the initializer. It returns the paths
// written, in order.
func Install(opts Options) ([]string, error) {
	if opts.Token == "" {
		return nil, ErrEmptyToken
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.ParamName == "" {
		opts.ParamName = crocodoc.DefaultParamName
	}

	cfg, err := crocodoc.Config{Token: opts.Token, ParamName: opts.ParamName}.MarshalYAMLFile()
	if err != nil {
		return nil, err
	}

	var initializer bytes.Buffer
	data := initializerData{ConfigPath: filepath.ToSlash(ConfigFile)}
	if err := initializerTemplate.Execute(&initializer, data); err != nil {
		return nil, fmt.Errorf("render initializer: %w", err)
	}

	files := []struct {
		rel     string
		content []byte
		mode    fs.FileMode
	}{
		{ConfigFile, cfg, 0o600},
		{InitializerFile, initializer.Bytes(), 0o644},
	}

	if !opts.Force {
		for _, f := range files {
			if err := ensureAbsent(filepath.Join(opts.Root, f.rel)); err != nil {
				return nil, err
			}
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(opts.Root, f.rel)
		if err := writeFile(path, f.content, f.mode); err != nil {
			return written, err
		}
		opts.Logger.Info().Str("path", path).Msg("create")
		written = append(written, path)
	}

	return written, nil
}

func ensureAbsent(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w (use --force to overwrite)", path, ErrFileExists)
	}
	return nil
}

func writeFile(path string, content []byte, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

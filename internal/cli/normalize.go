package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/docfmt/internal/docio"
	"github.com/example/docfmt/pkg/docstring"
)

func newNormalizeCommand() *cobra.Command {
	var config NormalizeConfig

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Rewrap a docstring document to a fixed line width",
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunNormalize(&config)
		},
	}

	cmd.Flags().StringVar(&config.InputPath, "input", "-", "Path to input document or '-' for stdin")
	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().IntVar(&config.Width, "width", docstring.DefaultWidth, "Target wrap column")
	cmd.Flags().StringVar(&config.Format, "format", "json", "Document format: json or yaml")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .docfmt.yml config file")

	return cmd
}

// NormalizeConfig holds configuration for document normalization.
type NormalizeConfig struct {
	InputPath  string
	OutputPath string
	Width      int
	Format     string
	ConfigPath string
}

// RunNormalize reads a docstring document, rewraps its prose and writes the
// result back out.
func RunNormalize(config *NormalizeConfig) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}

	format, err := docio.ParseFormat(config.Format)
	if err != nil {
		return err
	}

	doc, err := readDocument(config.InputPath, format)
	if err != nil {
		return err
	}

	docstring.Normalize(doc, config.Width)

	return writeDocument(doc, config.OutputPath, format)
}

func loadConfigFile(config *NormalizeConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Normalize struct {
			Width  int    `yaml:"width"`
			Format string `yaml:"format"`
			Output string `yaml:"output"`
		} `yaml:"normalize"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if config.Width == docstring.DefaultWidth && cfg.Normalize.Width != 0 {
		config.Width = cfg.Normalize.Width
	}
	if config.Format == "json" && cfg.Normalize.Format != "" {
		config.Format = cfg.Normalize.Format
	}
	if config.OutputPath == "-" && cfg.Normalize.Output != "" {
		config.OutputPath = cfg.Normalize.Output
	}

	return nil
}

func readDocument(path string, format docio.Format) (*docstring.Docstring, error) {
	if path == "-" {
		return docio.Decode(os.Stdin, format)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := docio.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return doc, nil
}

// FileSystem allows dependency injection for testing
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	Create(name string) (*os.File, error)
}

// DefaultFileSystem implements FileSystem using real OS calls
type DefaultFileSystem struct{}

func (fs *DefaultFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *DefaultFileSystem) Create(name string) (*os.File, error) {
	return os.Create(name) // #nosec G304
}

var defaultFileSystem FileSystem = &DefaultFileSystem{}

func writeDocument(doc *docstring.Docstring, path string, format docio.Format) error {
	return writeDocumentWithFS(doc, path, format, defaultFileSystem)
}

func writeDocumentWithFS(doc *docstring.Docstring, path string, format docio.Format, fs FileSystem) error {
	if path == "-" {
		return docio.Encode(os.Stdout, doc, format)
	}

	outDir := filepath.Dir(path)
	if fi, err := fs.Stat(outDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist", outDir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outDir)
	}

	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return docio.Encode(f, doc, format)
}

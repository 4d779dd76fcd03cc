package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrebirth-labs/jrforge/internal/branding"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

const descriptorFile = "project.yaml"

// ErrDescriptorNotFound is returned by Load when the project has no descriptor.
var ErrDescriptorNotFound = errors.New("project descriptor not found")

// Store loads and saves the descriptor of the project rooted at Root.
type Store struct {
	fs   afero.Fs
	root string
}

// NewStore returns a Store for the project directory root on fs.
func NewStore(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

// Path returns the full path to .jrforge/project.yaml.
func (s *Store) Path() string {
	return DescriptorPath(s.root)
}

// DescriptorPath returns the descriptor location for a project directory.
func DescriptorPath(projectPath string) string {
	return filepath.Join(projectPath, branding.HomeDir(), descriptorFile)
}

// Exists reports whether the descriptor file is present.
func (s *Store) Exists() (bool, error) {
	return afero.Exists(s.fs, s.Path())
}

// SourceDir returns the absolute Java source root of the project.
func (s *Store) SourceDir(d *Descriptor) string {
	return filepath.Join(s.root, filepath.FromSlash(d.JavaSourceRoot()))
}

// ResourceDir returns the absolute resource root of the project.
func (s *Store) ResourceDir(d *Descriptor) string {
	return filepath.Join(s.root, filepath.FromSlash(d.JavaResourceRoot()))
}

// Load reads, validates and parses the descriptor.
func (s *Store) Load() (*Descriptor, error) {
	path := s.Path()
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (run '%s init' first)", ErrDescriptorNotFound, path, branding.CLIName())
	}
	if err != nil {
		return nil, fmt.Errorf("reading project descriptor: %w", err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating project descriptor %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid project descriptor %s: %s", path, result.Summary())
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing project descriptor: %w", err)
	}
	return &d, nil
}

// Save writes the descriptor, creating .jrforge/ when needed.
func (s *Store) Save(d *Descriptor) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling project descriptor: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", branding.HomeDir(), err)
	}

	if err := afero.WriteFile(s.fs, s.Path(), data, 0644); err != nil {
		return fmt.Errorf("writing project descriptor: %w", err)
	}
	return nil
}

// Init writes a fresh descriptor. It refuses to overwrite an existing one.
func (s *Store) Init(d *Descriptor) error {
	exists, err := s.Exists()
	if err != nil {
		return fmt.Errorf("checking project descriptor: %w", err)
	}
	if exists {
		return fmt.Errorf("project already initialized: %s exists", s.Path())
	}
	return s.Save(d)
}

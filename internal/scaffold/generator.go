package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jrebirth-labs/jrforge/internal/javapkg"
	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/spf13/afero"
)

// ErrEmptyName is returned when a request has no name.
var ErrEmptyName = errors.New("name is required")

// validName reports whether name is a Java identifier. Resource names may
// also contain dashes, which become underscores in the constant name.
func validName(name string, resource bool) bool {
	for i, r := range name {
		switch {
		case unicode.IsLetter(r):
		case i == 0 && resource:
			return false
		case r == '_' || r == '$':
			if resource && r == '$' {
				return false
			}
		case i > 0 && unicode.IsDigit(r):
		case i > 0 && resource && r == '-':
		default:
			return false
		}
	}
	return name != ""
}

// Request describes one generation.
type Request struct {
	Kind            Kind
	Name            string
	TopLevelPackage string
	ProjectName     string
	SourceRoot      string // absolute Java source directory
	ResourceRoot    string // absolute resource directory; SourceRoot when empty

	// Color is the initial value of the field written by RESOURCE requests.
	// The zero value means black, as a web color.
	Color Color
}

// Validate checks the request before anything touches the filesystem.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	spec, ok := kinds[r.Kind]
	if !ok {
		return fmt.Errorf("unknown kind %q", r.Kind)
	}
	if !validName(r.Name, r.Kind == KindResource) {
		return fmt.Errorf("invalid name %q for %s", r.Name, spec.label)
	}
	if err := javapkg.Validate(r.TopLevelPackage); err != nil {
		return err
	}
	if r.Kind == KindResource && strings.TrimSpace(r.ProjectName) == "" {
		return errors.New("project name is required for resources")
	}
	if r.SourceRoot == "" {
		return errors.New("source root is required")
	}
	return nil
}

func (r *Request) resourceRoot() string {
	if r.ResourceRoot == "" {
		return r.SourceRoot
	}
	return r.ResourceRoot
}

// TemplateData is the set of variables available to templates.
type TemplateData struct {
	TopLevelPackage string // e.g. "com.example"
	Package         string // package of the generated file
	ClassName       string // normalized request name, e.g. "Student"
	TypeName        string // name of the generated type, e.g. "StudentModel"
	Name            string // request name as typed
	ProjectName     string
	ConstantName    string // e.g. "WINDOW_BORDER"
	FieldExpr       string // color constructor for resource fields
}

// Generator writes scaffolded files through an afero filesystem.
type Generator struct {
	fs       afero.Fs
	engine   *Engine
	reporter output.Reporter
}

// NewGenerator returns a Generator. All three collaborators are required.
func NewGenerator(fs afero.Fs, engine *Engine, reporter output.Reporter) *Generator {
	return &Generator{fs: fs, engine: engine, reporter: reporter}
}

// Generate creates the files of req.Kind. Existing files are reported and
// left untouched. UI kinds return the first filesystem or template error;
// single-file kinds report the failure and record it in the result instead.
func (g *Generator) Generate(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Kind: req.Kind}
	spec := kinds[req.Kind]

	if spec.perName {
		if err := g.generateGroup(&req, spec, res); err != nil {
			return res, err
		}
		return res, nil
	}

	if err := g.generateSingle(&req, req.Kind, res); err != nil {
		output.Debug("generation failed", "kind", req.Kind, "name", req.Name, "err", err)
		g.reporter.Error("Could not create files.")
		res.add(Outcome{Status: StatusFailed, Err: err})
	}
	return res, nil
}

// generateGroup handles the kinds whose files live in a per-name package.
func (g *Generator) generateGroup(req *Request, spec kindSpec, res *Result) error {
	base := javapkg.Join(req.TopLevelPackage, spec.suffix)
	if err := g.ensurePackage(req.SourceRoot, base, spec.label, res); err != nil {
		return err
	}

	// Companion packages are created before the group package.
	for _, c := range spec.companions {
		cs := kinds[c]
		if err := g.ensurePackage(req.SourceRoot, javapkg.Join(req.TopLevelPackage, cs.suffix), cs.label, res); err != nil {
			return err
		}
	}

	pkg := javapkg.Join(base, javapkg.Segment(req.Name))
	if err := g.ensurePackage(req.SourceRoot, pkg, pkg, res); err != nil {
		return err
	}

	for _, c := range spec.companions {
		if err := g.generateSingle(req, c, res); err != nil {
			return err
		}
	}

	for _, r := range spec.roles {
		if r.resource && req.resourceRoot() != req.SourceRoot {
			if err := g.ensurePackage(req.resourceRoot(), pkg, pkg+" resource", res); err != nil {
				return err
			}
		}
		if err := g.emit(req, spec, pkg, r, res); err != nil {
			return err
		}
	}
	return nil
}

// generateSingle writes the files of a kind that lives directly in its
// package, creating the package if needed.
func (g *Generator) generateSingle(req *Request, k Kind, res *Result) error {
	spec := kinds[k]
	pkg := javapkg.Join(req.TopLevelPackage, spec.suffix)
	if err := g.ensurePackage(req.SourceRoot, pkg, spec.label, res); err != nil {
		return err
	}
	for _, r := range spec.roles {
		if err := g.emit(req, spec, pkg, r, res); err != nil {
			return err
		}
	}
	return nil
}

// ensurePackage creates the directory of pkg under root if it is missing.
func (g *Generator) ensurePackage(root, pkg, label string, res *Result) error {
	dir := filepath.Join(root, javapkg.ToPath(pkg))

	info, err := g.fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking package %s: %w", pkg, err)
	}

	g.reporter.Info("The %s package does not exist. Creating it.", label)
	if err := g.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating package %s: %w", pkg, err)
	}
	output.Debug("created package", "dir", dir)
	res.add(Outcome{Path: dir, Package: pkg, Dir: true, Status: StatusCreated})
	return nil
}

// emit renders one role of a kind unless the target file already exists.
func (g *Generator) emit(req *Request, spec kindSpec, pkg string, r role, res *Result) error {
	typeName := spec.typeName(req) + r.suffix
	fileName := typeName + r.ext
	root := req.SourceRoot
	if r.resource {
		root = req.resourceRoot()
	}
	path := filepath.Join(root, javapkg.ToPath(pkg), fileName)
	display := filepath.Join(javapkg.ToPath(pkg), fileName)

	exists, err := afero.Exists(g.fs, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", display, err)
	}
	if exists {
		g.reporter.Info("%s already exists.", display)
		res.add(Outcome{Path: path, Package: pkg, Role: r.name, Status: StatusExists})
		return nil
	}

	data, err := g.templateData(req, pkg, typeName)
	if err != nil {
		return err
	}

	content, err := g.engine.Render(r.template, data)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(g.fs, path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", display, err)
	}

	output.Debug("wrote file", "path", path, "template", r.template)
	g.reporter.Success("Created %s", display)
	res.add(Outcome{Path: path, Package: pkg, Role: r.name, Status: StatusCreated})
	return nil
}

func (g *Generator) templateData(req *Request, pkg, typeName string) (*TemplateData, error) {
	data := &TemplateData{
		TopLevelPackage: req.TopLevelPackage,
		Package:         pkg,
		ClassName:       javapkg.ClassName(req.Name),
		TypeName:        typeName,
		Name:            req.Name,
		ProjectName:     req.ProjectName,
		ConstantName:    javapkg.ConstantName(req.Name),
	}
	if req.Kind == KindResource {
		expr, err := req.Color.Expression()
		if err != nil {
			return nil, err
		}
		data.FieldExpr = expr
	}
	return data, nil
}

package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

const templateExt = ".tmpl"

// Engine renders the source templates. It is created once at startup and
// passed to every Generator; templates are parsed only in NewEngine.
type Engine struct {
	set *template.Template
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("opening embedded templates: %w", err)
	}
	return NewEngineFS(sub)
}

// NewEngineFS parses every *.tmpl file in fsys. A template's key is its
// path without the extension, e.g. "mvc/model".
func NewEngineFS(fsys fs.FS) (*Engine, error) {
	e := &Engine{set: template.New("").Option("missingkey=error")}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != templateExt {
			return nil
		}

		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		key := strings.TrimSuffix(p, templateExt)
		if _, err := e.set.New(key).Parse(string(body)); err != nil {
			return fmt.Errorf("parsing template %s: %w", p, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Has reports whether a template with the given key exists.
func (e *Engine) Has(key string) bool {
	return e.set.Lookup(key) != nil
}

// Render executes the template key with data.
func (e *Engine) Render(key string, data any) ([]byte, error) {
	if !e.Has(key) {
		return nil, fmt.Errorf("template %q not found", key)
	}
	var buf bytes.Buffer
	if err := e.set.ExecuteTemplate(&buf, key, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

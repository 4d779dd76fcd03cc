package scaffold

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jrebirth-labs/jrforge/internal/javapkg"
	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/spf13/afero"
)

// ColorType selects the JRebirth color class used for a field.
type ColorType string

const (
	ColorWeb  ColorType = "web"
	ColorRGB  ColorType = "rgb"
	ColorGray ColorType = "gray"
)

var hexPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ParseColorType converts a user-supplied color type (case-insensitive).
func ParseColorType(s string) (ColorType, error) {
	switch t := ColorType(strings.ToLower(strings.TrimSpace(s))); t {
	case ColorWeb, ColorRGB, ColorGray:
		return t, nil
	case "":
		return ColorWeb, nil
	default:
		return "", fmt.Errorf("unknown color type %q: want web, rgb or gray", s)
	}
}

// Color is the value of a color resource field. Web and rgb colors take a
// six digit hex value; gray colors take a level between 0 and 1.
type Color struct {
	Type  ColorType
	Value string
}

// Validate checks the value against the color type.
func (c Color) Validate() error {
	_, err := c.Expression()
	return err
}

// Expression returns the Java constructor call for the color.
func (c Color) Expression() (string, error) {
	t := c.Type
	if t == "" {
		t = ColorWeb
	}
	value := strings.TrimPrefix(strings.TrimSpace(c.Value), "#")

	switch t {
	case ColorWeb:
		if value == "" {
			value = "000000"
		}
		if !hexPattern.MatchString(value) {
			return "", fmt.Errorf("invalid web color %q: want six hex digits", c.Value)
		}
		return fmt.Sprintf("new WebColor(%q)", strings.ToUpper(value)), nil

	case ColorRGB:
		if value == "" {
			value = "000000"
		}
		if !hexPattern.MatchString(value) {
			return "", fmt.Errorf("invalid rgb color %q: want six hex digits", c.Value)
		}
		rgb, _ := strconv.ParseUint(value, 16, 32)
		return fmt.Sprintf("new RGB255Color(%d, %d, %d)", rgb>>16&0xFF, rgb>>8&0xFF, rgb&0xFF), nil

	case ColorGray:
		if value == "" {
			value = "0"
		}
		level, err := strconv.ParseFloat(value, 64)
		if err != nil || !(level >= 0 && level <= 1) {
			return "", fmt.Errorf("invalid gray level %q: want a number between 0 and 1", c.Value)
		}
		return fmt.Sprintf("new GrayColor(%s)", strconv.FormatFloat(level, 'f', -1, 64)), nil

	default:
		return "", fmt.Errorf("unknown color type %q", c.Type)
	}
}

// AddColor adds a field for req.Name to the project's colors interface,
// creating the interface when it does not exist. A field that is already
// declared is reported and left untouched.
func (g *Generator) AddColor(req Request) (*Result, error) {
	req.Kind = KindResource
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.Color.Validate(); err != nil {
		return nil, err
	}

	spec := kinds[KindResource]
	pkg := javapkg.Join(req.TopLevelPackage, spec.suffix)
	res := &Result{Kind: KindResource}

	if err := g.ensurePackage(req.SourceRoot, pkg, spec.label, res); err != nil {
		return res, err
	}

	fileName := spec.typeName(&req) + spec.roles[0].ext
	path := filepath.Join(req.SourceRoot, javapkg.ToPath(pkg), fileName)
	display := filepath.Join(javapkg.ToPath(pkg), fileName)

	content, err := afero.ReadFile(g.fs, path)
	if err != nil {
		exists, statErr := afero.Exists(g.fs, path)
		if statErr != nil || exists {
			return res, fmt.Errorf("reading %s: %w", display, err)
		}
		return res, g.emit(&req, spec, pkg, spec.roles[0], res)
	}

	constant := javapkg.ConstantName(req.Name)
	if declaresField(content, constant) {
		g.reporter.Info("%s already defines %s.", display, constant)
		res.add(Outcome{Path: path, Package: pkg, Status: StatusExists})
		return res, nil
	}

	data, err := g.templateData(&req, pkg, spec.typeName(&req))
	if err != nil {
		return res, err
	}
	field, err := g.engine.Render("resource/field", data)
	if err != nil {
		return res, err
	}

	updated, err := insertBeforeClosingBrace(content, field)
	if err != nil {
		return res, fmt.Errorf("%s: %w", display, err)
	}
	if err := afero.WriteFile(g.fs, path, updated, 0644); err != nil {
		return res, fmt.Errorf("writing %s: %w", display, err)
	}

	output.Debug("added color field", "path", path, "field", constant)
	g.reporter.Success("Added %s to %s", constant, display)
	res.add(Outcome{Path: path, Package: pkg, Status: StatusUpdated})
	return res, nil
}

func declaresField(content []byte, constant string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(constant) + `\s*=`)
	return re.Match(content)
}

// insertBeforeClosingBrace inserts field before the last closing brace that
// is not inside a comment or a literal.
func insertBeforeClosingBrace(content, field []byte) ([]byte, error) {
	idx := closingBrace(content)
	if idx < 0 {
		return nil, fmt.Errorf("no closing brace found")
	}
	out := make([]byte, 0, len(content)+len(field))
	out = append(out, content[:idx]...)
	out = append(out, field...)
	out = append(out, content[idx:]...)
	return out, nil
}

func closingBrace(content []byte) int {
	last := -1
	for i := 0; i < len(content); i++ {
		switch c := content[i]; {
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			end := bytes.IndexByte(content[i:], '\n')
			if end < 0 {
				return last
			}
			i += end
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			end := bytes.Index(content[i+2:], []byte("*/"))
			if end < 0 {
				return last
			}
			i += end + 3
		case c == '"' || c == '\'':
			for i++; i < len(content) && content[i] != c && content[i] != '\n'; i++ {
				if content[i] == '\\' {
					i++
				}
			}
		case c == '}':
			last = i
		}
	}
	return last
}

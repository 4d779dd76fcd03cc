// Package javapkg derives Java package names, directory paths and class
// names from user-supplied names.
package javapkg

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lower = cases.Lower(language.English)
	upper = cases.Upper(language.English)

	packagePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
	wordBoundary   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separators     = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// Join concatenates package segments with dots. Empty segments and stray
// leading or trailing dots are ignored, so Join("com.example", "", ".ui")
// is "com.example.ui".
func Join(parts ...string) string {
	var segs []string
	for _, p := range parts {
		for _, s := range strings.Split(p, ".") {
			if s != "" {
				segs = append(segs, s)
			}
		}
	}
	return strings.Join(segs, ".")
}

// ToPath converts a package name to a relative directory path using the
// host separator: "com.example.ui" becomes "com/example/ui".
func ToPath(pkg string) string {
	return filepath.FromSlash(strings.ReplaceAll(Join(pkg), ".", "/"))
}

// Validate reports whether pkg is a syntactically valid Java package name.
func Validate(pkg string) error {
	if !packagePattern.MatchString(pkg) {
		return fmt.Errorf("invalid package %q: must be dot-separated Java identifiers", pkg)
	}
	return nil
}

// ClassName upper-cases the first character of name and keeps the rest.
func ClassName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Segment returns the lower-cased package segment for name.
func Segment(name string) string {
	return lower.String(name)
}

// ConstantName converts a camel-case or dashed name into an upper snake case
// constant: "windowBorder" becomes "WINDOW_BORDER".
func ConstantName(name string) string {
	s := wordBoundary.ReplaceAllString(name, "${1}_${2}")
	s = separators.ReplaceAllString(s, "_")
	return upper.String(strings.Trim(s, "_"))
}

// WithSuffix returns ClassName(name) with suffix appended, unless the name
// already contains the suffix, compared case-insensitively.
func WithSuffix(name, suffix string) string {
	cn := ClassName(name)
	if strings.Contains(lower.String(cn), lower.String(suffix)) {
		return cn
	}
	return cn + suffix
}

// ServiceName is WithSuffix(name, "Service").
func ServiceName(name string) string { return WithSuffix(name, "Service") }

// TypeName turns an arbitrary name such as a project name into a Java type
// name: "my-app" becomes "MyApp" and "demo" becomes "Demo".
func TypeName(name string) string {
	var b strings.Builder
	for _, part := range separators.Split(name, -1) {
		b.WriteString(ClassName(part))
	}
	return b.String()
}

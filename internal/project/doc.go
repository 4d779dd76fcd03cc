// Package project reads and writes the build descriptor of a host project
// (.jrforge/project.yaml). The descriptor records the project's name and
// top-level package, the installed facets, and the dependency coordinates and
// repositories added by setup. It is validated against an embedded JSON
// schema every time it is loaded.
package project

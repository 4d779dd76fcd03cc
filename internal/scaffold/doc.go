// Package scaffold generates JRebirth source files from embedded templates.
// It powers the "*-create" and "color-add" commands: each creation kind maps
// to a package suffix and an ordered list of file roles, and every target
// file is written only if it does not already exist, so generated code that
// was edited by hand is never overwritten.
package scaffold

// Package cli defines the Cobra command tree for the jrforge CLI. Each file
// in this package registers related commands (setup, the *-create family,
// color-add, etc.) with the root command. Commands load the project,
// delegate to internal packages and persist the descriptor when it changed.
package cli

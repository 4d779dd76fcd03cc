// Package facet installs and removes the JRebirth facet of a project: the
// framework repositories, the core dependencies and the facet marker, plus
// optional modules whose version is picked from the published releases.
//
// The package only mutates an in-memory Project. Callers persist the
// descriptor once an operation has returned without error.
package facet

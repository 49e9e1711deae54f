// Package startog provides a searchable showcase of starred GitHub projects.
// It loads a static list of projects, aggregates their tags, and filters the
// list by fuzzy text search and tag selection.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fuzzy/, ristretto/, http/).
package startog

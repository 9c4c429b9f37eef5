// Package match implements the program-matching engine: it scores every
// program in a catalog snapshot against one user's quiz answers across
// three facets (academic, campus, social) and ranks the results.
//
// Scoring is pure: no program is mutated, and concurrent ranking runs
// over the same catalog are safe. The engine owns no I/O; catalogs are
// handed in as read-only slices by the caller.
package match

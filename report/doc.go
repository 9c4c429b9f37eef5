// Package report renders ranked match results as a downloadable PDF or
// as a plain-text table for the CLI.
package report

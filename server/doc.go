// Package server provides the HTTP JSON API: quiz matching, chance-me
// estimates, mentor lookups and PDF report downloads.
package server

// Package mentors serves the mentor directory and maps program keys to
// mentors, with university and random fallbacks when a program has no
// dedicated mentors.
package mentors

// Package catalog loads and stores the program catalog. The engine only
// ever sees a read-only snapshot ([]core.Program); this package owns how
// that snapshot gets into memory, either from the program_profiles.json
// file the catalog is maintained in or from a local Badger store seeded
// from it.
package catalog

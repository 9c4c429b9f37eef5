package badger

import (
	"fmt"

	"github.com/linku/unime/core"
)

// Key prefixes for different data types
const (
	programRecordPrefix = "prgrec"
	programKeyPrefix    = "prgkey"
)

// makeProgramKey generates a key for a program record by ID.
func makeProgramKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", programRecordPrefix, id))
}

// makeProgramLookupKey generates a key for the "University_Program" lookup
// index.
func makeProgramLookupKey(programKey string) []byte {
	return []byte(programKeyPrefix + ":" + programKey)
}

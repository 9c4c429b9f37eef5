// Copyright 2025 LinkU Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/linku/unime/catalog"
	"github.com/linku/unime/core"
)

// ProgramRepository implements catalog.Repository for BadgerDB.
type ProgramRepository struct {
	backend *Backend
}

var _ catalog.Repository = (*ProgramRepository)(nil)

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(backend *Backend) (*ProgramRepository, error) {
	return &ProgramRepository{
		backend: backend,
	}, nil
}

// NewMemoryRepository creates an in-memory repository for tests.
func NewMemoryRepository() (*ProgramRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}
	repo, err := NewProgramRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return repo, backend, nil
}

// Close releases resources. ProgramRepository has no resources of its own.
func (r *ProgramRepository) Close() error {
	return nil
}

// AddPrograms adds or replaces programs by their content-based IDs.
// Also maintains the "University_Program" lookup index.
func (r *ProgramRepository) AddPrograms(ctx context.Context, programs ...*core.Program) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, program := range programs {
			if err := core.ValidateProgram(program); err != nil {
				return err
			}

			id := program.ID()
			if err := tx.Set(makeProgramKey(id), catalog.MarshalProgram(program)); err != nil {
				return err
			}
			if err := tx.Set(makeProgramLookupKey(program.Key()), catalog.MarshalID(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProgram retrieves a single program by ID.
func (r *ProgramRepository) GetProgram(ctx context.Context, id core.ID) (*core.Program, error) {
	var program *core.Program
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		program, err = readProgram(tx, makeProgramKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, catalog.ErrNotFound
	}
	return program, nil
}

// GetProgramByKey retrieves a single program by its "University_Program" key.
func (r *ProgramRepository) GetProgramByKey(ctx context.Context, programKey string) (*core.Program, error) {
	var id core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProgramLookupKey(programKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id, err = catalog.UnmarshalID(val)
			return err
		})
	}, false)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.GetProgram(ctx, id)
}

// ListPrograms returns the full catalog snapshot, ordered by university
// then program name so repeated loads see the same catalog order.
func (r *ProgramRepository) ListPrograms(ctx context.Context) ([]core.Program, error) {
	var programs []core.Program

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(programRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			err := item.Value(func(val []byte) error {
				program, err := catalog.UnmarshalProgram(val)
				if err != nil {
					return err
				}
				programs = append(programs, *program)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.Slice(programs, func(i, j int) bool {
		if programs[i].Uni != programs[j].Uni {
			return programs[i].Uni < programs[j].Uni
		}
		return programs[i].Name < programs[j].Name
	})
	return programs, nil
}

// DeletePrograms removes programs by their IDs.
func (r *ProgramRepository) DeletePrograms(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			program, err := readProgram(tx, makeProgramKey(id))
			if err != nil {
				return err
			}
			if program == nil {
				return catalog.ErrNotFound
			}

			if err := tx.Delete(makeProgramKey(id)); err != nil {
				return err
			}
			if err := tx.Delete(makeProgramLookupKey(program.Key())); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Count returns the number of programs in the store.
func (r *ProgramRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(programRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// readProgram reads and deserializes a program record within a transaction.
// Returns nil (no error) when the key does not exist.
func readProgram(tx *badger.Txn, key []byte) (*core.Program, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var program *core.Program
	err = item.Value(func(val []byte) error {
		var err error
		program, err = catalog.UnmarshalProgram(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return program, nil
}

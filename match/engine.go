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


package match

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/linku/unime/core"
)

// Matcher scores catalog programs against quiz answers and ranks them.
// A Matcher is safe for concurrent use: scoring never mutates the catalog
// and each ranking run is independent.
type Matcher struct {
	pool    *ants.Pool
	logger  *slog.Logger
	weights *Weights
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent program scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Matcher) error {
		if size < 1 {
			size = 1
		}

		if m.pool != nil {
			m.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// WithWeights overlays the given entries onto the default trait weight
// tables. Zero entries keep the defaults; nil restores the defaults.
func WithWeights(weights *Weights) Option {
	return func(m *Matcher) error {
		m.weights = MergeWeights(DefaultWeights(), weights)
		return nil
	}
}

// New creates a new Matcher.
func New(opts ...Option) (*Matcher, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		pool:    pool,
		logger:  slog.Default(),
		weights: DefaultWeights(),
	}

	for _, opt := range opts {
		if optErr := opt(m); optErr != nil {
			m.Release()
			return nil, optErr
		}
	}

	return m, nil
}

// Release releases the scoring worker pool.
// The Matcher should not be used after calling Release.
func (m *Matcher) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}

// ScoreOne scores a single program against the answers. Exposed for
// debugging and tests; Rank is the production entry point.
func (m *Matcher) ScoreOne(program *core.Program, answers *core.Answers) (core.Match, error) {
	if program == nil {
		return core.Match{}, ErrNilProgram
	}
	if answers == nil {
		return core.Match{}, ErrNilAnswers
	}
	if answers.WeightTotal() == 0 {
		return core.Match{}, ErrInvalidWeights
	}
	return m.score(program, answers), nil
}

func (m *Matcher) score(program *core.Program, answers *core.Answers) core.Match {
	academic := scoreAcademic(program, answers, m.weights)
	campus := scoreCampus(program, answers)
	social := scoreSocial(program, answers)

	overall := (answers.WeightAcademic*academic +
		answers.WeightCampus*campus +
		answers.WeightSocial*social) / answers.WeightTotal()

	return core.Match{
		Uni:      program.Uni,
		Program:  program.Name,
		Overall:  overall,
		Academic: academic,
		Campus:   campus,
		Social:   social,
	}
}

// Rank scores every program against the answers and returns the k best
// matches, ordered by overall score descending. Ties keep the original
// catalog order (the sort is stable over the input order). k <= 0 returns
// all matches.
//
// A program whose scoring panics is skipped and logged; one malformed
// catalog entry must not abort the run. An empty catalog yields an empty
// result. Weights summing to zero fail fast with ErrInvalidWeights.
func (m *Matcher) Rank(ctx context.Context, programs []core.Program, answers *core.Answers, k int) ([]core.Match, error) {
	if answers == nil {
		return nil, ErrNilAnswers
	}
	if answers.WeightTotal() == 0 {
		return nil, ErrInvalidWeights
	}
	if len(programs) == 0 {
		return []core.Match{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scored := make([]core.Match, len(programs))
	ok := make([]bool, len(programs))

	var wg sync.WaitGroup
	for i := range programs {
		program := &programs[i]
		idx := i
		wg.Add(1)
		err := m.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					m.logger.Error("error scoring program, skipping",
						"uni", program.Uni, "program", program.Name, "panic", r)
				}
			}()
			scored[idx] = m.score(program, answers)
			ok[idx] = true
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	// Compact out skipped entries, preserving catalog order.
	results := scored[:0]
	for i, match := range scored {
		if ok[i] {
			results = append(results, match)
		}
	}

	// Stable sort keeps catalog order as the deterministic tie-break.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Overall > results[j].Overall
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package config

import "sync"

// State memoizes the outcome of one resolution pipeline run. The first Get
// runs the pipeline; later calls return the cached configuration without
// re-reading any source. A failed run is cached too and re-returned until an
// explicit Reset, so a broken environment fails fast instead of silently
// retrying.
//
// The mutex guarantees at-most-one pipeline execution under concurrent first
// access: losers of the race block until the winner's result is cached.
type State struct {
	loader *Loader

	mu   sync.Mutex
	cfg  *Config
	err  error
	done bool
}

// NewState builds an independent config state around the given loader.
// Tests construct their own instances instead of sharing the process one.
func NewState(loader *Loader) *State {
	return &State{loader: loader}
}

// Get returns the resolved configuration, building it on first use.
func (s *State) Get() (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.done {
		s.cfg, s.err = newConfig(s.loader)
		s.done = true
	}
	return s.cfg, s.err
}

// Reset discards the cached outcome so the next Get rebuilds from the
// current environment and file state.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = nil
	s.err = nil
	s.done = false
}

// processState is the per-process singleton behind [Get] and [Reset].
var processState = NewState(NewLoader(DefaultSchema()))

// Get returns the process-wide resolved configuration, building it exactly
// once. Callers decide how to react to a failure; this package never exits
// or prints.
func Get() (*Config, error) { return processState.Get() }

// Reset discards the process-wide cached configuration. Intended for tests.
func Reset() { processState.Reset() }

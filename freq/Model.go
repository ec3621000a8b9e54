/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package freq implements the order-0 frequency model that feeds the
// arithmetic coder: per-symbol counts plus a lazily derived cumulative
// array.
package freq

import (
	"golang.org/x/exp/slices"

	"github.com/arcodec/arcodec"
	"github.com/arcodec/arcodec/internal"
)

// Model is a mutable table of non-negative per-symbol counts with a
// lazily derived cumulative array. It satisfies arcodec.CodingModel.
type Model struct {
	counts     []int
	total      uint64
	cumulative []uint64 // nil until first Low/High query after a mutation
}

// NewModel creates a Model from a slice of counts, one per symbol. The
// slice is copied; the caller's slice is never aliased or mutated.
func NewModel(counts []int) (*Model, error) {
	if len(counts) < 1 {
		return nil, arcodec.ErrEmptyModel
	}

	m := &Model{counts: slices.Clone(counts)}

	for _, c := range m.counts {
		if c < 0 {
			return nil, arcodec.ErrNegativeFrequency
		}

		m.total += uint64(c)
	}

	return m, nil
}

// NewModelFromHistogram builds a 257-symbol Model (256 byte values plus
// the end-of-stream sentinel at index 256) from a single pass over
// block, incrementing the sentinel once as the compressor's usage
// contract requires.
func NewModelFromHistogram(block []byte) *Model {
	counts := make([]int, 257)
	internal.ComputeHistogram(block, counts)
	counts[256] = 1
	total := uint64(len(block)) + 1
	return &Model{counts: counts, total: total}
}

// SymbolCount returns N, the number of symbols in [0, N).
func (this *Model) SymbolCount() int {
	return len(this.counts)
}

// Get returns the count of symbol s.
func (this *Model) Get(s int) (int, error) {
	if !this.inRange(s) {
		return 0, arcodec.ErrSymbolOutOfRange
	}

	return this.counts[s], nil
}

// Set assigns the count of symbol s, invalidating the cumulative array.
func (this *Model) Set(s int, freq int) error {
	if !this.inRange(s) {
		return arcodec.ErrSymbolOutOfRange
	}

	if freq < 0 {
		return arcodec.ErrNegativeFrequency
	}

	this.total = this.total - uint64(this.counts[s]) + uint64(freq)
	this.counts[s] = freq
	this.cumulative = nil
	return nil
}

// Increment adds one to the count of symbol s, invalidating the
// cumulative array.
func (this *Model) Increment(s int) error {
	if !this.inRange(s) {
		return arcodec.ErrSymbolOutOfRange
	}

	this.counts[s]++
	this.total++
	this.cumulative = nil
	return nil
}

// Total returns the sum of all counts.
func (this *Model) Total() uint64 {
	return this.total
}

// Low returns the cumulative count below symbol s: sum(counts[0:s]).
func (this *Model) Low(s int) uint64 {
	this.ensureCumulative()
	return this.cumulative[s]
}

// High returns the cumulative count at and below symbol s:
// sum(counts[0:s+1]).
func (this *Model) High(s int) uint64 {
	this.ensureCumulative()
	return this.cumulative[s+1]
}

// Clone returns an independent copy of this model.
func (this *Model) Clone() *Model {
	clone := &Model{counts: slices.Clone(this.counts), total: this.total}

	if this.cumulative != nil {
		clone.cumulative = slices.Clone(this.cumulative)
	}

	return clone
}

func (this *Model) inRange(s int) bool {
	return s >= 0 && s < len(this.counts)
}

func (this *Model) ensureCumulative() {
	if this.cumulative != nil {
		return
	}

	cumul := make([]uint64, len(this.counts)+1)
	sum := uint64(0)

	for i, c := range this.counts {
		sum += uint64(c)
		cumul[i+1] = sum
	}

	this.cumulative = cumul
}

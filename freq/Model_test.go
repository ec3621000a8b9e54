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

package freq

import (
	"golang.org/x/exp/slices"
	"testing"

	"github.com/arcodec/arcodec"
)

func TestNewModelRejectsEmpty(t *testing.T) {
	if _, err := NewModel(nil); err != arcodec.ErrEmptyModel {
		t.Fatalf("expected ErrEmptyModel, got %v", err)
	}
}

func TestNewModelRejectsNegativeFrequency(t *testing.T) {
	if _, err := NewModel([]int{1, -1, 2}); err != arcodec.ErrNegativeFrequency {
		t.Fatalf("expected ErrNegativeFrequency, got %v", err)
	}
}

func TestModelCumulative(t *testing.T) {
	m, err := NewModel([]int{2, 0, 5, 1})

	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	if m.Total() != 8 {
		t.Fatalf("expected total 8, got %d", m.Total())
	}

	want := []uint64{0, 2, 2, 7, 8}

	for s := 0; s < 4; s++ {
		if m.Low(s) != want[s] {
			t.Fatalf("symbol %d: Low() = %d, want %d", s, m.Low(s), want[s])
		}

		if m.High(s) != want[s+1] {
			t.Fatalf("symbol %d: High() = %d, want %d", s, m.High(s), want[s+1])
		}
	}
}

func TestModelSetInvalidatesCumulative(t *testing.T) {
	m, _ := NewModel([]int{1, 1, 1})

	if m.High(2) != 3 {
		t.Fatalf("expected 3, got %d", m.High(2))
	}

	if err := m.Set(1, 5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if m.Total() != 7 {
		t.Fatalf("expected total 7, got %d", m.Total())
	}

	if m.High(2) != 7 {
		t.Fatalf("expected 7 after Set, got %d", m.High(2))
	}
}

func TestModelIncrement(t *testing.T) {
	m, _ := NewModel([]int{0, 0, 0})

	for i := 0; i < 3; i++ {
		if err := m.Increment(1); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}

	c, _ := m.Get(1)

	if c != 3 {
		t.Fatalf("expected count 3, got %d", c)
	}

	if m.Total() != 3 {
		t.Fatalf("expected total 3, got %d", m.Total())
	}
}

func TestModelOutOfRange(t *testing.T) {
	m, _ := NewModel([]int{1, 1})

	if _, err := m.Get(2); err != arcodec.ErrSymbolOutOfRange {
		t.Fatalf("expected ErrSymbolOutOfRange, got %v", err)
	}

	if err := m.Set(-1, 1); err != arcodec.ErrSymbolOutOfRange {
		t.Fatalf("expected ErrSymbolOutOfRange, got %v", err)
	}

	if err := m.Increment(2); err != arcodec.ErrSymbolOutOfRange {
		t.Fatalf("expected ErrSymbolOutOfRange, got %v", err)
	}
}

func TestModelClone(t *testing.T) {
	m, _ := NewModel([]int{3, 1, 4})
	_ = m.High(2) // force cumulative derivation before cloning

	clone := m.Clone()

	if err := clone.Set(0, 100); err != nil {
		t.Fatalf("Set on clone failed: %v", err)
	}

	if m.Total() == clone.Total() {
		t.Fatal("mutating the clone must not affect the original")
	}

	original, _ := m.Get(0)

	if original != 3 {
		t.Fatalf("original count mutated: got %d, want 3", original)
	}
}

func TestNewModelFromHistogram(t *testing.T) {
	block := []byte("AAAA")
	m := NewModelFromHistogram(block)

	if m.SymbolCount() != 257 {
		t.Fatalf("expected 257 symbols, got %d", m.SymbolCount())
	}

	countA, _ := m.Get('A')

	if countA != 4 {
		t.Fatalf("expected count 4 for 'A', got %d", countA)
	}

	sentinel, _ := m.Get(256)

	if sentinel != 1 {
		t.Fatalf("expected sentinel count 1, got %d", sentinel)
	}

	if m.Total() != 5 {
		t.Fatalf("expected total 5, got %d", m.Total())
	}
}

func TestModelCloneCumulativeEquality(t *testing.T) {
	m, _ := NewModel([]int{1, 2, 3})
	_ = m.High(2)
	clone := m.Clone()

	got := make([]uint64, 4)
	want := make([]uint64, 4)

	for s := 0; s < 3; s++ {
		got[s] = clone.Low(s)
		want[s] = m.Low(s)
	}

	got[3] = clone.High(2)
	want[3] = m.High(2)

	if !slices.Equal(got, want) {
		t.Fatalf("clone cumulative mismatch: got %v, want %v", got, want)
	}
}

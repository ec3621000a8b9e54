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

// Package arith implements an order 0 static arithmetic coder over a
// closed [low, high] integer interval of fixed bit width. Code based on
// the finite-precision arithmetic coding algorithm described by Nayuki
// (reference/naiuki style E1/E2/E3 renormalization and underflow
// straddling), not on kanzi's byte-oriented Subbotin range coder.
package arith

import (
	"github.com/arcodec/arcodec"
)

// StateWidth is W, the number of bits of precision the coder interval
// is tracked with.
const StateWidth = 32

// state holds the closed [low, high] interval shared by the encoder
// and the decoder, plus the renormalization constants derived from
// StateWidth. Embedded by Encoder and Decoder; never used standalone.
type state struct {
	low          uint64
	high         uint64
	fullRange    uint64
	halfRange    uint64
	quarterRange uint64
	minRange     uint64
	maxTotal     uint64
	stateMask    uint64
}

func newState(width uint) (state, error) {
	if width < 1 {
		return state{}, arcodec.ErrInvalidStateWidth
	}

	full := uint64(1) << width
	half := full >> 1
	quarter := half >> 1
	minRange := quarter + 2

	return state{
		low:          0,
		high:         full - 1,
		fullRange:    full,
		halfRange:    half,
		quarterRange: quarter,
		minRange:     minRange,
		maxTotal:     minRange,
		stateMask:    full - 1,
	}, nil
}

// narrow shrinks [low, high] to the sub-interval assigned to symbol s
// under model m. It is the one piece of arithmetic shared by encoding
// and decoding: both narrow the interval the same way once the symbol
// is known, only the means of choosing the symbol differ.
func (this *state) narrow(m arcodec.CodingModel, s int) error {
	total := m.Total()

	if total > this.maxTotal {
		return arcodec.ErrModelTooLarge
	}

	symLow := m.Low(s)
	symHigh := m.High(s)

	if symLow == symHigh {
		return arcodec.ErrZeroFrequency
	}

	rng := this.high - this.low + 1
	newLow := this.low + symLow*rng/total
	newHigh := this.low + symHigh*rng/total - 1
	this.low = newLow
	this.high = newHigh
	return nil
}

// e1e2Pending reports whether the top bit of low and high agree, i.e.
// an E1 (both in the lower half) or E2 (both in the upper half)
// renormalization step is due.
func (this *state) e1e2Pending() bool {
	return (this.low^this.high)&this.halfRange == 0
}

// e1e2Shift performs one E1/E2 renormalization step: discard the
// shared top bit and shift the interval left by one, growing it back
// toward fullRange.
func (this *state) e1e2Shift() {
	this.low = (this.low << 1) & this.stateMask
	this.high = ((this.high << 1) & this.stateMask) | 1
}

// e3Pending reports whether low and high straddle the midpoint closely
// enough (E3 underflow) that neither E1 nor E2 can fire yet the
// interval is still shrinking toward the precision limit.
func (this *state) e3Pending() bool {
	return this.low&^this.high&this.quarterRange != 0
}

// e3Shift performs one E3 underflow step: fold the straddled midpoint
// out of the interval so it can keep shrinking without losing
// precision.
func (this *state) e3Shift() {
	this.low = (this.low << 1) ^ this.halfRange
	this.high = ((this.high^this.halfRange)<<1 | this.halfRange) | 1
}

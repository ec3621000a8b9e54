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

package arith

import (
	"github.com/arcodec/arcodec"
)

// Decoder mirrors Encoder bit for bit: it tracks the same [low, high]
// interval plus a running code value read from the bit stream, and
// recovers the symbol sequence the encoder produced.
type Decoder struct {
	state
	input arcodec.BitSource
	code  uint64
}

// NewDecoder creates a Decoder reading from input at the default
// StateWidth precision, priming code with the first StateWidth bits of
// the stream.
func NewDecoder(input arcodec.BitSource) (*Decoder, error) {
	st, err := newState(StateWidth)

	if err != nil {
		return nil, err
	}

	if input == nil {
		return nil, arcodec.ErrUnexpectedEnd
	}

	d := &Decoder{state: st, input: input}

	for i := 0; i < StateWidth; i++ {
		d.code = (d.code << 1) | uint64(d.readCodeBit())
	}

	return d, nil
}

// Read determines which symbol of m the current code value falls
// under, narrows the interval to that symbol exactly as Write does, and
// renormalizes the code value in step with the interval.
func (this *Decoder) Read(m arcodec.CodingModel) (int, error) {
	total := m.Total()

	if total > this.maxTotal {
		return 0, arcodec.ErrModelTooLarge
	}

	rng := this.high - this.low + 1
	offset := this.code - this.low
	value := ((offset+1)*total - 1) / rng

	s, err := search(m, value)

	if err != nil {
		return 0, err
	}

	if err := this.narrow(m, s); err != nil {
		return 0, err
	}

	for this.e1e2Pending() {
		this.code = ((this.code << 1) & this.stateMask) | uint64(this.readCodeBit())
		this.e1e2Shift()
	}

	for this.e3Pending() {
		this.code = (this.code & this.halfRange) | ((this.code << 1) & (this.stateMask >> 1)) | uint64(this.readCodeBit())
		this.e3Shift()
	}

	if this.code < this.low || this.code > this.high {
		return 0, arcodec.ErrStateCorrupt
	}

	return s, nil
}

// readCodeBit reads one bit from the input, substituting zero once the
// stream is physically exhausted; this is what lets the decoder run
// past the end of the coded stream during its final renormalization.
func (this *Decoder) readCodeBit() int {
	return this.input.ReadBitOrZero()
}

// search finds the unique symbol s with m.Low(s) <= value < m.High(s)
// via binary search over the model's cumulative array.
func search(m arcodec.CodingModel, value uint64) (int, error) {
	start := 0
	end := m.SymbolCount()

	for end-start > 1 {
		middle := (start + end) >> 1

		if m.Low(middle) > value {
			end = middle
		} else {
			start = middle
		}
	}

	if m.Low(start) > value || m.High(start) <= value {
		return 0, arcodec.ErrStateCorrupt
	}

	return start, nil
}

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

// Encoder drives an arithmetic coding state from a stream of symbols,
// emitting normalized bits plus pending-underflow bits to a BitSink.
type Encoder struct {
	state
	output           arcodec.BitSink
	pendingUnderflow uint64
	finished         bool
}

// NewEncoder creates an Encoder writing to output at the default
// StateWidth precision.
func NewEncoder(output arcodec.BitSink) (*Encoder, error) {
	st, err := newState(StateWidth)

	if err != nil {
		return nil, err
	}

	if output == nil {
		return nil, arcodec.ErrUnexpectedEnd
	}

	return &Encoder{state: st, output: output}, nil
}

// Write narrows the coder interval to the sub-range model m assigns to
// symbol s, then renormalizes and resolves any underflow, emitting bits
// to the sink as the interval's precision allows.
func (this *Encoder) Write(m arcodec.CodingModel, s int) error {
	if s < 0 || s >= m.SymbolCount() {
		return arcodec.ErrSymbolOutOfRange
	}

	if err := this.narrow(m, s); err != nil {
		return err
	}

	for this.e1e2Pending() {
		if err := this.emitTopBit(); err != nil {
			return err
		}

		this.e1e2Shift()
	}

	for this.e3Pending() {
		this.onUnderflow()
		this.e3Shift()
	}

	return nil
}

// Finish emits the single disambiguating bit that terminates the coded
// stream. After Finish the encoder must not be written to again.
func (this *Encoder) Finish() error {
	if this.finished {
		return nil
	}

	this.finished = true
	return this.output.WriteBit(1)
}

// emitTopBit emits the bit being shifted out of low, followed by
// pendingUnderflow complementary bits queued by prior E3 steps.
func (this *Encoder) emitTopBit() error {
	bit := int(this.low >> (StateWidth - 1))

	if err := this.output.WriteBit(bit); err != nil {
		return err
	}

	for ; this.pendingUnderflow > 0; this.pendingUnderflow-- {
		if err := this.output.WriteBit(1 - bit); err != nil {
			return err
		}
	}

	return nil
}

// onUnderflow defers one complementary bit to be resolved by the next
// emitTopBit.
func (this *Encoder) onUnderflow() {
	this.pendingUnderflow++
}

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

package arcodec

import "errors"

// Sentinel errors shared by bitio, freq, arith and ioformat. Every one of
// these is fatal to the coding session it occurs in; callers compare with
// errors.Is rather than inspecting message text.
var (
	// ErrInvalidStateWidth is returned when a CoderState is constructed
	// with W < 1.
	ErrInvalidStateWidth = errors.New("arcodec: state width must be >= 1")

	// ErrInvalidBitValue is returned by BitSink.WriteBit for a value
	// other than 0 or 1.
	ErrInvalidBitValue = errors.New("arcodec: bit value must be 0 or 1")

	// ErrUnexpectedEnd is returned by BitSource.ReadBitOrFail once the
	// underlying stream is exhausted.
	ErrUnexpectedEnd = errors.New("arcodec: unexpected end of bit stream")

	// ErrSymbolOutOfRange is returned when a FrequencyModel is queried
	// with a symbol outside [0, N).
	ErrSymbolOutOfRange = errors.New("arcodec: symbol out of range")

	// ErrNegativeFrequency is returned by FrequencyModel.Set for a
	// negative count.
	ErrNegativeFrequency = errors.New("arcodec: negative frequency")

	// ErrEmptyModel is returned when a FrequencyModel is constructed
	// with zero symbols.
	ErrEmptyModel = errors.New("arcodec: model must have at least one symbol")

	// ErrZeroFrequency is returned when the coder is asked to code a
	// symbol whose count is 0.
	ErrZeroFrequency = errors.New("arcodec: symbol has zero frequency")

	// ErrModelTooLarge is returned when a model's total exceeds the
	// coder's maximum total for its state width.
	ErrModelTooLarge = errors.New("arcodec: model total exceeds the coder's maximum")

	// ErrStateCorrupt is returned when the decoder's low <= code <= high
	// invariant is violated after advancing.
	ErrStateCorrupt = errors.New("arcodec: decoder state corrupt")
)

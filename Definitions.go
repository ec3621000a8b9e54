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

// Package arcodec defines the top level interfaces shared by the
// arithmetic coding engine.
//
// The implementations of these interfaces live in sub-packages: bitio
// for bit-level I/O, freq for the frequency model, arith for the coder
// state machine and ioformat for the file-level compress/decompress
// drivers.
package arcodec

// BitSink packs individual bits into an underlying byte-oriented stream.
type BitSink interface {
	// WriteBit writes a single bit (0 or 1) to the stream. Returns
	// ErrInvalidBitValue if bit is not 0 or 1.
	WriteBit(bit int) error

	// Close pads the partial byte (if any) with zero bits, flushes it,
	// and closes the underlying stream. Idempotent.
	Close() error
}

// BitSource unpacks individual bits from an underlying byte-oriented
// stream, MSB-first within each byte.
type BitSource interface {
	// ReadBitOrZero returns the next bit, substituting 0 once the
	// underlying stream is exhausted. Never fails.
	ReadBitOrZero() int

	// ReadBitOrFail returns the next bit, or ErrUnexpectedEnd if the
	// underlying stream is exhausted.
	ReadBitOrFail() (int, error)

	// Close makes the source unavailable for further reads.
	Close() error
}

// CodingModel is the read-only view of a frequency table that the
// arithmetic coder needs: a total count and, per symbol, the lower and
// upper cumulative bound.
type CodingModel interface {
	// SymbolCount returns N, the number of symbols in [0, N).
	SymbolCount() int

	// Total returns the sum of all counts.
	Total() uint64

	// Low returns the cumulative count below symbol s.
	Low(s int) uint64

	// High returns the cumulative count at and below symbol s.
	High(s int) uint64
}

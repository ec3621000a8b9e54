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

package bitio

import (
	"bufio"
	"errors"
	"io"

	"github.com/arcodec/arcodec"
)

// Source unpacks individual bits MSB-first from an underlying io.Reader.
// Once the underlying reader is exhausted, ReadBitOrZero substitutes zero
// bits indefinitely while ReadBitOrFail reports ErrUnexpectedEnd; this
// asymmetry is required so the decoder's final-flush can run past the
// physical end of the bit stream while the header read stays strict.
type Source struct {
	is      *bufio.Reader
	closer  io.Closer
	current byte
	nbits   uint // unread bits remaining in current, 0..7 between reads
	eof     bool
	read    uint64
	closed  bool
}

// NewSource creates a Source reading from r.
func NewSource(r io.ReadCloser) (*Source, error) {
	if r == nil {
		return nil, errors.New("bitio: invalid nil input stream")
	}

	return &Source{is: bufio.NewReader(r), closer: r}, nil
}

// rawBit returns the next bit and true, or (0, false) once the physical
// end of the underlying reader has been reached.
func (this *Source) rawBit() (int, bool) {
	if this.nbits == 0 {
		if this.eof {
			return 0, false
		}

		b, err := this.is.ReadByte()

		if err != nil {
			this.eof = true
			return 0, false
		}

		this.current = b
		this.nbits = 8
	}

	this.nbits--
	this.read++
	return int((this.current >> this.nbits) & 1), true
}

// ReadBitOrZero returns the next bit, or 0 past the physical end of the
// stream. Never fails.
func (this *Source) ReadBitOrZero() int {
	bit, ok := this.rawBit()

	if !ok {
		return 0
	}

	return bit
}

// ReadBitOrFail returns the next bit, or arcodec.ErrUnexpectedEnd past the
// physical end of the stream.
func (this *Source) ReadBitOrFail() (int, error) {
	bit, ok := this.rawBit()

	if !ok {
		return 0, arcodec.ErrUnexpectedEnd
	}

	return bit, nil
}

// Close makes the source unavailable for further reads and closes the
// underlying stream. Safe to call more than once.
func (this *Source) Close() error {
	if this.closed {
		return nil
	}

	this.closed = true
	return this.closer.Close()
}

// Read returns the number of bits successfully read so far.
func (this *Source) Read() uint64 {
	return this.read
}

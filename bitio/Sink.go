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

// Package bitio implements the bit-level sink and source described by the
// arcodec core: a byte-oriented buffer plus a partial byte of 0..8 bits.
package bitio

import (
	"bufio"
	"errors"
	"io"

	"github.com/arcodec/arcodec"
)

// Sink packs individual bits MSB-first into an underlying io.WriteCloser.
// The zero value is not usable; construct with NewSink.
type Sink struct {
	os      *bufio.Writer
	closer  io.Closer
	current byte
	nbits   uint // bits already buffered in current, 0..7 between writes
	written uint64
	closed  bool
}

// NewSink creates a Sink writing to w. w is closed (after the final
// partial byte is flushed) when the Sink's Close method is called.
func NewSink(w io.WriteCloser) (*Sink, error) {
	if w == nil {
		return nil, errors.New("bitio: invalid nil output stream")
	}

	return &Sink{os: bufio.NewWriter(w), closer: w}, nil
}

// WriteBit writes a single bit to the stream. Returns
// arcodec.ErrInvalidBitValue if bit is not 0 or 1.
func (this *Sink) WriteBit(bit int) error {
	if this.closed {
		return errors.New("bitio: sink closed")
	}

	if bit != 0 && bit != 1 {
		return arcodec.ErrInvalidBitValue
	}

	return this.writeBit(bit)
}

func (this *Sink) writeBit(bit int) error {
	this.current = (this.current << 1) | byte(bit)
	this.nbits++
	this.written++

	if this.nbits == 8 {
		if err := this.os.WriteByte(this.current); err != nil {
			return err
		}

		this.current = 0
		this.nbits = 0
	}

	return nil
}

// Close pads the partial byte (if any) with trailing zero bits, flushes
// the buffered writer, and closes the underlying stream. Safe to call
// more than once. The sink is marked closed and the underlying stream is
// closed even when padding or flushing fails; the first error is returned.
func (this *Sink) Close() (err error) {
	if this.closed {
		return nil
	}

	this.closed = true

	defer func() {
		if cerr := this.closer.Close(); err == nil {
			err = cerr
		}
	}()

	for this.nbits != 0 {
		if err := this.writeBit(0); err != nil {
			return err
		}
	}

	return this.os.Flush()
}

// Written returns the number of bits written so far, including padding
// added by Close.
func (this *Sink) Written() uint64 {
	return this.written
}

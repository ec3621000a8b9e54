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

// Package ioformat ties bitio, freq and arith together into the on-disk
// compressed format: a 1024-byte frequency header followed by the
// arithmetic-coded bit stream.
package ioformat

import (
	"io"

	"github.com/arcodec/arcodec"
	"github.com/arcodec/arcodec/arith"
	"github.com/arcodec/arcodec/bitio"
	"github.com/arcodec/arcodec/freq"
)

const sentinelSymbol = 256

// Compressor writes a single compressed block: a frequency header
// followed by the arithmetic-coded symbol stream. It owns the output
// stream and is single-use: Compress may be called exactly once.
type Compressor struct {
	out       io.WriteCloser
	listeners []arcodec.Listener
}

// NewCompressor creates a Compressor writing to out, notifying any
// listeners of progress events.
func NewCompressor(out io.WriteCloser, listeners ...arcodec.Listener) (*Compressor, error) {
	if out == nil {
		return nil, arcodec.ErrUnexpectedEnd
	}

	return &Compressor{out: out, listeners: listeners}, nil
}

// Compress reads block in full, builds its order-0 frequency model
// (first pass), writes the header, then encodes the block followed by
// the sentinel symbol (second pass). It returns the number of bits
// written to the coded stream, not counting the header.
func (this *Compressor) Compress(block []byte) (uint64, error) {
	this.notify(arcodec.NewEvent(arcodec.EvtCompressionStart, int64(len(block))))

	m := freq.NewModelFromHistogram(block)

	sink, err := bitio.NewSink(this.out)

	if err != nil {
		return 0, err
	}

	defer sink.Close()

	if err := freq.WriteHeader(sink, m); err != nil {
		return 0, err
	}

	this.notify(arcodec.NewEvent(arcodec.EvtHeaderWritten, int64(freq.HeaderSymbols*4)))
	headerBits := sink.Written()

	enc, err := arith.NewEncoder(sink)

	if err != nil {
		return 0, err
	}

	for _, b := range block {
		if err := enc.Write(m, int(b)); err != nil {
			return 0, err
		}
	}

	if err := enc.Write(m, sentinelSymbol); err != nil {
		return 0, err
	}

	if err := enc.Finish(); err != nil {
		return 0, err
	}

	if err := sink.Close(); err != nil {
		return 0, err
	}

	written := sink.Written() - headerBits
	this.notify(arcodec.NewEvent(arcodec.EvtCompressionEnd, int64(written)))
	return written, nil
}

func (this *Compressor) notify(evt *arcodec.Event) {
	notifyListeners(this.listeners, evt)
}

func notifyListeners(listeners []arcodec.Listener, evt *arcodec.Event) {
	defer func() {
		recover() // a misbehaving listener must not abort the compress/decompress path
	}()

	for _, l := range listeners {
		l.ProcessEvent(evt)
	}
}

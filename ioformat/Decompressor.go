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

package ioformat

import (
	"io"

	"github.com/arcodec/arcodec"
	"github.com/arcodec/arcodec/arith"
	"github.com/arcodec/arcodec/bitio"
	"github.com/arcodec/arcodec/freq"
)

// Decompressor reads a single compressed block produced by Compressor:
// the frequency header, then the coded symbol stream up to and
// including the sentinel.
type Decompressor struct {
	in        io.ReadCloser
	listeners []arcodec.Listener
}

// NewDecompressor creates a Decompressor reading from in, notifying any
// listeners of progress events.
func NewDecompressor(in io.ReadCloser, listeners ...arcodec.Listener) (*Decompressor, error) {
	if in == nil {
		return nil, arcodec.ErrUnexpectedEnd
	}

	return &Decompressor{in: in, listeners: listeners}, nil
}

// Decompress reads the header, then decodes symbols until the sentinel
// is reached, returning the reconstructed block.
func (this *Decompressor) Decompress() ([]byte, error) {
	this.notify(arcodec.NewEvent(arcodec.EvtDecompressionStart, 0))

	src, err := bitio.NewSource(this.in)

	if err != nil {
		return nil, err
	}

	defer src.Close()

	m, err := freq.ReadHeader(src)

	if err != nil {
		return nil, err
	}

	this.notify(arcodec.NewEvent(arcodec.EvtHeaderRead, int64(freq.HeaderSymbols*4)))

	dec, err := arith.NewDecoder(src)

	if err != nil {
		return nil, err
	}

	var out []byte

	for {
		s, err := dec.Read(m)

		if err != nil {
			return nil, err
		}

		if s == sentinelSymbol {
			break
		}

		out = append(out, byte(s))
	}

	this.notify(arcodec.NewEvent(arcodec.EvtDecompressionEnd, int64(len(out))))
	return out, nil
}

func (this *Decompressor) notify(evt *arcodec.Event) {
	notifyListeners(this.listeners, evt)
}

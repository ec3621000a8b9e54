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
	"github.com/arcodec/arcodec"
)

const (
	// HeaderSymbols is the number of byte values serialized in the
	// on-disk header. The end-of-stream sentinel at index 256 is never
	// serialized; it is always reconstructed with an implicit count of 1.
	HeaderSymbols = 256

	bitsPerCount = 32
)

// WriteHeader writes the 256 big-endian 32-bit counts for symbols 0..255
// to sink, MSB-first. m must have at least HeaderSymbols symbols.
func WriteHeader(sink arcodec.BitSink, m *Model) error {
	for s := 0; s < HeaderSymbols; s++ {
		c, err := m.Get(s)

		if err != nil {
			return err
		}

		if err := writeInt(sink, uint32(c)); err != nil {
			return err
		}
	}

	return nil
}

// ReadHeader reads the 256 big-endian 32-bit counts for symbols 0..255
// from source, MSB-first, appends an implicit sentinel count of 1 at
// index 256, and returns the resulting 257-symbol Model. Unlike the
// arithmetic coder's own bit reads, this path is strict: a short read
// fails with arcodec.ErrUnexpectedEnd rather than silently zero-filling.
func ReadHeader(source arcodec.BitSource) (*Model, error) {
	counts := make([]int, HeaderSymbols+1)

	for s := 0; s < HeaderSymbols; s++ {
		v, err := readInt(source)

		if err != nil {
			return nil, err
		}

		counts[s] = int(v)
	}

	counts[HeaderSymbols] = 1
	return NewModel(counts)
}

func writeInt(sink arcodec.BitSink, value uint32) error {
	for i := bitsPerCount - 1; i >= 0; i-- {
		if err := sink.WriteBit(int((value >> uint(i)) & 1)); err != nil {
			return err
		}
	}

	return nil
}

func readInt(source arcodec.BitSource) (uint32, error) {
	var result uint32

	for i := 0; i < bitsPerCount; i++ {
		bit, err := source.ReadBitOrFail()

		if err != nil {
			return 0, err
		}

		result = (result << 1) | uint32(bit)
	}

	return result, nil
}

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
	"testing"

	"github.com/arcodec/arcodec"
	"github.com/arcodec/arcodec/bitio"
	"github.com/arcodec/arcodec/internal"
)

func TestHeaderRoundTrip(t *testing.T) {
	m := NewModelFromHistogram([]byte("the quick brown fox jumps over the lazy dog"))

	buf := internal.NewBufferStream()
	sink, err := bitio.NewSink(buf)

	if err != nil {
		t.Fatalf("NewSink failed: %v", err)
	}

	if err := WriteHeader(sink, m); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}

	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// 256 counts * 32 bits = 8192 bits = 1024 bytes, the on-disk header size.
	if len(buf.Bytes()) != 1024 {
		t.Fatalf("expected 1024-byte header, got %d bytes", len(buf.Bytes()))
	}

	src, err := bitio.NewSource(internal.NewBufferStream(buf.Bytes()))

	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	got, err := ReadHeader(src)

	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}

	if got.SymbolCount() != 257 {
		t.Fatalf("expected 257 symbols, got %d", got.SymbolCount())
	}

	for s := 0; s < 257; s++ {
		want, _ := m.Get(s)
		have, _ := got.Get(s)

		if want != have {
			t.Fatalf("symbol %d: got count %d, want %d", s, have, want)
		}
	}
}

func TestReadHeaderFailsOnShortStream(t *testing.T) {
	src, err := bitio.NewSource(internal.NewBufferStream(make([]byte, 10)))

	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	if _, err := ReadHeader(src); err != arcodec.ErrUnexpectedEnd {
		t.Fatalf("expected ErrUnexpectedEnd, got %v", err)
	}
}

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
	"math/rand"
	"testing"

	"github.com/arcodec/arcodec"
	"github.com/arcodec/arcodec/internal"
)

func TestWriteBitRejectsInvalidValue(t *testing.T) {
	buf := internal.NewBufferStream()
	sink, err := NewSink(buf)

	if err != nil {
		t.Fatalf("NewSink failed: %v", err)
	}

	if err := sink.WriteBit(2); err != arcodec.ErrInvalidBitValue {
		t.Fatalf("expected ErrInvalidBitValue, got %v", err)
	}
}

func TestNewSinkRejectsNilStream(t *testing.T) {
	if _, err := NewSink(nil); err == nil {
		t.Fatal("expected error for nil stream")
	}

	if _, err := NewSource(nil); err == nil {
		t.Fatal("expected error for nil stream")
	}
}

func TestBitRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 7, 8, 9, 100, 8193} {
		bits := make([]int, n)

		for i := range bits {
			bits[i] = rng.Intn(2)
		}

		buf := internal.NewBufferStream()
		sink, err := NewSink(buf)

		if err != nil {
			t.Fatalf("NewSink failed: %v", err)
		}

		for _, b := range bits {
			if err := sink.WriteBit(b); err != nil {
				t.Fatalf("WriteBit failed: %v", err)
			}
		}

		if err := sink.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		src, err := NewSource(internal.NewBufferStream(buf.Bytes()))

		if err != nil {
			t.Fatalf("NewSource failed: %v", err)
		}

		for i, want := range bits {
			if got := src.ReadBitOrZero(); got != want {
				t.Fatalf("bit %d: got %d, want %d", i, got, want)
			}
		}

		// Trailing padding bits must read back as 0, never fail.
		for i := 0; i < 8; i++ {
			if got := src.ReadBitOrZero(); got != 0 {
				t.Fatalf("padding bit: got %d, want 0", got)
			}
		}
	}
}

func TestReadBitOrFailOnPhysicalEnd(t *testing.T) {
	src, err := NewSource(internal.NewBufferStream([]byte{0xFF}))

	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	for i := 0; i < 8; i++ {
		if _, err := src.ReadBitOrFail(); err != nil {
			t.Fatalf("bit %d: unexpected error %v", i, err)
		}
	}

	if _, err := src.ReadBitOrFail(); err != arcodec.ErrUnexpectedEnd {
		t.Fatalf("expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	buf := internal.NewBufferStream()
	sink, _ := NewSink(buf)

	if err := sink.WriteBit(1); err != nil {
		t.Fatalf("WriteBit failed: %v", err)
	}

	if err := sink.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}

	if err := sink.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	if len(buf.Bytes()) != 1 {
		t.Fatalf("expected 1 padded byte, got %d", len(buf.Bytes()))
	}

	if buf.Bytes()[0] != 0x80 {
		t.Fatalf("expected 0x80, got %#x", buf.Bytes()[0])
	}
}

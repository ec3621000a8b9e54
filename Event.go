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

import (
	"fmt"
	"time"
)

const (
	EvtCompressionStart   = 0 // Compression starts
	EvtHeaderWritten      = 1 // Frequency header has been written
	EvtCompressionEnd     = 2 // Compression ends
	EvtDecompressionStart = 3 // Decompression starts
	EvtHeaderRead         = 4 // Frequency header has been read
	EvtDecompressionEnd   = 5 // Decompression ends
)

// Event reports progress of a compression or decompression session.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEvent creates a new Event instance with a phase and a byte count.
func NewEvent(evtType int, size int64) *Event {
	return &Event{eventType: evtType, size: size, eventTime: time.Now()}
}

// NewEventFromString creates a new Event instance that wraps a message.
func NewEventFromString(evtType int, msg string) *Event {
	return &Event{eventType: evtType, eventTime: time.Now(), msg: msg}
}

// Type returns the event phase.
func (this *Event) Type() int {
	return this.eventType
}

// Time returns the time the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// Size returns the byte count carried by the event, if any.
func (this *Event) Size() int64 {
	return this.size
}

// String returns a human-readable representation of the event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EvtCompressionStart:
		t = "COMPRESSION_START"
	case EvtHeaderWritten:
		t = "HEADER_WRITTEN"
	case EvtCompressionEnd:
		t = "COMPRESSION_END"
	case EvtDecompressionStart:
		t = "DECOMPRESSION_START"
	case EvtHeaderRead:
		t = "HEADER_READ"
	case EvtDecompressionEnd:
		t = "DECOMPRESSION_END"
	}

	return fmt.Sprintf("{ \"type\": \"%s\", \"size\": %d, \"time\": %d }", t, this.size,
		this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by event processors.
type Listener interface {
	// ProcessEvent is called whenever the listener receives an event.
	ProcessEvent(evt *Event)
}

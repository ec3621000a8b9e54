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

// Checked wraps an arcodec.CodingModel and verifies, on every Low/High
// query, that the wrapped model's cumulative array is internally
// consistent: non-decreasing, and High(SymbolCount()-1) == Total(). It
// exists to let tests catch a broken model implementation at the point
// of use rather than as a garbled encoded stream several calls later.
type Checked struct {
	inner arcodec.CodingModel
}

// NewChecked wraps inner with consistency checks.
func NewChecked(inner arcodec.CodingModel) *Checked {
	return &Checked{inner: inner}
}

func (this *Checked) SymbolCount() int {
	return this.inner.SymbolCount()
}

func (this *Checked) Total() uint64 {
	return this.inner.Total()
}

func (this *Checked) Low(s int) uint64 {
	lo := this.inner.Low(s)
	hi := this.inner.High(s)

	if hi < lo {
		panic("freq: Checked model has High(s) < Low(s)")
	}

	if s == this.inner.SymbolCount()-1 && hi != this.inner.Total() {
		panic("freq: Checked model has High(lastSymbol) != Total()")
	}

	return lo
}

func (this *Checked) High(s int) uint64 {
	lo := this.inner.Low(s)
	hi := this.inner.High(s)

	if hi < lo {
		panic("freq: Checked model has High(s) < Low(s)")
	}

	if s == this.inner.SymbolCount()-1 && hi != this.inner.Total() {
		panic("freq: Checked model has High(lastSymbol) != Total()")
	}

	return hi
}

/*
Copyright 2011-2025 Frederic Langlet
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

package internal

// ComputeHistogram computes the order 0 histogram of block and adds the
// per-byte-value counts into freqs[0:256]; freqs must have length >= 256.
// Unrolled by 16 the way kanzi computes the histogram it feeds to its
// entropy codecs.
func ComputeHistogram(block []byte, freqs []int) {
	end16 := len(block) & -16

	for i := 0; i < end16; {
		d := block[i : i+16]
		freqs[d[0]]++
		freqs[d[1]]++
		freqs[d[2]]++
		freqs[d[3]]++
		freqs[d[4]]++
		freqs[d[5]]++
		freqs[d[6]]++
		freqs[d[7]]++
		freqs[d[8]]++
		freqs[d[9]]++
		freqs[d[10]]++
		freqs[d[11]]++
		freqs[d[12]]++
		freqs[d[13]]++
		freqs[d[14]]++
		freqs[d[15]]++
		i += 16
	}

	for i := end16; i < len(block); i++ {
		freqs[block[i]]++
	}
}

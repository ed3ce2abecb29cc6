/*
Copyright 2011-2022 Frederic Langlet
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

package transform

import (
	"math/rand"
	"testing"
)

func toIntAlphabet(src []byte) []int {
	data := make([]int, len(src))

	for i, b := range src {
		data[i] = int(b)
	}

	return data
}

func checkSuffixArrayInts(t *testing.T, data []int, sa []int) {
	t.Helper()
	n := len(data)
	seen := make([]bool, n)

	for _, v := range sa {
		if v < 0 || v >= n {
			t.Fatalf("suffix array entry %v out of range for n=%v", v, n)
		}

		if seen[v] {
			t.Fatalf("suffix array entry %v repeated", v)
		}

		seen[v] = true
	}

	for i := 0; i < n-1; i++ {
		a, b := sa[i], sa[i+1]

		for {
			if a >= n {
				break
			}

			if b >= n {
				t.Fatalf("suffixes at sa[%v] and sa[%v] are not strictly increasing", i, i+1)
			}

			if data[a] != data[b] {
				if data[a] > data[b] {
					t.Fatalf("suffixes at sa[%v]=%v and sa[%v]=%v are not strictly increasing", i, a, i+1, b)
				}

				break
			}

			a++
			b++
		}
	}
}

func TestSAISKnownStrings(t *testing.T) {
	cases := []string{"mississippi", "banana", "abracadabra", "a", "aaaaaaaaaa"}

	for _, s := range cases {
		data := toIntAlphabet([]byte(s))
		n := len(data)
		sa := make([]int, n)
		engine := NewSAIS()
		engine.ComputeSuffixArray(data, sa, 0, n, 256, false)
		checkSuffixArrayInts(t, data, sa)
	}
}

func TestSAISMatchesDivSufSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))

	for _, n := range []int{0, 1, 5, 200, 2000} {
		src := make([]byte, n)
		rnd.Read(src)

		data := toIntAlphabet(src)
		saFromSAIS := make([]int, n)
		NewSAIS().ComputeSuffixArray(data, saFromSAIS, 0, n, 256, false)

		saFromDSS := make([]int, n)
		algo, _ := NewDivSufSort()
		algo.ComputeSuffixArray(src, saFromDSS)

		if !equalInts(saFromSAIS, saFromDSS) {
			t.Fatalf("SA-IS and DivSufSort disagree for n=%v:\nSA-IS:      %v\nDivSufSort: %v", n, saFromSAIS, saFromDSS)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestSAISDirectBWT(t *testing.T) {
	src := []byte("banana")
	data := toIntAlphabet(src)
	n := len(data)
	// With fs >= k, SA-IS places its B bucket array in the free tail of sa
	// instead of allocating it; give it 256 free slots so that path runs.
	sa := make([]int, n+256)
	pIdx := NewSAIS().ComputeSuffixArray(data, sa, 256, n, 256, true)

	if int(pIdx) < 0 || int(pIdx) >= n {
		t.Fatalf("primary index %v out of range for n=%v", pIdx, n)
	}

	// By the definition of the primary index, the row it names always
	// carries the block's last symbol as its last column, regardless of
	// which suffix-sort backend produced it.
	got := make([]byte, n)

	for i := 0; i < n; i++ {
		if i == int(pIdx) {
			got[i] = src[n-1]
		} else {
			got[i] = byte(sa[i])
		}
	}

	var gotHisto, wantHisto [256]int

	for _, b := range got {
		gotHisto[b]++
	}

	for _, b := range src {
		wantHisto[b]++
	}

	if gotHisto != wantHisto {
		t.Fatalf("SA-IS direct BWT %q does not conserve the symbol histogram of %q", got, src)
	}
}

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

package transform

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

func TestBWT(b *testing.T) {
	if err := testCorrectnessBWT(testing.Verbose()); err != nil {
		b.Errorf(err.Error())
	}
}

func testCorrectnessBWT(verbose bool) error {
	if verbose {
		fmt.Println("Test BWT")
	}

	// Test behavior
	for ii := 1; ii <= 20; ii++ {
		if verbose {
			fmt.Printf("\nTest %v\n", ii)
		}

		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		var buf1 []byte

		if ii == 1 {
			buf1 = []byte("mississippi")
		} else if ii == 2 {
			buf1 = []byte("3.14159265358979323846264338327950288419716939937510")
		} else if ii == 3 {
			buf1 = []byte("SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES")
		} else if ii < 19 {
			buf1 = make([]byte, 128)

			for i := range buf1 {
				buf1[i] = byte(65 + rnd.Intn(4*ii))
			}
		} else if ii < 20 {
			buf1 = make([]byte, smallLargeThreshold/512)

			for i := range buf1 {
				buf1[i] = byte(i)
			}
		} else {
			buf1 = make([]byte, smallLargeThreshold/64)

			for i := range buf1 {
				buf1[i] = byte(i)
			}
		}

		buf2 := make([]byte, len(buf1))
		buf3 := make([]byte, len(buf1))
		tf, _ := NewBWT()

		str1 := string(buf1)

		if verbose && len(str1) < 512 {
			fmt.Printf("Input:   %s\n", str1)
		}

		pIdx, err1 := tf.Forward(buf1, buf2)

		if err1 != nil {
			return fmt.Errorf("error: %v", err1)
		}

		str2 := string(buf2)

		if verbose {
			if len(str2) < 512 {
				fmt.Printf("Encoded: %s\n", str2)
			}

			fmt.Printf("(Primary index=%v)\n", pIdx)
		}

		inv, _ := NewBWT()
		err2 := inv.Inverse(buf2, buf3, pIdx)

		if err2 != nil {
			return fmt.Errorf("error: %v", err2)
		}

		str3 := string(buf3)

		if verbose && len(str3) < 512 {
			fmt.Printf("Output:  %s\n", str3)
		}

		if str1 == str3 {
			if verbose {
				fmt.Println("Identical")
			}
		} else {
			idx := -1

			for i := range buf1 {
				if buf1[i] != buf3[i] {
					idx = i
					break
				}
			}

			return fmt.Errorf("different at index %v: %v <-> %v", idx, buf1[idx], buf3[idx])
		}
	}

	return nil
}

func TestBWTAllOneSymbol(t *testing.T) {
	buf1 := make([]byte, 4096)

	for i := range buf1 {
		buf1[i] = 0x41
	}

	buf2 := make([]byte, len(buf1))
	buf3 := make([]byte, len(buf1))

	tf, _ := NewBWT()
	pIdx, err := tf.Forward(buf1, buf2)

	if err != nil {
		t.Fatalf("forward failed: %v", err)
	}

	if pIdx != len(buf1)-1 {
		t.Errorf("expected primary index %v, got %v", len(buf1)-1, pIdx)
	}

	for i, v := range buf2 {
		if v != 0x41 {
			t.Fatalf("expected BWT output to equal input for a constant block, byte %v differs", i)
		}
	}

	inv, _ := NewBWT()

	if err := inv.Inverse(buf2, buf3, pIdx); err != nil {
		t.Fatalf("inverse failed: %v", err)
	}

	for i := range buf1 {
		if buf1[i] != buf3[i] {
			t.Fatalf("round trip failed at index %v", i)
		}
	}
}

func TestBWTInverseBlockSizeBoundary(t *testing.T) {
	sizes := []int{smallLargeThreshold - 1, smallLargeThreshold}

	for _, n := range sizes {
		rnd := rand.New(rand.NewSource(int64(n)))
		buf1 := make([]byte, n)
		rnd.Read(buf1)

		buf2 := make([]byte, n)
		buf3 := make([]byte, n)

		tf, _ := NewBWT()
		pIdx, err := tf.Forward(buf1, buf2)

		if err != nil {
			t.Fatalf("n=%v: forward failed: %v", n, err)
		}

		inv, _ := NewBWT()

		if err := inv.Inverse(buf2, buf3, pIdx); err != nil {
			t.Fatalf("n=%v: inverse failed: %v", n, err)
		}

		for i := range buf1 {
			if buf1[i] != buf3[i] {
				t.Fatalf("n=%v: round trip failed at index %v", n, i)
			}
		}
	}
}

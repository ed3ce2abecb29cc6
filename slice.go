/*
Copyright 2011-2017 Frederic Langlet
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

package bwt

import "fmt"

// ByteSlice is a bounds-checked, non-owning window (buf, base, len) over a
// byte buffer. It never copies or frees buf; it only ever describes a
// sub-range of it. A *ByteSlice passed to Forward or Inverse has its Base
// advanced by Len on success, the way a stream cursor would, so the same
// slice can be re-fed into a subsequent call against the tail of the same
// backing buffer.
type ByteSlice struct {
	Buf  []byte
	Base int
	Len  int
}

// NewByteSlice validates and returns a ByteSlice over buf[base : base+length].
func NewByteSlice(buf []byte, base, length int) (*ByteSlice, error) {
	if base < 0 || length < 0 || base+length > len(buf) {
		return nil, fmt.Errorf("%w: base=%d len=%d buf=%d", ErrBadSlice, base, length, len(buf))
	}

	return &ByteSlice{Buf: buf, Base: base, Len: length}, nil
}

// Window returns the slice's current (buf, base, len) view as a plain Go
// slice, suitable for handing to code that only needs the bytes, not the
// cursor.
func (s *ByteSlice) Window() []byte {
	return s.Buf[s.Base : s.Base+s.Len]
}

func (s *ByteSlice) advance() {
	s.Base += s.Len
}

// IntSlice is the int32 analogue of ByteSlice, used to expose a computed
// suffix array to callers without copying it into a plain slice first.
type IntSlice struct {
	Buf  []int32
	Base int
	Len  int
}

// NewIntSlice validates and returns an IntSlice over buf[base : base+length].
func NewIntSlice(buf []int32, base, length int) (*IntSlice, error) {
	if base < 0 || length < 0 || base+length > len(buf) {
		return nil, fmt.Errorf("%w: base=%d len=%d buf=%d", ErrBadSlice, base, length, len(buf))
	}

	return &IntSlice{Buf: buf, Base: base, Len: length}, nil
}

// Window returns the slice's current (buf, base, len) view as a plain Go
// slice.
func (s *IntSlice) Window() []int32 {
	return s.Buf[s.Base : s.Base+s.Len]
}

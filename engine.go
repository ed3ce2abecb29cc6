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

// Package bwt implements a single-threaded Burrows-Wheeler transform core:
// forward and inverse block permutation backed by a DivSufSort suffix
// sorter, plus a standalone SA-IS suffix-array/BWT builder for callers who
// want the induced-sorting alternative. The public surface is BwtEngine;
// everything else lives in the transform subpackage.
package bwt

import (
	"fmt"

	"github.com/go-compress/bwt/transform"
)

// MaxBlockSize is the largest block a BwtEngine will transform in one call.
const MaxBlockSize = transform.MaxBlockSize

// PrimaryIndex identifies the row of the conceptual sorted rotation matrix
// whose contents equal the untransformed block. It is always in [0, n) for
// a block of length n.
type PrimaryIndex int32

// BwtEngine is the public entry point: forward transform, inverse
// transform, an optional suffix-array accessor, and a reset. One engine
// owns one set of scratch buffers (the suffix-sort workspace and the
// inverse rank tables); it is not safe for concurrent use, but independent
// engines never interfere with each other.
type BwtEngine struct {
	codec  *transform.BWT
	saAlgo *transform.DivSufSort
	saOut  []int32
}

// New returns a ready-to-use engine with empty, lazily-grown scratch.
func New() *BwtEngine {
	return &BwtEngine{}
}

// aliased reports whether two ByteSlices share the same backing buffer,
// per the spec's definition of AliasedBuffers — it compares the buffers
// themselves, not their windows, so two non-overlapping windows into the
// same array still count as aliased.
func aliased(a, b *ByteSlice) bool {
	if len(a.Buf) == 0 || len(b.Buf) == 0 {
		return false
	}

	return &a.Buf[0] == &b.Buf[0]
}

func (e *BwtEngine) validate(src, dst *ByteSlice) error {
	if src.Len != dst.Len {
		return fmt.Errorf("%w: src.len=%d dst.len=%d", ErrBadSlice, src.Len, dst.Len)
	}

	if src.Len > MaxBlockSize {
		return fmt.Errorf("%w: n=%d max=%d", ErrBlockTooLarge, src.Len, MaxBlockSize)
	}

	if aliased(src, dst) {
		return fmt.Errorf("%w", ErrAliasedBuffers)
	}

	return nil
}

// Forward computes the Burrows-Wheeler permutation of src into dst and
// returns the primary index. On success src.Base and dst.Base are each
// advanced by src.Len.
func (e *BwtEngine) Forward(src, dst *ByteSlice) (PrimaryIndex, error) {
	if err := e.validate(src, dst); err != nil {
		return 0, err
	}

	if e.codec == nil {
		codec, err := transform.NewBWT()

		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		e.codec = codec
	}

	p, err := e.codec.Forward(src.Window(), dst.Window())

	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	n := src.Len
	src.advance()
	dst.advance()

	if n == 0 {
		return 0, nil
	}

	return PrimaryIndex(p), nil
}

// Inverse reconstructs src's preimage into dst given the primary index
// Forward returned for it. On success src.Base and dst.Base are each
// advanced by src.Len.
func (e *BwtEngine) Inverse(src, dst *ByteSlice, p PrimaryIndex) error {
	if err := e.validate(src, dst); err != nil {
		return err
	}

	if src.Len > 0 && (p < 0 || int(p) >= src.Len) {
		return fmt.Errorf("%w: p=%d n=%d", ErrBadPrimaryIndex, p, src.Len)
	}

	if e.codec == nil {
		codec, err := transform.NewBWT()

		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		e.codec = codec
	}

	if err := e.codec.Inverse(src.Window(), dst.Window(), int(p)); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	src.advance()
	dst.advance()
	return nil
}

// ComputeSuffixArray returns the suffix array of src as an int32 slice,
// without producing a BWT permutation. It does not advance src.Base: unlike
// Forward and Inverse it is a pure accessor, not a stream-consuming
// operation.
func (e *BwtEngine) ComputeSuffixArray(src *ByteSlice) ([]int32, error) {
	if src.Len > MaxBlockSize {
		return nil, fmt.Errorf("%w: n=%d max=%d", ErrBlockTooLarge, src.Len, MaxBlockSize)
	}

	if src.Len == 0 {
		return nil, nil
	}

	if e.saAlgo == nil {
		algo, err := transform.NewDivSufSort()

		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		e.saAlgo = algo
	}

	window := src.Window()
	sa := make([]int, src.Len)
	e.saAlgo.ComputeSuffixArray(window, sa)

	if len(e.saOut) < src.Len {
		e.saOut = make([]int32, src.Len)
	}

	for i, v := range sa {
		e.saOut[i] = int32(v)
	}

	out, err := NewIntSlice(e.saOut, 0, src.Len)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return out.Window(), nil
}

// Reset clears the engine's scratch stacks and bucket histograms without
// releasing any buffer's backing capacity. Calling it twice in a row leaves
// the engine in the same state as calling it once.
func (e *BwtEngine) Reset() {
	if e.codec != nil {
		e.codec.Reset()
	}

	if e.saAlgo != nil {
		e.saAlgo.Reset()
	}
}

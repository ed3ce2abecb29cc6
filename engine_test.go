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

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, input []byte) (encoded []byte, primary PrimaryIndex) {
	t.Helper()

	src, err := NewByteSlice(input, 0, len(input))
	require.NoError(t, err)

	dst, err := NewByteSlice(make([]byte, len(input)), 0, len(input))
	require.NoError(t, err)

	engine := New()
	primary, err = engine.Forward(src, dst)
	require.NoError(t, err)

	return append([]byte(nil), dst.Buf...), primary
}

func TestForwardBanana(t *testing.T) {
	encoded, primary := roundTrip(t, []byte("banana"))
	assert.Equal(t, "nnbaaa", string(encoded))
	assert.Equal(t, PrimaryIndex(3), primary)

	original := make([]byte, len(encoded))
	src, err := NewByteSlice(encoded, 0, len(encoded))
	require.NoError(t, err)
	dst, err := NewByteSlice(original, 0, len(original))
	require.NoError(t, err)

	engine := New()
	require.NoError(t, engine.Inverse(src, dst, primary))
	assert.Equal(t, "banana", string(original))
}

func TestForwardMississippi(t *testing.T) {
	input := []byte("mississippi")

	src, err := NewByteSlice(input, 0, len(input))
	require.NoError(t, err)

	engine := New()
	sa, err := engine.ComputeSuffixArray(src)
	require.NoError(t, err)

	want := []int32{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}

	if diff := cmp.Diff(want, sa); diff != "" {
		t.Errorf("suffix array mismatch (-want +got):\n%s", diff)
	}

	encoded, primary := roundTrip(t, input)
	assert.Equal(t, "pssmipissii", string(encoded))
	assert.Equal(t, PrimaryIndex(4), primary)
}

func TestForwardAbracadabra(t *testing.T) {
	encoded, primary := roundTrip(t, []byte("abracadabra"))
	assert.Equal(t, "rdarcaaaabb", string(encoded))
	assert.Equal(t, PrimaryIndex(2), primary)
}

func TestForwardAllZeroBytes(t *testing.T) {
	input := make([]byte, 256)
	encoded, primary := roundTrip(t, input)
	assert.Equal(t, input, encoded)
	assert.Equal(t, PrimaryIndex(255), primary)
}

func TestForwardInverseRandom1MiB(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	input := make([]byte, 1<<20)
	rnd.Read(input)

	encoded, primary := roundTrip(t, input)

	decoded := make([]byte, len(encoded))
	src, err := NewByteSlice(encoded, 0, len(encoded))
	require.NoError(t, err)
	dst, err := NewByteSlice(decoded, 0, len(decoded))
	require.NoError(t, err)

	engine := New()
	require.NoError(t, engine.Inverse(src, dst, primary))
	assert.Equal(t, input, decoded)
}

func TestForwardInverseDelimiters(t *testing.T) {
	input := []byte("^BANANA|")
	encoded, primary := roundTrip(t, input)
	assert.True(t, primary >= 0 && int(primary) < len(input))

	decoded := make([]byte, len(encoded))
	src, err := NewByteSlice(encoded, 0, len(encoded))
	require.NoError(t, err)
	dst, err := NewByteSlice(decoded, 0, len(decoded))
	require.NoError(t, err)

	engine := New()
	require.NoError(t, engine.Inverse(src, dst, primary))
	assert.Equal(t, input, decoded)
}

func TestEmptyAndSingleByteBlocks(t *testing.T) {
	engine := New()

	src, err := NewByteSlice(nil, 0, 0)
	require.NoError(t, err)
	dst, err := NewByteSlice(nil, 0, 0)
	require.NoError(t, err)
	primary, err := engine.Forward(src, dst)
	require.NoError(t, err)
	assert.Equal(t, PrimaryIndex(0), primary)

	single := []byte{0x7A}
	out := make([]byte, 1)
	src, err = NewByteSlice(single, 0, 1)
	require.NoError(t, err)
	dst, err = NewByteSlice(out, 0, 1)
	require.NoError(t, err)
	primary, err = engine.Forward(src, dst)
	require.NoError(t, err)
	assert.Equal(t, PrimaryIndex(0), primary)
	assert.Equal(t, single, out)
}

func TestAliasedBuffersRejected(t *testing.T) {
	buf := make([]byte, 8)
	src, err := NewByteSlice(buf, 0, 4)
	require.NoError(t, err)
	dst, err := NewByteSlice(buf, 4, 4)
	require.NoError(t, err)

	// Slices over the same backing array still alias even when their
	// windows don't overlap: the comparison is on the buffer, not the
	// window, matching the spec's "same backing buffer" definition.
	engine := New()
	_, err = engine.Forward(src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAliasedBuffers))
}

func TestBadPrimaryIndexRejected(t *testing.T) {
	input := []byte("hello world")
	encoded := make([]byte, len(input))
	src, err := NewByteSlice(input, 0, len(input))
	require.NoError(t, err)
	dst, err := NewByteSlice(encoded, 0, len(encoded))
	require.NoError(t, err)

	engine := New()
	_, err = engine.Forward(src, dst)
	require.NoError(t, err)

	decoded := make([]byte, len(input))
	src2, err := NewByteSlice(encoded, 0, len(encoded))
	require.NoError(t, err)
	dst2, err := NewByteSlice(decoded, 0, len(decoded))
	require.NoError(t, err)

	err = engine.Inverse(src2, dst2, PrimaryIndex(len(input)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadPrimaryIndex))
}

func TestBlockTooLargeRejected(t *testing.T) {
	src := &ByteSlice{Buf: make([]byte, 0), Base: 0, Len: MaxBlockSize + 1}
	dst := &ByteSlice{Buf: make([]byte, 0), Base: 0, Len: MaxBlockSize + 1}

	engine := New()
	_, err := engine.Forward(src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlockTooLarge))
}

func TestResetIsIdempotent(t *testing.T) {
	engine := New()
	input := []byte("a quick brown fox jumps over the lazy dog")
	dst := make([]byte, len(input))
	src, err := NewByteSlice(input, 0, len(input))
	require.NoError(t, err)
	dstSlice, err := NewByteSlice(dst, 0, len(dst))
	require.NoError(t, err)
	_, err = engine.Forward(src, dstSlice)
	require.NoError(t, err)

	engine.Reset()
	engine.Reset()

	// A reset engine must still be usable for a fresh call.
	src2, err := NewByteSlice(input, 0, len(input))
	require.NoError(t, err)
	dst2, err := NewByteSlice(make([]byte, len(input)), 0, len(input))
	require.NoError(t, err)
	_, err = engine.Forward(src2, dst2)
	require.NoError(t, err)
}

func TestByteSliceAdvancesBaseOnSuccess(t *testing.T) {
	input := []byte("banana")
	src, err := NewByteSlice(input, 0, len(input))
	require.NoError(t, err)
	dst, err := NewByteSlice(make([]byte, len(input)), 0, len(input))
	require.NoError(t, err)

	engine := New()
	_, err = engine.Forward(src, dst)
	require.NoError(t, err)

	assert.Equal(t, len(input), src.Base)
	assert.Equal(t, len(input), dst.Base)
}

func TestNewByteSliceRejectsBadBounds(t *testing.T) {
	buf := make([]byte, 4)
	_, err := NewByteSlice(buf, -1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadSlice))

	_, err = NewByteSlice(buf, 2, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadSlice))
}

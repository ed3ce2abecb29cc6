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

import "errors"

// Sentinel errors identifying the five ways a call into the engine can
// fail. Callers distinguish them with errors.Is; every error the package
// returns wraps exactly one of these.
var (
	// ErrBadSlice means a source or destination slice is malformed: a
	// negative base or length, or a window that runs past the backing
	// buffer.
	ErrBadSlice = errors.New("bwt: malformed slice")

	// ErrAliasedBuffers means the source and destination slices share
	// the same backing buffer. Forward and inverse both require
	// independent buffers since they write dst while still reading src.
	ErrAliasedBuffers = errors.New("bwt: source and destination buffers alias")

	// ErrBlockTooLarge means the block length exceeds MaxBlockSize.
	ErrBlockTooLarge = errors.New("bwt: block exceeds maximum size")

	// ErrBadPrimaryIndex means inverse was given a primary index outside
	// [0, n).
	ErrBadPrimaryIndex = errors.New("bwt: primary index out of range")

	// ErrInternal means a logic invariant inside the suffix sorter was
	// violated. This should never happen on valid input; seeing it means
	// the sorter has a bug, not that the caller did anything wrong.
	ErrInternal = errors.New("bwt: internal invariant violated")
)

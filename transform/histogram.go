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

package transform

// cumulate turns a per-symbol occurrence count into a cumulative bucket
// table in place: buckets[i] becomes the sum of all counts strictly below i.
// The inverse BWT rank walk builds buckets by counting symbol occurrences
// while it scans the block (the running count doubles as each symbol's rank
// so far), then calls cumulate once to turn those totals into the starting
// offset of each symbol's run in the first BWT column.
func cumulate(buckets *[256]uint32) {
	sum := uint32(0)

	for i, b := range buckets {
		buckets[i] = sum
		sum += b
	}
}

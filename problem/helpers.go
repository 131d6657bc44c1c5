/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package problem

import (
	"sort"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/problem/internal/segmenttrie"
)

// freezeEntries makes an immutable copy of the mapping table. Used when
// finalizing the mapper so later mutations to the builder cannot affect the
// snapshot.
func freezeEntries(src map[apis.Kind]entry) map[apis.Kind]entry {
	dst := make(map[apis.Kind]entry, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeTries makes a shallow copy of the per-kind refinement tries. Each
// trie is considered immutable after build, so only the top-level map needs
// protection.
func freezeTries(src map[apis.Kind]*segmenttrie.Trie[string]) map[apis.Kind]*segmenttrie.Trie[string] {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[apis.Kind]*segmenttrie.Trie[string], len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// sortedViolations copies the violation list and orders it by field, then
// code. Stages report violations first-detected-first; the wire document
// re-sorts them so clients see a stable order independent of stage
// declaration order. The sort is stable, so two violations on the same
// field with the same code keep their detection order.
func sortedViolations(src []apis.Violation) []apis.Violation {
	if len(src) == 0 {
		return nil
	}
	vs := make([]apis.Violation, len(src))
	copy(vs, src)
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].Field != vs[j].Field {
			return vs[i].Field < vs[j].Field
		}
		return vs[i].Code < vs[j].Code
	})
	return vs
}

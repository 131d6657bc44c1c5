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

import "dirpx.dev/dresult/apis"

// reasonRule is one raw type-refinement rule: a dot-separated reason prefix
// (may contain "*") and the slug to use when it matches. Rules are
// normalized and compiled into a per-kind segment trie in New.
type reasonRule struct {
	prefix string
	slug   string
}

type builder struct {
	// typeBase is the URI prefix for every type slug.
	typeBase string

	// entries holds the mapping table rows, seeded from defaultEntries and
	// adjusted by options.
	entries map[apis.Kind]entry

	// reasonRules holds per-kind type refinements, compiled into tries in
	// New. Refinements change only the slug; the status of the kind's row
	// always applies.
	reasonRules map[apis.Kind][]reasonRule
}

// newBuilder creates an empty builder with maps pre-sized to the built-in
// table.
func newBuilder() *builder {
	return &builder{
		typeBase: DefaultTypeBase,
		entries:  make(map[apis.Kind]entry, len(defaultEntries)),
		// refinements are usually few
		reasonRules: make(map[apis.Kind][]reasonRule),
	}
}

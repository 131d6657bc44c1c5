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

// Package segmenttrie implements a segment-aware prefix index for
// dot-separated reason codes. It backs the per-kind type-refinement rules of
// the problem mapper: the deepest registered prefix wins, and "*" matches
// exactly one segment.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys. Each node
// represents one segment. Lookups are longest-prefix-match with segment
// boundaries, so "auth.j" never matches a rule for "auth.jwt".
//
// A Trie is built once and then read concurrently; Insert must not be called
// after the owning mapper is frozen.
type Trie[T any] struct {
	// children holds the next segments, including "*" for the one-segment
	// wildcard branch.
	children map[string]*Trie[T]
	// terminal marks that a rule ends at this node.
	terminal bool
	val      T
	// pattern is the rule as it was inserted (dots and '*' preserved), kept
	// so diagnostics can report which rule matched without rebuilding
	// strings on the lookup path. Set only when terminal.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of
// wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix to the trie and associates it with val.
//
// Examples:
//
//	"policy.rbac"
//	"tenant.isolation"
//	"policy.*.scope"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected, because it would catch everything.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, seg := range segs {
		if !validSegment(seg) {
			return ErrInvalidPrefix
		}
		if seg != "*" {
			concrete = true
		}
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := t
	for _, seg := range segs {
		child, ok := cur.children[seg]
		if !ok {
			child = New[T]()
			cur.children[seg] = child
		}
		cur = child
	}
	cur.terminal = true
	cur.val = val
	if cur.pattern == "" {
		cur.pattern = prefix
	}
	return nil
}

// Lookup finds the deepest registered prefix matching the dot-separated key
// and returns its value together with the rule pattern that matched. Both
// exact segments and "*" wildcard branches are explored; at equal depth the
// exact branch wins because it is visited first.
//
// The traversal slices the key in place — no allocation on the lookup path.
func (t *Trie[T]) Lookup(key string) (val T, pattern string, ok bool) {
	var zero T
	if t == nil {
		return zero, "", false
	}

	bestDepth := -1
	var bestVal T
	var bestPat string

	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.terminal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(key) {
			return
		}

		// Scan the next segment, validating [a-z][a-z0-9_]* as we go; an
		// invalid key simply stops matching along this path.
		i := off
		if key[i] < 'a' || key[i] > 'z' {
			return
		}
		i++
		for i < len(key) && key[i] != '.' {
			c := key[i]
			if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
				return
			}
			i++
		}
		seg := key[off:i]
		next := i
		if next < len(key) && key[next] == '.' {
			next++
		}

		if child, found := n.children[seg]; found {
			walk(child, next, depth+1)
		}
		if child, found := n.children["*"]; found {
			walk(child, next, depth+1)
		}
	}

	walk(t, 0, 0)
	if bestDepth < 0 {
		return zero, "", false
	}
	return bestVal, bestPat, true
}

// validSegment reports whether seg is a valid trie segment: "*", or
// [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

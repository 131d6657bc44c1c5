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
	"fmt"
	"strings"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/problem/internal/segmenttrie"
	"dirpx.dev/dresult/reasoncode"
)

// internalDetail is the only detail ever written for an internal fault.
// The captured error stays in the Failure for logging; it must never reach
// the wire through this package.
const internalDetail = "An internal error occurred."

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with the built-in mapping table.
//  2. Apply user-provided options (base URI, titles, rebinds, refinements).
//  3. Verify the table is total over every wire-visible kind and that no
//     rebind changed a status while keeping the default slug.
//  4. Build per-kind segment tries for reason-prefix type refinement.
//  5. Freeze all maps and tries into immutable copies.
//
// Errors returned from this function indicate an incomplete table, a
// contract-breaking rebind, or an invalid refinement rule. A kind the table
// cannot map is rejected here — mapping never falls through to a runtime
// default.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder; seed with the built-in table.
	b := newBuilder()
	for k, v := range defaultEntries {
		b.entries[k] = v
	}

	// (1) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (2) Normalize and validate the type base.
	base := strings.TrimSpace(b.typeBase)
	if base == "" {
		return nil, fmt.Errorf("problem: type base must not be empty")
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	// (3) Totality and versioning checks over the closed kind set.
	for _, k := range apis.Kinds() {
		e, ok := b.entries[k]
		if !k.Wire() {
			if ok {
				return nil, fmt.Errorf("problem: kind %q is never serialized and cannot be mapped", k)
			}
			continue
		}
		if !ok {
			return nil, fmt.Errorf("problem: no mapping for kind %q", k)
		}
		if e.slug == "" || e.title == "" {
			return nil, fmt.Errorf("problem: incomplete mapping for kind %q", k)
		}
		if e.status < 400 || e.status > 599 {
			return nil, fmt.Errorf("problem: kind %q mapped to non-error status %d", k, e.status)
		}
		def := defaultEntries[k]
		if e.rebound && e.status != def.status && e.slug == def.slug {
			return nil, fmt.Errorf(
				"problem: rebinding kind %q to status %d requires a new type slug (still %q)",
				k, e.status, e.slug)
		}
	}

	// (4) Compile per-kind refinement tries.
	tries := make(map[apis.Kind]*segmenttrie.Trie[string], len(b.reasonRules))
	for k, rules := range b.reasonRules {
		if !k.Wire() {
			return nil, fmt.Errorf("problem: refinement on non-serialized kind %q", k)
		}
		if len(rules) == 0 {
			continue
		}
		t := segmenttrie.New[string]()
		for _, r := range rules {
			if r.slug == "" {
				return nil, fmt.Errorf("problem: empty slug for refinement prefix %q on kind %q", r.prefix, k)
			}
			p := reasoncode.Normalize(r.prefix)
			if err := t.Insert(p, r.slug); err != nil {
				return nil, fmt.Errorf("problem: invalid refinement prefix %q for kind %q: %w", r.prefix, k, err)
			}
		}
		tries[k] = t
	}

	// (5) Freeze everything into a read-only snapshot.
	return &mapper{
		typeBase: base,
		entries:  freezeEntries(b.entries),
		tries:    freezeTries(tries),
	}, nil
}

// mapper is an immutable mapper implementation over a total kind table plus
// per-kind reason-prefix refinement tries. Lookups are map+trie reads only
// and safe for concurrent use once constructed.
type mapper struct {
	// typeBase is the URI prefix for every slug, always slash-terminated.
	typeBase string

	// entries is the frozen mapping table, total over wire-visible kinds.
	entries map[apis.Kind]entry

	// tries holds per-kind type refinements keyed by reason prefix.
	tries map[apis.Kind]*segmenttrie.Trie[string]
}

// Problem converts a failure into a wire-ready problem document.
//
// The type URI is resolved through the refinement trie first (deepest reason
// prefix wins) and falls back to the kind's table slug. Status and title
// always come from the table row — refinement never moves them.
//
// Violations are re-sorted by field-then-code so the wire order is stable
// regardless of the order stages reported them in.
func (m *mapper) Problem(f apis.Failure, instance string) apis.Problem {
	if !f.Kind.Wire() {
		panic(fmt.Sprintf("problem: kind %q is never serialized", f.Kind))
	}
	e := m.entries[f.Kind]

	p := apis.Problem{
		Type:     m.resolveType(f.Kind, f.Reason),
		Title:    e.title,
		Status:   e.status,
		Detail:   detailFor(f),
		Instance: instance,
	}

	switch f.Kind {
	case apis.KindValidationFailed:
		p.Violations = sortedViolations(f.Violations)
	case apis.KindConflict:
		if f.Conflict != (apis.ConflictDetail{}) {
			c := f.Conflict
			p.Conflict = &c
		}
	case apis.KindForbidden:
		p.Reason = f.Reason
	}
	return p
}

// Status resolves the HTTP status for the given kind. The reason cannot move
// the status — it only refines the type URI — so it is accepted for
// interface symmetry and ignored. Kinds with no wire mapping resolve to 0;
// the transport decides what to do with them.
func (m *mapper) Status(k apis.Kind, _ reasoncode.Code) int {
	if e, ok := m.entries[k]; ok {
		return e.status
	}
	return 0
}

// Explain produces a textual trace of how the mapper resolved the type URI
// and status for a particular (kind, reason) pair.
//
// This is primarily a diagnostic tool: it shows whether the type came from a
// refinement rule (and which pattern) or from the kind's table row, and
// whether the row is a library default or a rebind.
//
// Example output:
//
//	kind="forbidden" reason="policy.rbac.scope"
//	type: source=prefix pattern="policy.rbac" -> https://dirpx.dev/errors/forbidden-rbac
//	status: source=default -> 403
func (m *mapper) Explain(k apis.Kind, r reasoncode.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q reason=%q\n", k, r)

	e, ok := m.entries[k]
	if !ok {
		_, _ = fmt.Fprintln(&b, "type: source=none (kind is never serialized)")
		_, _ = fmt.Fprint(&b, "status: source=none")
		return b.String()
	}

	if t, found := m.tries[k]; found {
		if slug, pattern, hit := t.Lookup(string(r)); hit {
			_, _ = fmt.Fprintf(&b, "type: source=prefix pattern=%q -> %s\n", pattern, m.typeBase+slug)
			_, _ = fmt.Fprintf(&b, "status: source=%s -> %d", rowSource(e), e.status)
			return b.String()
		}
	}
	_, _ = fmt.Fprintf(&b, "type: source=%s -> %s\n", rowSource(e), m.typeBase+e.slug)
	_, _ = fmt.Fprintf(&b, "status: source=%s -> %d", rowSource(e), e.status)
	return b.String()
}

// resolveType returns the full type URI for a kind, refined by the reason
// when a prefix rule matches.
func (m *mapper) resolveType(k apis.Kind, r reasoncode.Code) string {
	if t, ok := m.tries[k]; ok && r != reasoncode.Empty {
		if slug, _, hit := t.Lookup(string(r)); hit {
			return m.typeBase + slug
		}
	}
	return m.typeBase + m.entries[k].slug
}

// detailFor picks the occurrence detail for a failure. Internal faults get
// the fixed sentence; everything else gets a short, safe description.
func detailFor(f apis.Failure) string {
	switch f.Kind {
	case apis.KindNotFound:
		if f.Ref.Kind != "" && f.Ref.ID != "" {
			return fmt.Sprintf("The %s %q does not exist.", f.Ref.Kind, f.Ref.ID)
		}
		return "The requested resource does not exist."
	case apis.KindValidationFailed:
		n := len(f.Violations)
		if n == 1 {
			return "The request failed 1 validation rule."
		}
		return fmt.Sprintf("The request failed %d validation rules.", n)
	case apis.KindConflict:
		return "The request conflicts with the current state of the resource."
	case apis.KindForbidden:
		return "The caller is not allowed to perform this operation."
	case apis.KindInternalFault:
		return internalDetail
	}
	return ""
}

// rowSource names the origin of a table row for Explain.
func rowSource(e entry) string {
	if e.rebound {
		return "mapping"
	}
	return "default"
}

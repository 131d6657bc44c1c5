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

// Package problem maps non-success outcome kinds to RFC 7807 problem
// documents with stable type URIs and statuses.
//
// # Overview
//
// Non-success outcomes are described by two parts:
//
//  1. a Kind from the closed outcome set (apis.KindNotFound, ...),
//  2. for refusals, an optional reason code ("policy.rbac.scope").
//
// Transport layers need to turn this pair into a wire document. Package
// problem does that in a way that is:
//
//   - total — every wire-visible kind has exactly one table row, checked at
//     construction; there is no runtime default branch;
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - versioned — rebinding a kind to a different status requires a new
//     type slug, so clients switching on the type URI never change meaning
//     under them;
//   - refinable — reason-prefix rules can narrow the type URI for specific
//     policy areas without moving the status.
//
// # Resolution model
//
// The type URI resolves in the following order:
//
//  1. per-kind longest-prefix-match on the reason (segment-aware, "*"
//     matches one segment);
//  2. the kind's table row slug.
//
// The status and title always come from the table row.
//
// # Building a mapper
//
// A Mapper is created once at startup and reused:
//
//	m, err := problem.New(
//	    problem.WithTypeBase("https://api.example.com/errors/"),
//	    problem.WithReasonType(apis.KindForbidden, "policy.rbac", "forbidden-rbac"),
//	)
//	if err != nil {
//	    // incomplete table, contract-breaking rebind, bad prefix
//	}
//
//	p := m.Problem(f, "/orders/42")
//	// p.Type == ".../errors/forbidden-rbac", p.Status == 403
//
// # Redaction
//
// Internal faults serialize with a fixed detail sentence. The captured error
// stays inside the Failure for logging; nothing this package produces ever
// contains fault text.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (kind, reason) pair
// was resolved, including which refinement pattern matched. It is intended
// for inspection and logging, not for stable machine parsing.
package problem

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

package apis

import "dirpx.dev/dresult/reasoncode"

// MediaType is the content type of a serialized Problem. It is distinct
// from the success media type on purpose: clients can dispatch on the
// content type alone, before parsing the body.
const MediaType = "application/problem+json"

// Problem is the RFC 7807 problem document — the only error shape this
// subsystem puts on the wire.
//
// The five core members (type, title, status, detail, instance) follow the
// RFC exactly. Everything else is an extension member:
//
//   - violations: structured list of failed rules (KindValidationFailed);
//   - conflict:   clashing-state description (KindConflict);
//   - reason:     policy refinement (KindForbidden).
//
// Invariants:
//
//   - Type and Status come from a fixed, versioned table — never derived
//     from message text. The same logical error always produces the same
//     type+status pair.
//   - Title is a static string per type. It is never interpolated.
//   - Detail for internal faults is a fixed sentence; the underlying error
//     text never appears in it.
type Problem struct {
	// Type is a stable URI identifying the problem class, e.g.
	// "https://dirpx.dev/errors/not-found". Clients switch on this value.
	Type string `json:"type"`

	// Title is the static, human-readable summary for Type.
	Title string `json:"title"`

	// Status is the HTTP status code, identical to the transport status the
	// document is written with.
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail"`

	// Instance is a URI identifying the specific request or resource this
	// occurrence is about.
	Instance string `json:"instance"`

	// Violations lists failed rules, sorted by field then code. Extension
	// member; present only for validation failures.
	Violations []Violation `json:"violations,omitempty"`

	// Conflict describes the clashing state. Extension member; present only
	// for conflicts.
	Conflict *ConflictDetail `json:"conflict,omitempty"`

	// Reason is the policy refinement. Extension member; present only for
	// forbidden outcomes that carry one.
	Reason reasoncode.Code `json:"reason,omitempty"`
}

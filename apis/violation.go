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

import "dirpx.dev/dresult/fieldcode"

// Violation describes a single failed rule on a single field. This is a
// *view type* — small, transport-friendly, and suitable for JSON or proto
// serialization.
//
// Violations are ordered: validation pipelines report them
// first-detected-first, and that insertion order is preserved inside an
// outcome. Problem mappers re-sort them by field-then-code when embedding
// them into a wire document, so the wire order is stable regardless of stage
// declaration order.
type Violation struct {
	// Field carries the logical path to the failing field, e.g.
	// "metadata.name" or "spec.replicas". Violations about the request as a
	// whole may leave it empty.
	Field string `json:"field,omitempty"`

	// Code is the stable machine code naming the violated rule, e.g.
	// fieldcode.Required or fieldcode.Duplicate. Clients switch on this
	// value; it MUST be a normalized fieldcode.Code.
	Code fieldcode.Code `json:"code"`

	// Message is a human-friendly explanation. It is advisory only — no
	// client behavior may depend on its phrasing.
	Message string `json:"message,omitempty"`
}

// ResourceRef identifies the entity an outcome is about, e.g. the target of
// a failed lookup. Both fields are plain strings so the reference survives
// JSON round-trips without schema knowledge.
type ResourceRef struct {
	// Kind is the logical resource type, e.g. "user" or "deployment".
	Kind string `json:"kind,omitempty"`

	// ID is the identifier the caller used, e.g. a UUID or a name.
	ID string `json:"id,omitempty"`
}

// ConflictDetail describes a domain-state conflict: which resource clashed
// and, when known, which state the caller assumed versus what the server
// holds. All fields are optional.
type ConflictDetail struct {
	// Resource is the entity the conflict is about.
	Resource ResourceRef `json:"resource,omitempty"`

	// Expected is the state/version the caller assumed.
	Expected string `json:"expected,omitempty"`

	// Actual is the state/version the server currently holds.
	Actual string `json:"actual,omitempty"`
}

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

import (
	"fmt"

	"dirpx.dev/dresult/reasoncode"
)

// Failure is a non-generic snapshot of a non-success outcome.
//
// The generic Outcome type cannot cross interface boundaries without its
// type parameter, so transport adapters (HTTP writers, gRPC interceptors)
// and the problem mapper all consume this flat view instead. Exactly one of
// the payload fields is meaningful, selected by Kind — the same
// tag-and-payload discipline as the outcome itself.
//
// Failure implements error so that gRPC handlers can return it through the
// ordinary error channel and let an interceptor convert it at the boundary.
type Failure struct {
	// Kind is the outcome variant. Never KindSuccess.
	Kind Kind `json:"kind"`

	// Ref identifies the missing resource. Populated for KindNotFound.
	Ref ResourceRef `json:"ref,omitempty"`

	// Violations is the ordered list of failed rules. Populated for
	// KindValidationFailed.
	Violations []Violation `json:"violations,omitempty"`

	// Conflict describes the clashing state. Populated for KindConflict.
	Conflict ConflictDetail `json:"conflict,omitempty"`

	// Reason optionally refines KindForbidden.
	Reason reasoncode.Code `json:"reason,omitempty"`

	// Fault is the captured internal error for KindInternalFault. It is for
	// logs only and is never serialized — note the json tag.
	Fault error `json:"-"`
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>
//
// or, when a reason is present:
//
//	<kind>:<reason>
//
// The fault text is intentionally absent: a Failure that reaches a log line
// or a transport boundary must stay safe to expose. Callers that need the
// fault for diagnostics unwrap it explicitly.
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Reason != "" {
		return fmt.Sprintf("%s:%s", f.Kind, f.Reason)
	}
	return f.Kind.String()
}

// Unwrap returns the captured fault, enabling errors.Is / errors.As chains
// for KindInternalFault failures. For all other kinds it returns nil.
func (f *Failure) Unwrap() error { return f.Fault }

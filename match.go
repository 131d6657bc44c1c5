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

package dresult

import (
	"fmt"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/reasoncode"
)

// Cases is the visitor for Match. One function per outcome variant; the
// function for the variant actually populated receives its payload.
//
// All seven cases are required. Go cannot enforce that at compile time, so
// the contract is test-enforced instead: Match panics when it reaches a nil
// case, and Complete lets startup code (and tests) prove totality before any
// request runs. A call site that genuinely cannot receive a variant should
// still provide the case and panic or log inside it, with a comment saying
// why the variant is unreachable — an absent case reads as an oversight.
type Cases[T, R any] struct {
	// Success receives the payload of a success outcome.
	Success func(v T) R

	// NotFound receives the reference of the missing entity.
	NotFound func(ref apis.ResourceRef) R

	// ValidationFailed receives the ordered violation list (a copy; safe to
	// retain or mutate).
	ValidationFailed func(violations []apis.Violation) R

	// Conflict receives the conflict description.
	Conflict func(d apis.ConflictDetail) R

	// Forbidden receives the optional policy reason.
	Forbidden func(r reasoncode.Code) R

	// InternalFault receives the captured fault. The fault is for logs
	// only; it must not be echoed to clients.
	InternalFault func(err error) R

	// Canceled receives no payload. Transports translate this case per
	// their own policy; it is never a client-visible business error.
	Canceled func() R
}

// Complete reports whether every case is set. Call it from init paths or a
// test when the Cases value is built dynamically; Match performs the same
// check lazily for the one variant it dispatches.
func (c Cases[T, R]) Complete() error {
	missing := ""
	switch {
	case c.Success == nil:
		missing = "Success"
	case c.NotFound == nil:
		missing = "NotFound"
	case c.ValidationFailed == nil:
		missing = "ValidationFailed"
	case c.Conflict == nil:
		missing = "Conflict"
	case c.Forbidden == nil:
		missing = "Forbidden"
	case c.InternalFault == nil:
		missing = "InternalFault"
	case c.Canceled == nil:
		missing = "Canceled"
	}
	if missing != "" {
		return fmt.Errorf("dresult: Cases missing %s handler", missing)
	}
	return nil
}

// Match dispatches the outcome to the case matching its populated variant
// and returns that case's result.
//
// Match panics when the required case is nil. This is the test-time
// exhaustiveness check: any test that drives a call site through a variant
// with a missing case fails loudly, naming the variant.
func Match[T, R any](o Outcome[T], c Cases[T, R]) R {
	switch o.kind {
	case apis.KindSuccess:
		if c.Success == nil {
			panic("dresult: Match without Success case")
		}
		return c.Success(o.value)
	case apis.KindNotFound:
		if c.NotFound == nil {
			panic("dresult: Match without NotFound case")
		}
		return c.NotFound(o.ref)
	case apis.KindValidationFailed:
		if c.ValidationFailed == nil {
			panic("dresult: Match without ValidationFailed case")
		}
		return c.ValidationFailed(o.Violations())
	case apis.KindConflict:
		if c.Conflict == nil {
			panic("dresult: Match without Conflict case")
		}
		return c.Conflict(o.conflict)
	case apis.KindForbidden:
		if c.Forbidden == nil {
			panic("dresult: Match without Forbidden case")
		}
		return c.Forbidden(o.reason)
	case apis.KindInternalFault:
		if c.InternalFault == nil {
			panic("dresult: Match without InternalFault case")
		}
		return c.InternalFault(o.fault)
	case apis.KindCanceled:
		if c.Canceled == nil {
			panic("dresult: Match without Canceled case")
		}
		return c.Canceled()
	}
	// Unreachable while the kind set stays closed; if a new kind is added
	// without a case above, fail construction-style rather than defaulting.
	panic(fmt.Sprintf("dresult: Match on unknown kind %d", o.kind))
}

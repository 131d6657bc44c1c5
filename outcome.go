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

// Package dresult is the canonical multi-outcome result model for dirpx.
//
// An operation does not return (value, error); it returns an Outcome — one
// member of a closed set of mutually exclusive variants (success, not-found,
// validation-failed, conflict, forbidden, plus the internal fault and
// canceled states). Call sites handle outcomes with Match, which forces a
// case per variant instead of a two-state ok/error check.
//
// Outcomes are created per request, immutable, and discarded after the
// response is emitted. Transport adapters (dresult/httpx, dresult/grpcx)
// serialize non-success outcomes through a problem mapper
// (dresult/problem); success payloads pass through unchanged.
package dresult

import (
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/reasoncode"
)

// Unit is the payload type for outcomes that carry no value, such as the
// result of running a validation pipeline.
type Unit struct{}

// Outcome is a closed tagged union over the result variants of one
// operation.
//
// Invariants:
//
//   - exactly one variant is populated at a time; the kind tag and the
//     payload are never inconsistent;
//   - values are immutable after construction — slices are defensively
//     copied on the way in and on the way out;
//   - the zero value is a success carrying T's zero value; prefer the
//     explicit constructors.
type Outcome[T any] struct {
	kind       apis.Kind
	value      T
	ref        apis.ResourceRef
	violations []apis.Violation
	conflict   apis.ConflictDetail
	reason     reasoncode.Code
	fault      error
}

// OK returns a success outcome carrying v.
func OK[T any](v T) Outcome[T] {
	return Outcome[T]{kind: apis.KindSuccess, value: v}
}

// NotFound returns an outcome reporting that the entity identified by ref
// does not exist (or is not visible to the caller).
func NotFound[T any](ref apis.ResourceRef) Outcome[T] {
	return Outcome[T]{kind: apis.KindNotFound, ref: ref}
}

// Invalid returns a validation-failed outcome carrying the given violations
// in the given order (first-detected-first).
//
// At least one violation is required: a validation failure without a single
// failed rule is a programmer error, so Invalid panics on an empty list
// rather than manufacturing an unexplainable refusal.
func Invalid[T any](violations ...apis.Violation) Outcome[T] {
	if len(violations) == 0 {
		panic("dresult: Invalid requires at least one violation")
	}
	vs := make([]apis.Violation, len(violations))
	copy(vs, violations)
	return Outcome[T]{kind: apis.KindValidationFailed, violations: vs}
}

// ConflictWith returns an outcome reporting a domain-state conflict.
func ConflictWith[T any](d apis.ConflictDetail) Outcome[T] {
	return Outcome[T]{kind: apis.KindConflict, conflict: d}
}

// Forbidden returns an outcome reporting that the caller may not perform
// the operation. The reason is optional (reasoncode.Empty) and, when
// present, refines the refusal for clients and problem mappers.
func Forbidden[T any](r reasoncode.Code) Outcome[T] {
	return Outcome[T]{kind: apis.KindForbidden, reason: r}
}

// Faulted returns an internal-fault outcome wrapping err.
//
// The fault is carried for logging and errors.Is/As inspection only; it
// never reaches a client. A nil err is still a fault — the pipeline uses
// Faulted for stages that misbehave in ways that may not produce an error
// value.
func Faulted[T any](err error) Outcome[T] {
	return Outcome[T]{kind: apis.KindInternalFault, fault: err}
}

// Canceled returns the internal-only terminal outcome for an operation the
// caller abandoned. It is never serialized as a business error.
func Canceled[T any]() Outcome[T] {
	return Outcome[T]{kind: apis.KindCanceled}
}

// Kind returns the populated variant's tag.
func (o Outcome[T]) Kind() apis.Kind { return o.kind }

// Value returns the success payload. The second result reports whether the
// outcome actually is a success; when it is false the payload is T's zero
// value and must not be used.
//
// Value is a convenience accessor, not a substitute for Match: branching on
// the boolean alone collapses the outcome set back to two states and loses
// the distinction between the failure variants.
func (o Outcome[T]) Value() (T, bool) {
	if o.kind != apis.KindSuccess {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Violations returns a copy of the ordered violation list, or nil for
// outcomes other than validation failures.
func (o Outcome[T]) Violations() []apis.Violation {
	if len(o.violations) == 0 {
		return nil
	}
	vs := make([]apis.Violation, len(o.violations))
	copy(vs, o.violations)
	return vs
}

// Failure returns the non-generic snapshot of a non-success outcome, ready
// for a problem mapper or transport adapter.
//
// Calling Failure on a success outcome panics: a transport that asks for the
// failure view of a success has taken a wrong branch, and surfacing that
// immediately beats serializing an empty problem document.
func (o Outcome[T]) Failure() *apis.Failure {
	if o.kind == apis.KindSuccess {
		panic("dresult: Failure called on a success outcome")
	}
	return &apis.Failure{
		Kind:       o.kind,
		Ref:        o.ref,
		Violations: o.Violations(),
		Conflict:   o.conflict,
		Reason:     o.reason,
		Fault:      o.fault,
	}
}

// FailAs re-tags a non-success outcome as an Outcome of a different payload
// type. This is how validation-pipeline failures (Outcome[Unit]) flow out of
// operations that succeed with a real payload.
//
// FailAs panics on a success outcome: a success has a payload of the
// original type and cannot be re-tagged without inventing a value.
func FailAs[T, U any](o Outcome[T]) Outcome[U] {
	if o.kind == apis.KindSuccess {
		panic("dresult: FailAs called on a success outcome")
	}
	return Outcome[U]{
		kind:       o.kind,
		ref:        o.ref,
		violations: o.violations,
		conflict:   o.conflict,
		reason:     o.reason,
		fault:      o.fault,
	}
}

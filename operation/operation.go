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

// Package operation wraps a unit of work behind a validation pipeline with
// cooperative cancellation threaded through every step.
//
// An Operation is constructed once per operation type and shared across
// concurrent invocations, like the pipeline it owns. Each Run is an
// independent unit: validate first (cheapest stages first), then — only on
// a clean pass and an uncanceled context — execute the body. Once
// cancellation is observed, no further side-effecting work is started; work
// the body already committed is not rolled back here, that belongs to the
// caller's transactional collaborator.
//
// Deadlines are ordinary context deadlines: wrap ctx with
// context.WithTimeout at the call site, there is no separate timeout
// mechanism.
package operation

import (
	"context"
	"fmt"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/pipeline"
)

// Body is the side-effecting core of an operation. It runs only after the
// pipeline passed and the context is still live, and it must keep honoring
// ctx across its own external calls.
type Body[I, O any] func(ctx context.Context, in I) dresult.Outcome[O]

// Operation binds a validation pipeline to a body. Immutable after New;
// safe for concurrent Run calls.
type Operation[I, O any] struct {
	pipe *pipeline.Pipeline[I]
	body Body[I, O]
}

// New constructs an Operation from a pipeline and a body. Both are
// required: an operation without validation should still carry an empty
// pipeline so the cancellation and fault-containment semantics stay
// uniform.
func New[I, O any](p *pipeline.Pipeline[I], body Body[I, O]) (*Operation[I, O], error) {
	if p == nil {
		return nil, fmt.Errorf("operation: nil pipeline")
	}
	if body == nil {
		return nil, fmt.Errorf("operation: nil body")
	}
	return &Operation[I, O]{pipe: p, body: body}, nil
}

// Run executes the operation against in.
//
// Sequence:
//
//  1. ctx check — cancellation signaled before anything starts yields
//     Canceled without invoking a single stage;
//  2. the validation pipeline; any non-success outcome is returned re-tagged
//     to the operation's payload type, and the body never runs;
//  3. ctx re-check — cancellation observed during validation must not let
//     side-effecting work start;
//  4. the body, with panic containment: a panicking body surfaces as an
//     InternalFault outcome, never as a raw panic crossing the operation
//     boundary.
func (op *Operation[I, O]) Run(ctx context.Context, in I) dresult.Outcome[O] {
	if ctx.Err() != nil {
		return dresult.Canceled[O]()
	}

	if v := op.pipe.Run(ctx, in); v.Kind() != apis.KindSuccess {
		return dresult.FailAs[dresult.Unit, O](v)
	}

	if ctx.Err() != nil {
		return dresult.Canceled[O]()
	}

	return runBody(ctx, op.body, in)
}

// runBody invokes the body with panic containment.
func runBody[I, O any](ctx context.Context, body Body[I, O], in I) (out dresult.Outcome[O]) {
	defer func() {
		if r := recover(); r != nil {
			out = dresult.Faulted[O](fmt.Errorf("operation: body panicked: %v", r))
		}
	}()
	return body(ctx, in)
}

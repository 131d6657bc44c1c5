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

package pipeline

import (
	"context"
	"fmt"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
)

// Policy selects the short-circuit behavior of a pipeline.
type Policy uint8

const (
	// FailFast stops at the first failing stage and returns its outcome
	// immediately. No stage after it runs.
	FailFast Policy = iota

	// AccumulateCheap runs every Cheap stage and aggregates all of their
	// violations; if any failed, the aggregate is returned without running
	// a single Expensive stage. When all Cheap stages pass, Expensive
	// stages run with fail-fast semantics.
	AccumulateCheap
)

// String returns the stable lowercase name of the policy.
func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail_fast"
	case AccumulateCheap:
		return "accumulate_cheap"
	}
	return "invalid_policy"
}

// Option configures a pipeline at build time. All options are applied to an
// internal builder and then frozen into an immutable Pipeline.
type Option[I any] func(*builder[I])

// WithStage registers a stage. Declaration order is preserved within each
// cost class; the class partition (Cheap before Expensive) is applied by
// New regardless of declaration order.
func WithStage[I any](s Stage[I]) Option[I] {
	return func(b *builder[I]) { b.stages = append(b.stages, s) }
}

// WithPolicy selects the short-circuit policy. The default is FailFast.
func WithPolicy[I any](p Policy) Option[I] {
	return func(b *builder[I]) { b.policy = p }
}

type builder[I any] struct {
	stages []Stage[I]
	policy Policy
}

// New constructs an immutable Pipeline snapshot.
//
// Build process overview:
//
//  1. Apply options to an empty builder.
//  2. Validate every stage: non-empty unique name, non-nil check, known
//     cost class; and validate the policy.
//  3. Partition stages into Cheap then Expensive, preserving declaration
//     order within each partition. This encodes the cheapest-validation-
//     first rule: the latency of rejecting a structurally broken input is
//     bounded by the sum of the Cheap stage costs alone.
//  4. Freeze the partitions.
//
// The returned Pipeline is safe to share read-only across concurrent
// operations; construct it once per operation type at startup.
func New[I any](opts ...Option[I]) (*Pipeline[I], error) {
	b := &builder[I]{}
	for _, opt := range opts {
		opt(b)
	}

	if b.policy != FailFast && b.policy != AccumulateCheap {
		return nil, fmt.Errorf("pipeline: unknown policy %d", b.policy)
	}

	seen := make(map[string]struct{}, len(b.stages))
	var cheap, expensive []Stage[I]
	for i, s := range b.stages {
		if s.Name == "" {
			return nil, fmt.Errorf("pipeline: stage %d has no name", i)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("pipeline: duplicate stage name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Check == nil {
			return nil, fmt.Errorf("pipeline: stage %q has a nil check", s.Name)
		}
		switch s.Cost {
		case Cheap:
			cheap = append(cheap, s)
		case Expensive:
			expensive = append(expensive, s)
		default:
			return nil, fmt.Errorf("pipeline: stage %q has unknown cost class %d", s.Name, s.Cost)
		}
	}

	return &Pipeline[I]{cheap: cheap, expensive: expensive, policy: b.policy}, nil
}

// Pipeline is an ordered, cost-partitioned sequence of validation stages.
// It is immutable after New and safe for concurrent Run calls; a single
// instance is meant to serve every invocation of one operation type.
type Pipeline[I any] struct {
	cheap     []Stage[I]
	expensive []Stage[I]
	policy    Policy
}

// Policy returns the pipeline's short-circuit policy.
func (p *Pipeline[I]) Policy() Policy { return p.policy }

// Run executes the stages against in.
//
// Cancellation is cooperative: ctx is checked before every stage, so a
// signal raised before any stage starts means no stage runs at all, and a
// signal raised mid-run stops the pipeline at the next stage boundary with
// a Canceled outcome. Canceled is an internal signal — it never reaches a
// client as a business error.
//
// A stage that panics or faults produces an InternalFault outcome, distinct
// from ValidationFailed and never silently swallowed.
func (p *Pipeline[I]) Run(ctx context.Context, in I) dresult.Outcome[dresult.Unit] {
	if p.policy == AccumulateCheap {
		var acc []apis.Violation
		for i := range p.cheap {
			if ctx.Err() != nil {
				return dresult.Canceled[dresult.Unit]()
			}
			o := invoke(ctx, p.cheap[i], in)
			switch o.Kind() {
			case apis.KindSuccess:
			case apis.KindValidationFailed:
				acc = append(acc, o.Violations()...)
			default:
				// Canceled or InternalFault ends the run regardless of
				// already-collected violations.
				return o
			}
		}
		if len(acc) > 0 {
			return dresult.Invalid[dresult.Unit](acc...)
		}
		return runFailFast(ctx, p.expensive, in)
	}

	if o := runFailFast(ctx, p.cheap, in); o.Kind() != apis.KindSuccess {
		return o
	}
	return runFailFast(ctx, p.expensive, in)
}

// runFailFast executes stages in order, returning the first non-success
// outcome. Stages after a failing one never run.
func runFailFast[I any](ctx context.Context, stages []Stage[I], in I) dresult.Outcome[dresult.Unit] {
	for i := range stages {
		if ctx.Err() != nil {
			return dresult.Canceled[dresult.Unit]()
		}
		if o := invoke(ctx, stages[i], in); o.Kind() != apis.KindSuccess {
			return o
		}
	}
	return dresult.OK(dresult.Unit{})
}

// invoke runs one stage with panic containment and enforces the check
// contract: Success and ValidationFailed pass through, as do Canceled and
// InternalFault produced by the stage itself; every other variant is a
// misbehaving stage and is converted to an InternalFault naming it.
func invoke[I any](ctx context.Context, s Stage[I], in I) (out dresult.Outcome[dresult.Unit]) {
	defer func() {
		if r := recover(); r != nil {
			out = dresult.Faulted[dresult.Unit](fmt.Errorf("pipeline: stage %q panicked: %v", s.Name, r))
		}
	}()

	o := s.Check(ctx, in)
	switch o.Kind() {
	case apis.KindSuccess, apis.KindValidationFailed, apis.KindCanceled, apis.KindInternalFault:
		return o
	default:
		return dresult.Faulted[dresult.Unit](
			fmt.Errorf("pipeline: stage %q returned outcome %q outside the check contract", s.Name, o.Kind()))
	}
}

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

	"dirpx.dev/dresult"
)

// CostClass classifies a validation stage by what it costs to run.
//
// The class drives ordering: a pipeline always runs every Cheap stage before
// any Expensive stage, so a structurally broken input never pays for an
// external call.
type CostClass uint8

const (
	// Cheap marks a stage that is synchronous and in-process: presence,
	// length, format, cross-field consistency. Cheap stages must not block
	// and must not call out of the process.
	Cheap CostClass = iota

	// Expensive marks a stage that leaves the process: repository lookups,
	// uniqueness checks, remote policy calls. Expensive stages are the only
	// point where a pipeline may block, and they must honor ctx.
	Expensive
)

// String returns the stable lowercase name of the cost class.
func (c CostClass) String() string {
	switch c {
	case Cheap:
		return "cheap"
	case Expensive:
		return "expensive"
	}
	return "invalid_cost_class"
}

// CheckFunc is the body of one validation stage.
//
// Contract: the returned outcome is Success or ValidationFailed. A check
// that observes ctx cancellation may return Canceled; a check that fails
// internally may return Faulted. Any other variant is a bug in the stage and
// is coerced to an internal fault by the pipeline — a stage cannot smuggle a
// NotFound or Forbidden decision through the validation path.
type CheckFunc[I any] func(ctx context.Context, in I) dresult.Outcome[dresult.Unit]

// Stage is a single, named validation check with a declared cost class.
//
// Stages are immutable once registered into a pipeline and are shared
// read-only across concurrent runs; a stage needing external state (a
// repository, a policy client) should capture it as an injected read-only
// dependency in its CheckFunc, never as shared mutable state.
type Stage[I any] struct {
	// Name identifies the stage in fault messages and diagnostics. Names
	// must be unique within one pipeline.
	Name string

	// Cost declares the stage's cost class and thereby its execution
	// partition.
	Cost CostClass

	// Check is the stage body.
	Check CheckFunc[I]
}

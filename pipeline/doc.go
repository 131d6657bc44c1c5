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

// Package pipeline runs ordered, cost-partitioned validation stages with
// short-circuit semantics and cooperative cancellation.
//
// Stages are explicit: a pipeline is composed from named stages via a
// builder at startup, not discovered via reflection or tags. That keeps the
// ordering auditable — every Cheap stage runs before any Expensive stage,
// and declaration order is preserved within each class — and makes the
// cheapest-first guarantee a structural property rather than a convention.
//
// Two short-circuit policies are supported per pipeline: FailFast stops at
// the first failing stage; AccumulateCheap collects every violation from
// the Cheap partition before deciding, then runs Expensive stages
// fail-fast. Under either policy an input that fails a Cheap stage never
// triggers an Expensive one.
//
// A Pipeline is immutable after New and shared read-only across concurrent
// operations. Cancellation is checked at every stage boundary; a stage that
// panics surfaces as an internal fault, never as a validation failure.
package pipeline

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

// Mapper is an immutable, concurrency-safe view of the problem mapping
// table. It resolves a non-success failure into a wire-ready problem
// document and transport status.
//
// Implementations MUST be total and deterministic: every wire-visible kind
// resolves to exactly one type+status pair, and the same failure always
// resolves to the same pair. A kind the implementation cannot map is a
// construction-time error of the implementation, never a runtime default.
type Mapper interface {
	// Problem converts a failure into a problem document. The instance URI
	// identifies the specific request or resource.
	//
	// Implementations panic when given a failure whose kind is not
	// serializable (KindSuccess, KindCanceled) — reaching this method with
	// one is a transport-layer bug, not a client error.
	Problem(f Failure, instance string) Problem

	// Status returns the HTTP status for the given kind and optional
	// reason, without building a document. Useful for HEAD-style responses
	// and logging.
	Status(k Kind, r reasoncode.Code) int

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(k Kind, r reasoncode.Code) string
}

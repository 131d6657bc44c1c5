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

// Package reasoncode defines an optional, structured refinement for refusal
// outcomes.
//
// Where the outcome kind answers "what class of result is this?" (forbidden,
// conflict, ...), a reason can answer "which exact policy or rule produced
// it?", e.g.:
//
//   - "policy.rbac.scope"
//   - "tenant.isolation"
//   - "account.suspended"
//
// Reasons are intentionally optional: the zero value ("") is allowed and
// indicates that no further refinement is provided. This lets callers attach
// a reason only when they actually have a meaningful, stable one to report.
//
// Problem mappers may register prefix rules on reasons to refine the problem
// "type" URI for specific policy areas while keeping the HTTP status fixed.
package reasoncode

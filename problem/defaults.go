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

package problem

import (
	"net/http"

	"dirpx.dev/dresult/apis"
)

// DefaultTypeBase is the base URI under which the built-in problem type
// slugs live. Deployments expose their own documentation host via
// WithTypeBase; the slugs themselves stay stable across deployments so
// client switches keep working.
const DefaultTypeBase = "https://dirpx.dev/errors/"

// entry is one row of the kind mapping table: the type URI slug, the HTTP
// status, and the static title. Rows are immutable once the mapper is built.
type entry struct {
	slug   string
	status int
	title  string
	// rebound marks rows replaced via WithMapping, for Explain only.
	rebound bool
}

// defaultEntries defines the library's built-in mapping table for every
// wire-visible outcome kind.
//
// This table is the versioned wire contract: a type+status pair never
// changes silently. Rebinding a kind to a different status requires a new
// slug (enforced in New), so clients switching on the type URI keep their
// meaning across releases.
//
// Titles are static strings — never interpolated — so the same logical error
// always carries the same title regardless of the occurrence.
var defaultEntries = map[apis.Kind]entry{
	// The target of the operation does not exist (or is hidden).
	apis.KindNotFound: {
		slug:   "not-found",
		status: http.StatusNotFound,
		title:  "Resource not found",
	},

	// Client-correctable input failure; violations ride along as a
	// structured extension member.
	apis.KindValidationFailed: {
		slug:   "validation-failed",
		status: http.StatusUnprocessableEntity,
		title:  "Validation failed",
	},

	// The request clashes with current domain state (uniqueness, stale
	// version, concurrent update).
	apis.KindConflict: {
		slug:   "conflict",
		status: http.StatusConflict,
		title:  "Conflict",
	},

	// The caller is authenticated but not allowed. Reason-prefix rules may
	// refine the type URI per policy area; the status stays 403.
	apis.KindForbidden: {
		slug:   "forbidden",
		status: http.StatusForbidden,
		title:  "Forbidden",
	},

	// A stage or operation body faulted. The document's detail is a fixed
	// sentence; the fault text never leaves the process through this table.
	apis.KindInternalFault: {
		slug:   "internal",
		status: http.StatusInternalServerError,
		title:  "Internal error",
	},
}

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

// Kind identifies one variant of the closed outcome set.
//
// The set is exhaustive and mutually exclusive: every outcome carries exactly
// one kind, and every consumer must handle every kind (or explicitly reject
// the ones that cannot reach it). There is no "unknown" member — adding a new
// kind is a breaking change to this package and to every mapper built on it,
// which is enforced at mapper construction time via Kinds().
type Kind uint8

const (
	// KindSuccess carries the operation payload. It is never mapped to a
	// problem document; the transport passes the payload through and chooses
	// the concrete success status itself.
	KindSuccess Kind = iota

	// KindNotFound means the operation target does not exist (or is not
	// visible to the caller). Wire status: 404.
	KindNotFound

	// KindValidationFailed means the input violates one or more rules. It
	// carries an ordered list of violations. Wire status: 422.
	KindValidationFailed

	// KindConflict means the operation collides with current domain state
	// (uniqueness, version mismatch, concurrent update). Wire status: 409.
	KindConflict

	// KindForbidden means the caller is not allowed to perform the
	// operation, optionally refined by a reason code. Wire status: 403.
	KindForbidden

	// KindInternalFault means a stage or operation body faulted. It is
	// serialized as a 500 problem document whose detail NEVER contains the
	// underlying fault text.
	KindInternalFault

	// KindCanceled means the caller abandoned the operation before it
	// finished. It is internal-only: it must never be serialized as a
	// problem document. Transports translate it per their own policy
	// (no response, a 499-class status, or a retry).
	KindCanceled
)

// kindNames backs String(). Indexed by Kind.
var kindNames = [...]string{
	KindSuccess:          "success",
	KindNotFound:         "not_found",
	KindValidationFailed: "validation_failed",
	KindConflict:         "conflict",
	KindForbidden:        "forbidden",
	KindInternalFault:    "internal_fault",
	KindCanceled:         "canceled",
}

// Kinds returns every member of the closed kind set, in declaration order.
//
// Mappers and adapters iterate this slice at construction time to prove
// their tables are total; a future kind that slips past such a check is a
// construction-time failure, never a runtime default branch.
func Kinds() []Kind {
	return []Kind{
		KindSuccess,
		KindNotFound,
		KindValidationFailed,
		KindConflict,
		KindForbidden,
		KindInternalFault,
		KindCanceled,
	}
}

// String returns the stable snake_case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid_kind"
}

// Wire reports whether outcomes of this kind may be serialized as a problem
// document. Success is excluded because its payload passes through unchanged;
// Canceled is excluded because it is an internal signal that transports must
// translate rather than expose as a business error.
func (k Kind) Wire() bool {
	switch k {
	case KindNotFound, KindValidationFailed, KindConflict, KindForbidden, KindInternalFault:
		return true
	case KindSuccess, KindCanceled:
		return false
	}
	return false
}
